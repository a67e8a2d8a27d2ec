// Package domain contains the core domain model for the employee directory.
//
// This package defines:
//   - Entities: Employee, the only resource exposed by the API
//   - Domain Errors: business rule violation errors (not found, conflict, validation)
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Entities validate their own invariants
package domain
