// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"employeeapi/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// EmployeeRepository persists employees.
//
// Lookups return found=false, not an error, when nothing matches. The error
// is reserved for storage failures.
type EmployeeRepository interface {
	Repository

	// Save inserts e when it has no ID, otherwise updates the row with e.ID.
	Save(ctx context.Context, e domain.Employee) (domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (domain.Employee, bool, error)
	FindByEmail(ctx context.Context, email string) (domain.Employee, bool, error)
	FindByNames(ctx context.Context, firstName, lastName string) (domain.Employee, bool, error)
	// DeleteByID is a no-op when the row does not exist.
	DeleteByID(ctx context.Context, id int64) error
}
