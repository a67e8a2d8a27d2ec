// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Repositories receive the database handle via constructor injection.
// Plain queries go through the pgx pool; lookups written in gorm's query
// language share the same pool through db.Postgres.ORM.
package repo
