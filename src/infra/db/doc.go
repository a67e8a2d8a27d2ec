// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization (pgx)
//   - database/sql and gorm views over the same pool
//   - Embedded goose migrations
//   - Connection health checks
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if err := pg.Migrate(ctx, db.MigrateUp); err != nil {
//	    return err
//	}
package db
