package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// MigrateDirection selects what Migrate does.
type MigrateDirection string

const (
	MigrateUp     MigrateDirection = "up"
	MigrateDown   MigrateDirection = "down"
	MigrateStatus MigrateDirection = "status"
)

// ParseMigrateDirection validates a direction given on the command line.
func ParseMigrateDirection(s string) (MigrateDirection, error) {
	switch d := MigrateDirection(s); d {
	case MigrateUp, MigrateDown, MigrateStatus:
		return d, nil
	default:
		return "", fmt.Errorf("unknown migrate direction %q (want up, down or status)", s)
	}
}

// Migrate runs the embedded goose migrations.
func (p *Postgres) Migrate(ctx context.Context, dir MigrateDirection) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	var err error
	switch dir {
	case MigrateUp:
		err = goose.UpContext(ctx, p.sqlDB, "migrations")
	case MigrateDown:
		err = goose.DownContext(ctx, p.sqlDB, "migrations")
	case MigrateStatus:
		err = goose.StatusContext(ctx, p.sqlDB, "migrations")
	default:
		return fmt.Errorf("unknown migrate direction %q", dir)
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", dir, err)
	}

	version, err := goose.GetDBVersionContext(ctx, p.sqlDB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	p.log.Info("migrations applied", "direction", string(dir), "version", version)
	return nil
}
