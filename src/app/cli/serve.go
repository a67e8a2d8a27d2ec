package cli

import (
	"context"

	"github.com/spf13/cobra"

	"employeeapi/src/app/server"
	"employeeapi/src/infra/db"
	"employeeapi/src/infra/logger"
	"employeeapi/src/infra/repo"
)

func newServeCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *flags)
		},
	}
}

func runServe(ctx context.Context, flags globalFlags) error {
	rt, err := openRuntime(ctx, flags)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.log.Info("starting application",
		"port", rt.cfg.Server.Port,
		"log_level", rt.cfg.Log.Level,
	)

	if rt.cfg.Database.AutoMigrate {
		if err := rt.pg.Migrate(ctx, db.MigrateUp); err != nil {
			return err
		}
	}

	employees := repo.NewEmployeeRepository(rt.pg, logger.WithComponent(rt.log, "repo"))
	return server.New(rt.cfg, rt.log, employees).Run(ctx)
}
