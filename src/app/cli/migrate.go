package cli

import (
	"github.com/spf13/cobra"

	"employeeapi/src/infra/db"
)

func newMigrateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status]",
		Short:     "Manage the database schema",
		Example:   "  employeeapi migrate up\n  employeeapi migrate status",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(db.MigrateUp), string(db.MigrateDown), string(db.MigrateStatus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := db.ParseMigrateDirection(args[0])
			if err != nil {
				return err
			}

			rt, err := openRuntime(cmd.Context(), *flags)
			if err != nil {
				return err
			}
			defer rt.Close()

			return rt.pg.Migrate(cmd.Context(), dir)
		},
	}
}
