// Package cli wires the command line entry points of the employee API.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"employeeapi/src/infra/config"
	"employeeapi/src/infra/db"
	"employeeapi/src/infra/logger"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

type globalFlags struct {
	envFile string
}

// NewRootCommand builds the command tree. Running it without a subcommand
// serves the API.
func NewRootCommand(out io.Writer, build BuildInfo) *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:           "employeeapi",
		Short:         "Employee directory HTTP API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), flags)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Optional dotenv file loaded before the environment")

	cmd.AddCommand(newServeCommand(&flags))
	cmd.AddCommand(newMigrateCommand(&flags))
	cmd.AddCommand(newVersionCommand(out, build))
	return cmd
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, out io.Writer, build BuildInfo, args []string) error {
	cmd := NewRootCommand(out, build)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newVersionCommand(out io.Writer, build BuildInfo) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(build)
			}
			_, err := fmt.Fprintf(out, "version=%s commit=%s build_time=%s\n", build.Version, build.Commit, build.BuildTime)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print version as JSON")
	return cmd
}

// runtime holds what every database-backed command needs.
type runtime struct {
	cfg      *config.Config
	log      *slog.Logger
	pg       *db.Postgres
	closeLog func() error
}

func openRuntime(ctx context.Context, flags globalFlags) (*runtime, error) {
	cfg, err := config.Load(flags.envFile)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	pg, err := db.New(ctx, cfg.Database, log)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	return &runtime{cfg: cfg, log: log, pg: pg, closeLog: closeLog}, nil
}

func (r *runtime) Close() {
	r.pg.Close()
	_ = r.closeLog()
}
