package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Math-l7/scheduling-modular-api/internal/config"
	dbpkg "github.com/Math-l7/scheduling-modular-api/internal/db"
	"github.com/Math-l7/scheduling-modular-api/internal/logging"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Runs the gorm auto-migration for every table and installs the
btree_gist extension and the exclusion constraint that keeps one staff
member's scheduled appointments from overlapping.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			cfg.AutoMigrate = false

			db, err := dbpkg.NewDB(cfg, logging.New(cfg.ServiceName, cfg.LogLevel))
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := dbpkg.Migrate(db); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", color.New(color.FgRed).Sprint("FAILED"), err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s schema up to date (constraint %s)\n",
				color.New(color.FgGreen).Sprint("OK"),
				dbpkg.OverlapConstraint,
			)
			return nil
		},
	}
}
