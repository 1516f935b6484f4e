// Package cli defines the cobra command tree for wanderctl, the operator
// tool for moving planner data in and out of the database: full backups and
// single-trip share packages.
package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/wanderlust/planner/backend/internal/config"
	"github.com/wanderlust/planner/backend/internal/repo"
	"github.com/wanderlust/planner/backend/internal/service"
)

var flagDatabaseURL string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wanderctl",
		Short:         "Back up, restore, and share planner trips",
		Long:          "Operator tool for the trip planner. Export the whole store to a backup file, restore from one, and move single trips between installations as share packages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDatabaseURL, "database-url", "", "Postgres connection string (default: DATABASE_URL from the environment)")

	root.AddCommand(
		newExportCmd(),
		newImportCmd(),
		newShareCmd(),
		newImportShareCmd(),
	)

	return root
}

// newTransferService connects to the database and wires up the transfer
// service. Callers must close the returned pool when done.
func newTransferService(ctx context.Context) (*service.TransferService, *pgxpool.Pool, error) {
	dsn := flagDatabaseURL
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		dsn = cfg.DatabaseURL
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	trips := repo.NewTripRepo(pool)
	items := repo.NewItemRepo(pool)
	transfer := repo.NewTransferRepo(pool)
	return service.NewTransferService(trips, items, transfer), pool, nil
}
