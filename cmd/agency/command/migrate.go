package command

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/leguidebj/agency-backend/internal/config"
	"github.com/leguidebj/agency-backend/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate {up|down}",
	Short:     "Apply or roll back the database schema",
	Long: `Apply or roll back the embedded SQL migrations against the database
named by DATABASE_URL. "up" applies all pending migrations; "down" rolls the
schema all the way back. The server also runs "up" automatically on start,
so this command is mainly useful for resetting a database or preparing one
ahead of a deploy.`,
	RunE:      runMigrate,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down"},
}

func runMigrate(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch args[0] {
	case "up":
		return migrateUp(cfg.DatabaseURL)
	case "down":
		return migrateDown(cfg.DatabaseURL)
	default:
		return fmt.Errorf("unknown migration direction %q", args[0])
	}
}

// migrateUp applies all pending migrations. The serve command calls this on
// start so a fresh database works without a separate migration step.
func migrateUp(dsn string) error {
	provider, db, err := newProvider(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := provider.Up(context.Background()); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

func migrateDown(dsn string) error {
	provider, db, err := newProvider(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := provider.DownTo(context.Background(), 0); err != nil {
		return fmt.Errorf("roll back migrations: %w", err)
	}
	return nil
}

// newProvider opens a database/sql handle (goose does not speak pgx natively)
// and wraps it in a goose provider over the embedded migration files.
func newProvider(dsn string) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("create migration provider: %w", err)
	}
	return provider, db, nil
}
