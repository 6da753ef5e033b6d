package main

import (
	"errors"
	"fmt"

	"github.com/listing-service/internal/config"
	"github.com/listing-service/internal/repository/postgres"
	"github.com/spf13/cobra"
)

// databaseURL - переопределение адреса БД из флага; по умолчанию берется из конфигурации
var databaseURL string

// NewRootCmd создает корневую команду CLI миграций
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Listing service schema migrations",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "",
		"postgres:// or pgx5:// URL (default: built from DB_* settings)")

	cmd.AddCommand(newUpCmd())
	cmd.AddCommand(newDownCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				cmd.Println("Migrations applied")
				return nil
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations (drops every table)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errors.New("refusing to drop the schema without --yes")
			}
			return withMigrator(func(m *postgres.Migrator) error {
				if err := m.Down(); err != nil {
					return err
				}
				cmd.Println("Migrations rolled back")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm dropping the schema")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(func(m *postgres.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	}
}

func withMigrator(fn func(m *postgres.Migrator) error) error {
	url, err := resolveDatabaseURL()
	if err != nil {
		return err
	}

	m, err := postgres.NewMigrator(url)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}

func resolveDatabaseURL() (string, error) {
	if databaseURL != "" {
		return databaseURL, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.GetDatabaseURL(), nil
}
