package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"evalgo.org/maritime/internal/storage"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE:  runMigrate,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample ships, ports and voyages",
	Long: `Insert the sample fleet, five ports and two voyages.

Nothing is written when any of the tables already holds rows.`,
	RunE: runSeed,
}

func openStore() (*storage.Storage, func(), error) {
	log, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(cfg.Database, log)
	if err != nil {
		log.Sync()
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return store, func() {
		_ = store.Close()
		log.Sync()
	}, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Schema is up to date")
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
	defer cancel()

	if err := store.Migrate(ctx); err != nil {
		return err
	}

	seeded, err := store.Seed(ctx, storage.DefaultSampleData())
	if err != nil {
		return err
	}
	if !seeded {
		fmt.Println("Database already holds records, nothing seeded")
		return nil
	}

	counts, err := store.Counts(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Seeded %d ships, %d ports and %d voyages\n", counts.Ships, counts.Ports, counts.Voyages)
	return nil
}
