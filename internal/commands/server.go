package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"evalgo.org/maritime/internal/api"
	"evalgo.org/maritime/internal/storage"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the API server",
	Long: `Start the HTTP server with the REST API under /api, the web UI,
health, metrics and API documentation.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Bool("seed", false, "insert sample data when the database is empty")
}

func runServer(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	// Initialize storage layer
	store, err := storage.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	seed, _ := cmd.Flags().GetBool("seed")
	if seed || cfg.Database.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		_, err := store.Seed(ctx, storage.DefaultSampleData())
		cancel()
		if err != nil {
			_ = store.Close()
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	server := api.New(cfg, store, log)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		return nil

	case err := <-errChan:
		_ = store.Close()
		return fmt.Errorf("server error: %w", err)
	}
}
