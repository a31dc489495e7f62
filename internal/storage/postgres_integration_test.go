//go:build integration
// +build integration

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/storage"
	"evalgo.org/maritime/models"
)

// TestPostgresIntegration runs the storage layer against a real postgres
// container started by testcontainers-go.
func TestPostgresIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("maritime_test"),
		tcpostgres.WithUsername("maritime"),
		tcpostgres.WithPassword("maritime"),
		tcpostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "Failed to start postgres container")
	defer func() { _ = testcontainers.TerminateContainer(container) }()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:      config.DriverPostgres,
			DSN:         dsn,
			AutoMigrate: true,
			LogLevel:    "silent",
		},
	}
	store, err := storage.New(cfg, logging.NewNop())
	require.NoError(t, err, "Failed to initialize storage")
	defer store.Close()

	seeded, err := store.Seed(ctx, storage.DefaultSampleData())
	require.NoError(t, err)
	require.True(t, seeded)

	t.Run("sequences continue after seeded ids", func(t *testing.T) {
		port := &models.Port{Name: "Port of Antwerp", Country: "Belgium"}
		require.NoError(t, store.CreatePort(ctx, port))
		assert.Greater(t, port.ID, uint(105))

		ship := &models.Ship{Name: "Harbour Pilot", MaxSpeed: 12}
		require.NoError(t, store.CreateShip(ctx, ship))
		assert.Greater(t, ship.ID, uint(3))
	})

	t.Run("referenced port cannot be deleted", func(t *testing.T) {
		err := store.DeletePort(ctx, 101)
		assert.ErrorIs(t, err, storage.ErrPortInUse)

		_, err = store.GetPort(ctx, 101)
		assert.NoError(t, err)
	})

	t.Run("foreign key restrict is enforced by the database", func(t *testing.T) {
		err := store.DB().WithContext(ctx).Exec("DELETE FROM ports WHERE id = ?", 103).Error
		assert.Error(t, err)
	})

	t.Run("voyage reads embed both ports", func(t *testing.T) {
		voyage, err := store.GetVoyage(ctx, 1001)
		require.NoError(t, err)
		require.NotNil(t, voyage.DeparturePort)
		require.NotNil(t, voyage.ArrivalPort)
		assert.Equal(t, "Netherlands", voyage.DeparturePort.Country)
		assert.Equal(t, "Germany", voyage.ArrivalPort.Country)
	})

	t.Run("countries visited", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		countries, err := store.CountriesVisited(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, []string{"Germany", "Netherlands", "Singapore", "USA"}, countries)
	})
}
