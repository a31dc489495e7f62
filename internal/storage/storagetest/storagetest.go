// Package storagetest opens throwaway in-memory sqlite stores for tests.
package storagetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/internal/storage"
)

// Config returns a database config for a private shared-cache in-memory
// sqlite database. A single pooled connection keeps the database alive.
func Config() config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver:       config.DriverSQLite,
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()),
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	}
}

// New opens a migrated, empty store that is closed when the test ends.
func New(t testing.TB) *storage.Storage {
	t.Helper()

	s, err := storage.Open(Config(), logging.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Migrate(context.Background()))
	return s
}

// NewSeeded opens a store holding the default sample data.
func NewSeeded(t testing.TB) *storage.Storage {
	t.Helper()

	s := New(t)
	seeded, err := s.Seed(context.Background(), storage.DefaultSampleData())
	require.NoError(t, err)
	require.True(t, seeded)
	return s
}
