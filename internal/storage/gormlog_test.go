package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
)

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

func TestGormLogTraceLevels(t *testing.T) {
	stmt := func() (string, int64) { return "SELECT * FROM ships", 3 }
	ctx := context.Background()

	t.Run("failed statement is an error", func(t *testing.T) {
		log, logs := observedLogger()
		g := newGormLog(log, gormLogger.Warn, time.Second)

		g.Trace(ctx, time.Now(), stmt, errors.New("no such table: ships"))

		entries := logs.FilterMessage("query failed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, "SELECT * FROM ships", entries[0].ContextMap()["sql"])
		assert.Equal(t, "gorm", entries[0].ContextMap()["component"])
	})

	t.Run("missing record is not logged", func(t *testing.T) {
		log, logs := observedLogger()
		g := newGormLog(log, gormLogger.Warn, time.Second)

		g.Trace(ctx, time.Now(), stmt, gorm.ErrRecordNotFound)
		assert.Zero(t, logs.Len())
	})

	t.Run("slow statement is a warning", func(t *testing.T) {
		log, logs := observedLogger()
		g := newGormLog(log, gormLogger.Warn, 10*time.Millisecond)

		g.Trace(ctx, time.Now().Add(-time.Second), stmt, nil)

		entries := logs.FilterMessage("slow query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	})

	t.Run("fast statement is quiet at warn", func(t *testing.T) {
		log, logs := observedLogger()
		g := newGormLog(log, gormLogger.Warn, time.Second)

		g.Trace(ctx, time.Now(), stmt, nil)
		assert.Zero(t, logs.Len())
	})

	t.Run("every statement at info", func(t *testing.T) {
		log, logs := observedLogger()
		g := newGormLog(log, gormLogger.Info, time.Second)

		g.Trace(ctx, time.Now(), stmt, nil)

		entries := logs.FilterMessage("query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.EqualValues(t, 3, entries[0].ContextMap()["rows"])
	})

	t.Run("silent drops errors", func(t *testing.T) {
		log, logs := observedLogger()
		g := newGormLog(log, gormLogger.Warn, time.Second).LogMode(gormLogger.Silent)

		g.Trace(ctx, time.Now(), stmt, errors.New("boom"))
		g.Error(ctx, "connection lost: %s", "boom")
		assert.Zero(t, logs.Len())
	})
}

func TestGormLogMessages(t *testing.T) {
	log, logs := observedLogger()
	g := newGormLog(log, gormLogger.Warn, time.Second)
	ctx := context.Background()

	g.Info(ctx, "migrating %s", "ships")
	g.Warn(ctx, "column %s dropped", "legacy")
	g.Error(ctx, "failed to close %d connections", 2)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "column legacy dropped", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "failed to close 2 connections", entries[1].Message)
}

func TestOpenLogsFailedStatementAsError(t *testing.T) {
	log, logs := observedLogger()
	s, err := Open(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		DSN:      filepath.Join(t.TempDir(), "maritime.db"),
		LogLevel: "warn",
	}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))

	_, err = s.GetShip(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, logs.FilterMessage("query failed").Len())

	require.Error(t, s.db.WithContext(ctx).Exec("SELECT * FROM lighthouses").Error)

	failed := logs.FilterMessage("query failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.ErrorLevel, failed[0].Level)
	assert.Contains(t, failed[0].ContextMap()["sql"], "lighthouses")
	assert.Zero(t, logs.FilterLevelExact(zapcore.InfoLevel).FilterMessage("query").Len())
}
