// Package storage provides the relational storage layer for the maritime
// records service. It wraps gorm with a postgres or sqlite dialector and
// exposes per-entity repository operations for ships, ports and voyages,
// plus the read-side queries used by the dashboard.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"evalgo.org/maritime/internal/config"
	"evalgo.org/maritime/internal/logging"
	"evalgo.org/maritime/models"
)

// Storage provides the main storage interface for the service.
// It owns the gorm handle and the connection pool underneath it.
type Storage struct {
	db  *gorm.DB
	cfg config.DatabaseConfig
	log *logging.Logger
}

// New creates a Storage from the application configuration and applies the
// schema when database.auto_migrate is set.
func New(cfg *config.Config, log *logging.Logger) (*Storage, error) {
	s, err := Open(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
	}

	return s, nil
}

// Open connects to the configured database without touching the schema.
func Open(cfg config.DatabaseConfig, log *logging.Logger) (*Storage, error) {
	if log == nil {
		log = logging.NewNop()
	}

	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	level, err := parseGormLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         newGormLog(log, level, cfg.SlowThreshold),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	log.Info("database connected", "driver", cfg.Driver, "dsn", logging.RedactDSN(cfg.DSN))

	return &Storage{db: db, cfg: cfg, log: log}, nil
}

func newDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	if strings.TrimSpace(cfg.DSN) == "" {
		return nil, errors.New("database dsn is required")
	}

	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN), nil
	case config.DriverSQLite, "":
		return sqlite.Open(SQLiteDSN(cfg.DSN)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// SQLiteDSN makes sure foreign key enforcement is switched on for every
// pooled sqlite connection. sqlite ships with it disabled.
func SQLiteDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	if strings.Contains(lower, "_foreign_keys=") || strings.Contains(lower, "_fk=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func parseGormLevel(level string) (gormLogger.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return gormLogger.Silent, nil
	case "error":
		return gormLogger.Error, nil
	case "", "warn", "warning":
		return gormLogger.Warn, nil
	case "info":
		return gormLogger.Info, nil
	default:
		return gormLogger.Silent, fmt.Errorf("invalid database log level %q", level)
	}
}

// Migrate creates or updates the ships, ports and voyages tables, including
// the two RESTRICT foreign keys from voyages to ports.
func (s *Storage) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.Ship{}, &models.Port{}, &models.Voyage{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	s.log.Info("database schema migrated")
	return nil
}

// Ping checks that the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// DB exposes the underlying gorm handle.
func (s *Storage) DB() *gorm.DB {
	return s.db
}

// Driver returns the configured driver name.
func (s *Storage) Driver() string {
	return s.db.Dialector.Name()
}

// requireRow fails with ErrNotFound unless a row with the given id exists
// in the table of model.
func requireRow(tx *gorm.DB, model interface{}, what string, id uint) error {
	var n int64
	if err := tx.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up %s %d: %w", what, id, err)
	}
	if n == 0 {
		return notFound(what, id)
	}
	return nil
}
