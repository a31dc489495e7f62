package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"evalgo.org/maritime/internal/logging"
)

// gormLog routes gorm's messages into the service logger at matching
// levels: failed statements at error, slow ones at warn, and every other
// statement at info once database.log_level is info.
type gormLog struct {
	log   *logging.Logger
	level gormLogger.LogLevel
	slow  time.Duration
}

func newGormLog(log *logging.Logger, level gormLogger.LogLevel, slow time.Duration) *gormLog {
	return &gormLog{log: log.With("component", "gorm"), level: level, slow: slow}
}

func (g *gormLog) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	c := *g
	c.level = level
	return &c
}

func (g *gormLog) Info(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Info {
		g.log.Info(fmt.Sprintf(msg, args...))
	}
}

func (g *gormLog) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Warn {
		g.log.Warn(fmt.Sprintf(msg, args...))
	}
}

func (g *gormLog) Error(_ context.Context, msg string, args ...interface{}) {
	if g.level >= gormLogger.Error {
		g.log.Error(fmt.Sprintf(msg, args...))
	}
}

func (g *gormLog) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && g.level >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		g.log.Error("query failed", "error", err, "elapsed", elapsed, "rows", rows, "sql", sql)
	case g.slow > 0 && elapsed > g.slow && g.level >= gormLogger.Warn:
		sql, rows := fc()
		g.log.Warn("slow query", "threshold", g.slow, "elapsed", elapsed, "rows", rows, "sql", sql)
	case g.level >= gormLogger.Info:
		sql, rows := fc()
		g.log.Info("query", "elapsed", elapsed, "rows", rows, "sql", sql)
	}
}
