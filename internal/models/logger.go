package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQuery is the duration above which queries are logged as warnings.
const slowQuery = 200 * time.Millisecond

// logger sends gorm logs to zerolog.
//
// Messages go to the logger of the context when it carries one, so that
// queries are logged with the fields of the request that caused them.
type logger struct {
	fallback zerolog.Logger
	level    gorm_logger.LogLevel
	slow     time.Duration
}

func newLogger(l zerolog.Logger) *logger {
	return &logger{fallback: l, level: gorm_logger.Info, slow: slowQuery}
}

func (l *logger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *logger) ctx(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if z := log.Ctx(ctx); z != zerolog.DefaultContextLogger && z.GetLevel() != zerolog.Disabled {
			return z
		}
	}
	return &l.fallback
}

func (l *logger) Info(ctx context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.ctx(ctx).Info().Msgf(s, args...)
	}
}

func (l *logger) Warn(ctx context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.ctx(ctx).Warn().Msgf(s, args...)
	}
}

func (l *logger) Error(ctx context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.ctx(ctx).Error().Msgf(s, args...)
	}
}

// Trace logs a query. Failed queries are errors, slow queries warnings and
// everything else is debug output. Not found is an expected result and
// never an error.
func (l *logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	z := l.ctx(ctx)

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound):
		event = z.Error().Err(err)
	case l.slow > 0 && elapsed > l.slow:
		event = z.Warn().Dur("threshold", l.slow)
	default:
		event = z.Debug()
	}

	sql, rows := fc()
	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", elapsed).
		Msg("[GORM] query")
}
