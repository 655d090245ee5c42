package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"dispatch/config"
	deliverycontext "dispatch/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(buf *bytes.Buffer, debug bool) logger.Interface {
	cfg := &config.Config{Storage: &config.StorageConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)
}

func sqlFn() (string, int64) { return `UPDATE "orders" SET "status"='picked_up'`, 1 }

func TestGormLogger_TraceLevels(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: gorm.ErrInvalidTransaction, want: "GORM query failed"},
		{name: "slow", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast in debug", debug: true, want: "GORM query"},
		{name: "fast outside debug", want: ""},
		{name: "not found is expected", err: gorm.ErrRecordNotFound, want: ""},
		{name: "ledger duplicate is expected", err: &pgconn.PgError{Code: pgUniqueViolation}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTestGormLogger(&buf, tt.debug)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn, tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "rows=1")
		})
	}
}

func TestGormLogger_UsesRequestScopedLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newTestGormLogger(&base, true)

	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, &slog.HandlerOptions{Level: slog.LevelDebug})).With(slog.String("request_id", "req-9")))
	l.Trace(ctx, time.Now(), sqlFn, nil)

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
}

func TestGormLogger_SilentMode(t *testing.T) {
	var buf bytes.Buffer
	l := newTestGormLogger(&buf, true).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, gorm.ErrInvalidTransaction)
	l.Error(context.Background(), "boom %d", 1)

	assert.Empty(t, buf.String())
}
