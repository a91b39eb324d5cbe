package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Art-of-Technology/collab-sub012/internal/config"
	"github.com/Art-of-Technology/collab-sub012/internal/logger"
	"github.com/Art-of-Technology/collab-sub012/migrations"
)

const (
	maxAttempts      = 3
	retryBaseBackoff = 50 * time.Millisecond
)

// ErrorClassificator decides how a driver error is handled.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// DB is a database handle bound to one driver: its placeholder format, error
// classification and migration dialect.
type DB struct {
	*sql.DB
	driver             string
	queries            queryBuilder
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		queries:            newQueryBuilder(driver),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies all pending schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withRetry runs fn until it succeeds, returns an error classified as
// non-retryable, or runs out of attempts. fn must be safe to repeat.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		backoff := retryBaseBackoff * time.Duration(1<<attempt)
		db.logger.Warn().Err(err).
			Str("func", "*DB.withRetry").
			Int("attempt", attempt+1).
			Dur("backoff", backoff).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return err
}

// inTx runs fn inside a transaction, committing on success and rolling
// back otherwise. The whole transaction is retried on transient errors.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return db.withRetry(ctx, func(ctx context.Context) error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}

		if err := fn(tx); err != nil {
			_ = tx.Rollback()
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}

// isUniqueViolation reports whether err is a unique-constraint violation for
// the connection's driver.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
