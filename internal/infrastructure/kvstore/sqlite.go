// Package kvstore provides a single-file SQLite key-value store.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/retry"
	_ "modernc.org/sqlite"
)

// Schema for the kv table, applied on Open.
const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Store is a SQLite-backed key-value store. WAL, a 10s busy timeout and a
// single connection keep overlapping one-shot commands serialized.
type Store struct {
	db       *sql.DB
	logger   *slog.Logger
	retryCfg retry.Config
}

// Open opens the store at path, creating the file and schema if needed.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(10000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply store schema: %w", err)
	}

	logger.Debug("kv store opened", "path", path)

	return &Store{
		db:     db,
		logger: logger,
		retryCfg: retry.Config{
			MaxAttempts:   3,
			InitialDelay:  10 * time.Millisecond,
			BackoffPolicy: retry.BackoffExponential,
		},
	}, nil
}

// Get returns the value stored under key. ok is false when the key is
// absent.
func (s *Store) Get(ctx context.Context, key string) (value []byte, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

// Put stores value under key, replacing any previous value. Writes that
// hit a locked database are retried with backoff.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	retryer := retry.New[sql.Result](s.retryCfg)

	_, err := retryer.Do(ctx, func(ctx context.Context) (sql.Result, error) {
		return s.db.ExecContext(ctx,
			`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value, time.Now().UnixMilli())
	})
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	s.logger.Debug("kv put", "key", key, "bytes", len(value))
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	s.logger.Debug("kv delete", "key", key)
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
