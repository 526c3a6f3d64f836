// Package sqlite is the local cache of server state: categories, feeds,
// articles, label associations and the table of pending (unsynchronized)
// marks. It is the only component touching the database file.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const backupMarker = "_backup_"

// Store owns all persisted state. Every multi-row write runs inside a
// single transaction; callers never see a half-written batch. When the
// underlying database is gone (closed, corrupted beyond recovery) queries
// return empty results and writes become no-ops instead of failing the
// caller.
type Store struct {
	path        string
	freshWindow time.Duration
	logger      *slog.Logger

	mu sync.RWMutex
	db *sqlx.DB

	vacuumMu   sync.Mutex
	vacuumDone bool
}

// Open opens (or creates) the database at path, migrates the schema and
// probes it for corruption. A corrupted file is moved aside to a
// timestamped backup and replaced with a fresh database; only the two
// newest backups are kept.
func Open(path string, freshWindow time.Duration, logger *slog.Logger) (*Store, error) {
	s := &Store{
		path:        path,
		freshWindow: freshWindow,
		logger:      logger.With("component", "store"),
	}

	db, err := s.connect()
	if err != nil {
		// A file with a broken header fails inside connect itself
		// (SQLITE_NOTADB on the first pragma), before any probe can run.
		// Same corruption class: move the file aside and start over. When
		// there is no file to move the connect failure had another cause
		// and the original error surfaces.
		s.logger.Error("database unusable, recreating", "error", err)
		if backupErr := s.backupAndRemove(); backupErr != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		if db, err = s.connect(); err != nil {
			return nil, err
		}
	} else if probeErr := probe(db); probeErr != nil {
		s.logger.Error("database corrupted, recreating", "error", probeErr)
		_ = db.Close()
		if err := s.backupAndRemove(); err != nil {
			return nil, fmt.Errorf("backup corrupted database: %w", err)
		}
		if db, err = s.connect(); err != nil {
			return nil, err
		}
	}

	s.db = db
	return s, nil
}

func (s *Store) connect() (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if err := s.migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// probe is the liveness check used to detect a corrupted file: a trivial
// query that must succeed on any healthy database.
func probe(db *sqlx.DB) error {
	var n int
	return db.Get(&n, "SELECT COUNT(*) FROM categories")
}

func (s *Store) backupAndRemove() error {
	backup := fmt.Sprintf("%s%s%d", s.path, backupMarker, time.Now().UnixMilli())
	if err := os.Rename(s.path, backup); err != nil {
		return err
	}
	// WAL sidecars belong to the broken file, not the new one.
	_ = os.Remove(s.path + "-wal")
	_ = os.Remove(s.path + "-shm")

	s.pruneBackups()
	return nil
}

// pruneBackups keeps the two newest backup files and deletes the rest.
func (s *Store) pruneBackups() {
	dir := filepath.Dir(s.path)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var backups []string
	prefix := filepath.Base(s.path) + backupMarker
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), prefix) {
			backups = append(backups, e.Name())
		}
	}
	// Timestamps are part of the name, lexicographic order is age order.
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	for i, name := range backups {
		if i < 2 {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			s.logger.Warn("failed to delete old backup", "file", name, "error", err)
		}
	}
}

// Close shuts the store down. Later calls degrade to no-ops.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// handle returns the live connection, or false when the store is closed.
func (s *Store) handle() (*sqlx.DB, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db, s.db != nil
}

// withTx runs fn inside one transaction. Unavailable store: silently
// skipped, matching the degradation contract for writes.
func (s *Store) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	db, ok := s.handle()
	if !ok {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Vacuum compacts the database file. Runs at most once per process no
// matter how often it is invoked.
func (s *Store) Vacuum(ctx context.Context) {
	s.vacuumMu.Lock()
	defer s.vacuumMu.Unlock()
	if s.vacuumDone {
		return
	}
	db, ok := s.handle()
	if !ok {
		return
	}

	start := time.Now()
	if _, err := db.ExecContext(ctx, "VACUUM"); err != nil {
		s.logger.Error("vacuum failed", "error", err)
		return
	}
	s.vacuumDone = true
	s.logger.Info("vacuum completed", "duration", time.Since(start))
}

// chunkIDs splits ids into slices of at most size elements. Bulk updates
// are bounded to keep statements below backend length limits.
func chunkIDs(ids []int64, size int) [][]int64 {
	var chunks [][]int64
	for len(ids) > size {
		chunks = append(chunks, ids[:size])
		ids = ids[size:]
	}
	if len(ids) > 0 {
		chunks = append(chunks, ids)
	}
	return chunks
}

// maxFlagChunk bounds the number of ids per bulk statement.
const maxFlagChunk = 100
