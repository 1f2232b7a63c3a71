// Platepick - Restaurant Discovery and Personalized Ranking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/platepick

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/platepick/internal/metrics"
)

// Slot names. Each user owns exactly one record per slot.
const (
	slotRatings     = "ratings"
	slotLists       = "lists"
	slotPreferences = "preferences"
)

// Errors
var (
	// ErrStoreClosed is returned when the store is closed.
	ErrStoreClosed = errors.New("preference store is closed")

	// ErrEmptyUserID is returned when an operation is called without a user id.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrListNotFound is returned when a list id does not exist for the user.
	ErrListNotFound = errors.New("list not found")
)

// Config holds preference store configuration.
type Config struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string

	// InMemory keeps all data in memory. Data is lost on Close.
	InMemory bool

	// SyncWrites forces fsync after every write.
	SyncWrites bool

	// Compression enables Snappy block compression.
	Compression bool

	// GCRatio is the discard ratio passed to value log GC.
	GCRatio float64
}

// DefaultConfig returns the default on-disk configuration.
func DefaultConfig() Config {
	return Config{
		Path:        "/data/platepick",
		SyncWrites:  true,
		Compression: true,
		GCRatio:     0.5,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !c.InMemory && c.Path == "" {
		return fmt.Errorf("store path is required unless running in memory")
	}
	if c.GCRatio <= 0 || c.GCRatio >= 1 {
		return fmt.Errorf("store GC ratio must be between 0 and 1 (exclusive), got %f", c.GCRatio)
	}
	return nil
}

// Store persists ratings, lists and preference profiles per user in BadgerDB.
//
// Getters never fail: a missing, unreadable or corrupt slot is logged and
// read as its default value, so the ranking path always receives well-formed
// input. Setters return errors so the HTTP layer can report them.
type Store struct {
	db     *badger.DB
	config Config
	logger zerolog.Logger

	mu     sync.RWMutex
	closed bool

	// writeMu serializes read-modify-write transactions so they never
	// fail with badger.ErrConflict.
	writeMu sync.Mutex
}

// Open opens (or creates) the preference store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Open(cfg Config, logger zerolog.Logger) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store config: %w", err)
	}

	opts := badger.DefaultOptions(cfg.Path)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts.SyncWrites = cfg.SyncWrites && !cfg.InMemory

	if cfg.Compression {
		opts.Compression = options.Snappy
	}

	// Reduce logging verbosity
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open BadgerDB: %w", err)
	}

	s := &Store{
		db:     db,
		config: cfg,
		logger: logger.With().Str("component", "store").Logger(),
	}

	s.logger.Info().
		Str("path", cfg.Path).
		Bool("in_memory", cfg.InMemory).
		Bool("sync_writes", opts.SyncWrites).
		Bool("compression", cfg.Compression).
		Msg("preference store opened")
	return s, nil
}

// Close closes the underlying database. It is safe to call more than once.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close BadgerDB: %w", err)
	}
	s.logger.Info().Msg("preference store closed")
	return nil
}

// IsClosed reports whether Close has been called.
func (s *Store) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// RunGC reclaims value log space. In-memory stores have no value log and
// return immediately.
func (s *Store) RunGC() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	if s.config.InMemory {
		return nil
	}

	start := time.Now()
	var gcErr error
	defer func() {
		metrics.RecordStoreGC(time.Since(start), gcErr)
	}()

	// Run GC until no more cleanup is possible
	for {
		err := s.db.RunValueLogGC(s.config.GCRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			break
		}
		if err != nil {
			gcErr = fmt.Errorf("run GC: %w", err)
			return gcErr
		}
	}

	return nil
}

// ClearAll removes the ratings, lists and preferences of one user in a
// single transaction.
func (s *Store) ClearAll(ctx context.Context, userID string) error {
	start := time.Now()
	err := s.update(ctx, userID, func(txn *badger.Txn) error {
		for _, slot := range []string{slotRatings, slotLists, slotPreferences} {
			if err := txn.Delete(slotKey(userID, slot)); err != nil {
				return fmt.Errorf("delete %s: %w", slot, err)
			}
		}
		return nil
	})
	s.recordWrite("clear_all", start, err)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to clear user data")
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("cleared user data")
	return nil
}

func slotKey(userID, slot string) []byte {
	return []byte("user:" + userID + ":" + slot)
}

// view runs fn in a read-only transaction.
func (s *Store) view(userID string, fn func(txn *badger.Txn) error) error {
	if userID == "" {
		return ErrEmptyUserID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return s.db.View(fn)
}

// update runs fn in a read-write transaction.
func (s *Store) update(ctx context.Context, userID string, fn func(txn *badger.Txn) error) error {
	if userID == "" {
		return ErrEmptyUserID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.db.Update(fn)
}

// readSlot decodes the slot into v. It reports false when the key is absent.
func readSlot(txn *badger.Txn, key []byte, v interface{}) (bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s: %w", key, err)
	}

	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
	if err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func writeSlot(txn *badger.Txn, key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := txn.Set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// readOrDefault is the read side of the error policy: failures are logged
// and reported as "default" so callers fall back to the zero value.
func (s *Store) readOrDefault(op, userID, slot string, v interface{}) bool {
	start := time.Now()
	var found bool
	err := s.view(userID, func(txn *badger.Txn) error {
		var err error
		found, err = readSlot(txn, slotKey(userID, slot), v)
		return err
	})

	result := "success"
	switch {
	case err != nil:
		result = "default"
		s.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("slot", slot).
			Msg("failed to read slot, using default")
		found = false
	case !found:
		result = "default"
	}
	metrics.RecordStoreOperation(op, result, time.Since(start))
	return found
}

func (s *Store) recordWrite(op string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.RecordStoreOperation(op, result, time.Since(start))
}
