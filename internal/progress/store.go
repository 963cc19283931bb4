// CourseLab - Personalized Learning Platform
// Copyright 2026 CourseLab Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/courselab/courselab-go

package progress

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/courselab/courselab-go/internal/metrics"
)

// ErrNotFound is returned when no progress record exists for a user.
var ErrNotFound = errors.New("progress: not found")

// Key prefixes for BadgerDB storage.
const (
	progressKeyPrefix = "progress:"
	profileKeyPrefix  = "profile:"
)

// Store persists progress records and serialized profiles in BadgerDB.
// It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens a durable store at the given directory path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open progress store: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens an ephemeral store. Used by tests and the demo CLI.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory progress store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get retrieves the progress record for a user.
// Returns ErrNotFound if no record exists.
func (s *Store) Get(userID string) (*UserProgress, error) {
	var p UserProgress

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(progressKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get progress: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get").Inc()
		return nil, err
	}

	metrics.StoreOps.WithLabelValues("get").Inc()
	return &p, nil
}

// Put stores a progress record, replacing any existing one.
func (s *Store) Put(p *UserProgress) error {
	if p == nil || p.UserID == "" {
		return fmt.Errorf("put progress: missing user id")
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(progressKeyPrefix+p.UserID), data)
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("put").Inc()
		return fmt.Errorf("put progress: %w", err)
	}

	metrics.StoreOps.WithLabelValues("put").Inc()
	return nil
}

// Delete removes the progress record for a user.
// Deleting a missing record is not an error.
func (s *Store) Delete(userID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(progressKeyPrefix + userID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Delete([]byte(profileKeyPrefix + userID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("delete progress: %w", err)
	}

	metrics.StoreOps.WithLabelValues("delete").Inc()
	return nil
}

// ListUsers returns the IDs of all users with a progress record.
func (s *Store) ListUsers() ([]string, error) {
	var ids []string

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(progressKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			ids = append(ids, strings.TrimPrefix(key, progressKeyPrefix))
		}
		return nil
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("list").Inc()
		return nil, fmt.Errorf("list users: %w", err)
	}

	metrics.StoreOps.WithLabelValues("list").Inc()
	return ids, nil
}

// PutProfile stores a serialized user profile. The engine derives profiles
// per call; persistence is the caller's choice for durability across
// sessions (see UpdateProfileWithActivity).
func (s *Store) PutProfile(userID string, profile any) error {
	if userID == "" {
		return fmt.Errorf("put profile: missing user id")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(profileKeyPrefix+userID), data)
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("put_profile").Inc()
		return fmt.Errorf("put profile: %w", err)
	}

	metrics.StoreOps.WithLabelValues("put_profile").Inc()
	return nil
}

// GetProfile retrieves a serialized user profile into dst.
// Returns ErrNotFound if no profile has been stored.
func (s *Store) GetProfile(userID string, dst any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profileKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, dst)
		})
	})
	if err != nil {
		metrics.StoreErrors.WithLabelValues("get_profile").Inc()
		return err
	}

	metrics.StoreOps.WithLabelValues("get_profile").Inc()
	return nil
}
