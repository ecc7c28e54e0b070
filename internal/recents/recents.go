// Package recents keeps the recently-opened-workspace list in a local
// bbolt database, keyed by workspace root.
package recents

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"
)

const RecentsBucket = "recent_workspaces"

var (
	ErrNilDB          = errors.New("database is not open")
	ErrBucketNotFound = errors.New("bucket not found")
)

// Config contains configuration for a Store.
type Config struct {
	Path       string
	FileMode   os.FileMode
	Options    *bbolt.Options
	Serializer Serializer
}

// Store provides mutex-guarded access to the recents bucket.
type Store struct {
	db         *bbolt.DB
	serializer Serializer
	logger     *slog.Logger
	mu         sync.RWMutex
}

// Open creates or opens the recents database and ensures the bucket
// exists.
func Open(cfg Config, logger *slog.Logger) (*Store, error) {
	if cfg.Serializer == nil {
		cfg.Serializer = JSONSerializer{}
	}
	if cfg.FileMode == 0 {
		cfg.FileMode = 0o600
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	db, err := bbolt.Open(cfg.Path, cfg.FileMode, cfg.Options)
	if err != nil {
		return nil, fmt.Errorf("failed to open recents database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(RecentsBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize recents database: %w", err)
	}

	return &Store{
		db:         db,
		serializer: cfg.Serializer,
		logger:     logger,
	}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return ErrNilDB
	}
	s.logger.Info("Closing recents store")
	return s.db.Close()
}

// Touch records that the workspace at root was opened now, creating the
// entry on first sight and bumping its counter afterwards.
func (s *Store) Touch(root, name string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entry Entry

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(RecentsBucket))
		if bucket == nil {
			return ErrBucketNotFound
		}

		if data := bucket.Get([]byte(root)); data != nil {
			if err := s.serializer.Deserialize(data, &entry); err != nil {
				return err
			}
		} else {
			entry = Entry{ID: uuid.NewString(), Root: root}
		}

		if name != "" {
			entry.Name = name
		}
		entry.LastOpened = time.Now().UTC()
		entry.OpenCount++

		data, err := s.serializer.Serialize(&entry)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(root), data)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Touched recent workspace", "root", root, "count", entry.OpenCount)
	return &entry, nil
}

// List returns all entries, most recently opened first.
func (s *Store) List() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []Entry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(RecentsBucket))
		if bucket == nil {
			return ErrBucketNotFound
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entry Entry
			if err := s.serializer.Deserialize(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastOpened.After(entries[j].LastOpened)
	})
	return entries, nil
}

// Remove deletes the entry for root. Removing an unknown root is not an
// error.
func (s *Store) Remove(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(RecentsBucket))
		if bucket == nil {
			return ErrBucketNotFound
		}
		return bucket.Delete([]byte(root))
	})
}

// Clear drops every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(RecentsBucket)); err != nil {
			return err
		}
		_, err := tx.CreateBucket([]byte(RecentsBucket))
		return err
	})
}
