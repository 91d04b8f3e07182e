package store

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var bucketName = []byte("datastore")

// Store is a thin wrapper over a bbolt database holding every persisted
// collection as a serialized blob under a string key. All reads and writes
// are fail-soft: callers never crash on storage corruption.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the datastore file and ensures the
// backing bucket exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "create datastore dir")
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 3 * time.Second})
	if err != nil {
		return nil, errors.Wrap(err, "open datastore")
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "init datastore bucket")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Read returns the raw bytes stored under key, or absent=false when the key
// has never been written.
func (s *Store) Read(key string) (value []byte, present bool) {
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			value = make([]byte, len(v))
			copy(value, v)
			present = true
		}
		return nil
	})
	if err != nil {
		zap.S().Errorf("datastore read %s failed: %s", key, err.Error())
		return nil, false
	}
	return value, present
}

// Write stores value under key.
func (s *Store) Write(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}
