// Package store defines the permanent storage of property bags.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
	"src.pless.dev/pkg/logutil"
	. "src.pless.dev/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// initDB holds the initializers run when a store is opened, keyed by a
// description used in error messages.
var initDB = map[string](func(*bolt.Tx) error){}

type dbStore struct {
	db *bolt.DB
}

func dbWithDefaultOptions(dbname string) (*bolt.DB, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{
			Timeout:        1 * time.Second,
			NoFreelistSync: true,
			FreelistType:   bolt.FreelistMapType,
		})
	return db, err
}

// NewStore creates a new Store from the given file, creating the file and its
// directory if needed.
func NewStore(dbname string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbname), 0700); err != nil {
		return nil, err
	}
	db, err := dbWithDefaultOptions(dbname)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (Store, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the store.
func (s *dbStore) Close() error {
	return s.db.Close()
}
