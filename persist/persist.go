// Package persist snapshots text state into a bbolt database so a session
// can resume where the previous one left off.
package persist

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/iw2rmb/eddy/store"
)

const (
	bucketState = "state"
	keyText     = "text"
)

// DB is the snapshot database. One snapshot is kept: the latest text value.
type DB struct {
	db *bolt.DB
}

// Open opens the snapshot database at path, creating it when missing.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketState))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init snapshot db: %w", err)
	}
	return &DB{db: db}, nil
}

func (d *DB) Close() error { return d.db.Close() }

// Save stores text as the current snapshot, replacing the previous one.
func (d *DB) Save(text string) error {
	err := d.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketState)).Put([]byte(keyText), []byte(text))
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the saved snapshot. ok is false when nothing has been saved.
func (d *DB) Load() (text string, ok bool, err error) {
	err = d.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketState)).Get([]byte(keyText))
		if v == nil {
			return nil
		}
		text, ok = string(v), true
		return nil
	})
	if err != nil {
		return "", false, fmt.Errorf("load snapshot: %w", err)
	}
	return text, ok, nil
}

// Attach saves every distinct state value st produces, including the current
// one. Save errors go to onErr, which may be nil. The returned cancel stops
// the autosave; it does not close the database.
func Attach(st *store.Store[string], d *DB, onErr func(error)) (cancel func()) {
	return store.Observe(st, func(text string) {
		if err := d.Save(text); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
