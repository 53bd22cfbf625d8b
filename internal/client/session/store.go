package session

import (
	"fmt"

	"go.etcd.io/bbolt"
)

var (
	bucketSession = []byte("session")
	keyToken      = []byte("token")
	keyUsername   = []byte("username")
)

// Store keeps the session token on disk between runs, the way the web
// client kept it in browser storage. Logout deletes it locally; the server
// is never told, since token validity is signature plus expiry alone.
type Store struct {
	db *bbolt.DB
}

// Open opens (or creates) the session database at path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init session store: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save persists the session token and the username it belongs to.
func (s *Store) Save(token, username string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return err
		}
		return b.Put(keyUsername, []byte(username))
	})
}

// Load returns the stored session, or empty strings when none is stored.
func (s *Store) Load() (token, username string, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSession)
		token = string(b.Get(keyToken))
		username = string(b.Get(keyUsername))
		return nil
	})
	return token, username, err
}

// Clear removes the stored session.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketSession)
		if err := b.Delete(keyToken); err != nil {
			return err
		}
		return b.Delete(keyUsername)
	})
}
