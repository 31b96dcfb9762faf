package session

import (
	"encoding/json"
	"fmt"

	"github.com/projetoguri/sgpg/internal/config"
	"github.com/projetoguri/sgpg/internal/model"
)

// Store reads and writes the one Session held by a browser. It replaces a
// process-wide "current user": callers pass the request's Storage explicitly.
type Store struct {
	key string
}

// NewStore creates a Store on the standard user key.
func NewStore() *Store {
	return &Store{key: config.StorageKey.User}
}

// Load returns the persisted session, or nil when there is none. A value that
// does not decode is removed and reported as absent.
func (s *Store) Load(st Storage) (*model.Session, error) {
	raw, ok := st.Get(s.key)
	if !ok || raw == "" {
		return nil, nil
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil || sess.EmployeeID == 0 {
		if rmErr := st.Remove(s.key); rmErr != nil {
			return nil, fmt.Errorf("remove unreadable session: %w", rmErr)
		}
		return nil, nil
	}
	return &sess, nil
}

// Save persists sess, replacing whatever was stored.
func (s *Store) Save(st Storage, sess *model.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := st.Set(s.key, string(raw)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Clear removes the persisted session.
func (s *Store) Clear(st Storage) error {
	if err := st.Remove(s.key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
