package infra_memory_preferences

import (
	"context"
	"sync"

	"github.com/humanbelnik/moviepick/internal/model"
)

type entryKey struct {
	session model.SessionID
	key     string
}

// Store keeps preferences in process memory. Everything is lost on restart.
type Store struct {
	mu      sync.RWMutex
	entries map[entryKey]model.Preferences
}

func New() *Store {
	return &Store{
		entries: make(map[entryKey]model.Preferences),
	}
}

func (s *Store) Get(ctx context.Context, session model.SessionID, key string) (model.Preferences, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Preferences{}, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.entries[entryKey{session: session, key: key}]
	if !ok {
		return model.Preferences{}, false, nil
	}
	return p.Clone(), true, nil
}

func (s *Store) Put(ctx context.Context, session model.SessionID, key string, p model.Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entryKey{session: session, key: key}] = p.Clone()
	return nil
}
