package bot

import (
	"context"
	"fmt"
	"sync"

	"github.com/vmashkova/restopick/config"
	"github.com/vmashkova/restopick/models"
)

// Session is one user's wizard progress: the step they are on, the filters
// chosen so far and the page each option list is scrolled to.
type Session struct {
	Step    Step                    `json:"step"`
	Filters models.FilterSet        `json:"filters"`
	Pages   map[models.Category]int `json:"pages"`
}

func NewSession() *Session {
	return &Session{
		Step:    StepBudget,
		Filters: models.FilterSet{},
		Pages:   map[models.Category]int{},
	}
}

// SessionStore keeps wizard sessions keyed by Telegram user id. Get returns
// nil, nil when the user has no session.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, userID int64, s *Session) error
	Remove(ctx context.Context, userID int64) error
}

// NewSessionStore builds the backend named in the config.
func NewSessionStore(cfg config.Sessions) (SessionStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return NewMemorySessionStore(), nil
	case "redis":
		return NewRedisSessionStore(cfg.RedisAddr), nil
	case "sqlite":
		return NewSqliteSessionStore(cfg.SqlitePath)
	}

	return nil, fmt.Errorf("unknown sessions backend: %q", cfg.Backend)
}

// MemorySessionStore is the default backend; sessions live for the process
// lifetime and are never evicted.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[int64]*Session),
	}
}

func (m *MemorySessionStore) Get(_ context.Context, userID int64) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.sessions[userID], nil
}

func (m *MemorySessionStore) Put(_ context.Context, userID int64, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[userID] = s
	return nil
}

func (m *MemorySessionStore) Remove(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, userID)
	return nil
}
