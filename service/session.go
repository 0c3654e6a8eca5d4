package service

import (
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sgc-amambai/contracts/config"
)

var ErrSessionNotFound = errors.New("session not found")

// Session owns one contract collection. Sessions never share contracts.
type Session struct {
	ID        string
	CreatedAt time.Time
	Contracts *ContractStore

	lastSeen time.Time // guarded by SessionStore.mu
}

// SessionStore keeps the live sessions of the process
type SessionStore struct {
	sessions     map[string]*Session
	mu           sync.Mutex
	maxSessions  int // 0 = unlimited, config.Load maps an unset value to its default
	maxContracts int
	seedDemo     bool
	now          func() time.Time
}

// NewSessionStore creates a session registry from the store configuration
func NewSessionStore(cfg *config.StoreConfig) *SessionStore {
	maxSessions := cfg.MaxSessions
	if maxSessions < 0 {
		maxSessions = 0
	}
	slog.Info("session store initialized",
		"max_sessions", maxSessions,
		"max_contracts", cfg.MaxContracts,
		"seed_demo", cfg.SeedDemo,
	)
	return &SessionStore{
		sessions:     make(map[string]*Session),
		maxSessions:  maxSessions,
		maxContracts: cfg.MaxContracts,
		seedDemo:     cfg.SeedDemo,
		now:          time.Now,
	}
}

// Create opens a new session with its own empty (or demo-seeded) collection
func (s *SessionStore) Create() (*Session, error) {
	contracts := NewContractStore(s.maxContracts)
	if s.seedDemo {
		if err := SeedDemo(contracts); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		Contracts: contracts,
		lastSeen:  now,
	}
	s.sessions[sess.ID] = sess

	s.cleanupIfNeeded()
	return sess, nil
}

// Get returns the session with the given id and marks it as used
func (s *SessionStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Sessions returns the live sessions, oldest first
func (s *SessionStore) Sessions() []*Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Count returns the number of live sessions
func (s *SessionStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// cleanupIfNeeded drops the least recently used sessions beyond maxSessions
// Must be called with lock held
func (s *SessionStore) cleanupIfNeeded() {
	if s.maxSessions <= 0 || len(s.sessions) <= s.maxSessions {
		return
	}

	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].lastSeen.Before(sessions[j].lastSeen)
	})

	removeCount := len(sessions) - s.maxSessions
	for i := 0; i < removeCount; i++ {
		slog.Info("evicting idle session",
			"session_id", sessions[i].ID,
			"last_seen", sessions[i].lastSeen,
			"contracts", sessions[i].Contracts.Count(),
		)
		delete(s.sessions, sessions[i].ID)
	}
}
