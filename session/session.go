package session

import (
	"errors"
	"sync"

	"github.com/areahq/areactl/logger"
	"go.uber.org/zap"
)

// Session owns the bearer token for the current user. Every API calling
// component receives a Session at construction time instead of reading the
// token from ambient storage at call sites. Lifecycle follows login/logout.
type Session struct {
	mu    sync.RWMutex
	token string
	store TokenStore
}

func New(store TokenStore) *Session {
	s := &Session{store: store}
	token, err := store.Load()
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			logger.Debug("no stored session token")
		} else {
			logger.Error("failed to load session token", zap.Error(err))
		}
		return s
	}
	s.token = token
	return s
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Login stores the token in memory and persists it.
func (s *Session) Login(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return s.store.Save(token)
}

// Logout discards the token locally. The backend keeps no session state
// beyond JWT expiry, so there is nothing to revoke server side.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
	return s.store.Clear()
}
