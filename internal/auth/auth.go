// Package auth implements the demo login scheme: a fixed credential table,
// opaque bearer tokens, and sessions that expire after a period of
// inactivity. The active session is persisted so a restart does not log
// the user out.
package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dokonepal/doko/internal/apperr"
	"github.com/dokonepal/doko/internal/kvstore"
)

// Roles assigned to authenticated users.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultInactivityLimit logs a session out after this much idle time.
const DefaultInactivityLimit = 30 * time.Minute

const sessionKey = "session"

// demo credential table; only admin gets the admin role.
var credentials = map[string]string{
	"admin":    "admin123",
	"ayush":    "leader123",
	"anuskar":  "frontend123",
	"utsab":    "backend123",
	"sandhaya": "qa123",
	"jesina":   "docs123",
	"demo":     "demo123",
}

// Session is an authenticated user session.
type Session struct {
	Token    string    `json:"token"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
	LoggedIn time.Time `json:"logged_in"`
	LastSeen time.Time `json:"last_seen"`
}

// Manager validates credentials and tracks the active session. The demo
// model is single-session: a new login replaces any previous one.
type Manager struct {
	provider        kvstore.Provider
	logger          *slog.Logger
	inactivityLimit time.Duration

	mu      sync.Mutex
	session *Session

	now      func() time.Time
	newToken func() string
}

// NewManager creates a session manager backed by the given provider and
// restores any persisted session.
func NewManager(provider kvstore.Provider, logger *slog.Logger, inactivityLimit time.Duration) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if inactivityLimit <= 0 {
		inactivityLimit = DefaultInactivityLimit
	}
	m := &Manager{
		provider:        provider,
		logger:          logger,
		inactivityLimit: inactivityLimit,
		now:             time.Now,
		newToken:        randomToken,
	}
	m.restore()
	return m
}

// SetClock overrides the manager clock, for tests.
func (m *Manager) SetClock(now func() time.Time) { m.now = now }

// Login checks the credentials and starts a new session, replacing any
// existing one. Bad credentials yield apperr.ErrUnauthorized.
func (m *Manager) Login(username, password string) (Session, error) {
	want, ok := credentials[username]
	if !ok || want != password {
		return Session{}, fmt.Errorf("login %q: %w", username, apperr.ErrUnauthorized)
	}

	role := RoleUser
	if username == "admin" {
		role = RoleAdmin
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.session = &Session{
		Token:    m.newToken(),
		Username: username,
		Role:     role,
		LoggedIn: now,
		LastSeen: now,
	}
	m.persistLocked()
	return *m.session, nil
}

// Logout ends the session for the given token. An unknown token is
// apperr.ErrUnauthorized.
func (m *Manager) Logout(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.session.Token != token {
		return apperr.ErrUnauthorized
	}
	m.session = nil
	m.persistLocked()
	return nil
}

// Validate resolves a token to its session and refreshes the inactivity
// clock. Idle sessions past the limit are dropped.
func (m *Manager) Validate(token string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil || m.session.Token != token {
		return Session{}, apperr.ErrUnauthorized
	}

	now := m.now()
	if now.Sub(m.session.LastSeen) > m.inactivityLimit {
		m.logger.Info("session expired", slog.String("user", m.session.Username))
		m.session = nil
		m.persistLocked()
		return Session{}, apperr.ErrUnauthorized
	}

	m.session.LastSeen = now
	m.persistLocked()
	return *m.session, nil
}

// Current returns the active session without touching the inactivity
// clock. ok is false when nobody is logged in.
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// restore loads the persisted session, discarding it when already idle
// past the limit.
func (m *Manager) restore() {
	raw, err := m.provider.Get(sessionKey)
	if err != nil {
		if err != kvstore.ErrKeyNotFound {
			m.logger.Warn("restore session", slog.String("error", err.Error()))
		}
		return
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		m.logger.Warn("restore session: corrupt entry", slog.String("error", err.Error()))
		return
	}
	if m.now().Sub(s.LastSeen) > m.inactivityLimit {
		return
	}
	m.session = &s
}

// persistLocked writes the session state through to the provider.
// Callers must hold the lock.
func (m *Manager) persistLocked() {
	if m.session == nil {
		if err := m.provider.Remove(sessionKey); err != nil {
			m.logger.Warn("clear session", slog.String("error", err.Error()))
		}
		return
	}
	raw, err := json.Marshal(m.session)
	if err != nil {
		m.logger.Error("encode session", slog.String("error", err.Error()))
		return
	}
	if err := m.provider.Set(sessionKey, raw); err != nil {
		m.logger.Warn("persist session", slog.String("error", err.Error()))
	}
}

func randomToken() string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}
