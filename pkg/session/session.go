package session

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Tokens is the credential pair returned by the login endpoint.
type Tokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// User is the signed-in account as reported by the API.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Listener is notified after every sign-in and sign-out.
type Listener func(authenticated bool)

// Session is the in-memory authentication context shared by the forms of one
// app instance. Nothing is persisted: a new process starts signed out.
type Session struct {
	mu         sync.RWMutex
	tokens     Tokens
	user       *User
	signedInAt time.Time
	listeners  []Listener
	now        func() time.Time
}

// New creates a signed-out session.
func New(listeners ...Listener) *Session {
	return &Session{listeners: listeners, now: time.Now}
}

// SignIn stores the credentials. user may be nil when the API returns
// tokens only.
func (s *Session) SignIn(tokens Tokens, user *User) error {
	tokens.Access = strings.TrimSpace(tokens.Access)
	tokens.Refresh = strings.TrimSpace(tokens.Refresh)
	if tokens.Access == "" {
		return ErrMissingAccessToken
	}

	s.mu.Lock()
	s.tokens = tokens
	s.user = nil
	if user != nil {
		u := *user
		s.user = &u
	}
	s.signedInAt = s.now()
	listeners := s.listeners
	s.mu.Unlock()

	for _, l := range listeners {
		l(true)
	}
	return nil
}

// SignOut forgets the credentials.
func (s *Session) SignOut() {
	s.mu.Lock()
	was := s.tokens.Access != ""
	s.tokens = Tokens{}
	s.user = nil
	s.signedInAt = time.Time{}
	listeners := s.listeners
	s.mu.Unlock()

	if !was {
		return
	}
	for _, l := range listeners {
		l(false)
	}
}

// AccessToken returns the bearer token, or "" when signed out. It lets a
// Session act as an apiclient.TokenSource.
func (s *Session) AccessToken(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access, nil
}

func (s *Session) Tokens() Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

// User returns a copy of the signed-in user.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens.Access != ""
}

// HasRole reports whether the signed-in user has role (case-insensitive).
func (s *Session) HasRole(role string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && strings.EqualFold(s.user.Role, role)
}

// SignedInAt returns when the current credentials were stored.
func (s *Session) SignedInAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.signedInAt
}

// RequireAuth returns ErrNotAuthenticated when signed out.
func (s *Session) RequireAuth() error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}
