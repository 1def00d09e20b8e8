package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/repositories/metadata"
	"github.com/levantva/crewcenter/internal/common"
	"github.com/levantva/crewcenter/internal/logging"
)

// AuthMode selects what Login does when the authenticator returns no user.
type AuthMode string

const (
	// AuthModeDemo signs the member in with a placeholder profile.
	AuthModeDemo AuthMode = "demo"
	// AuthModeStrict rejects the attempt with common.ErrInvalidCredentials.
	AuthModeStrict AuthMode = "strict"
)

// ParseAuthMode accepts "demo" and "strict".
func ParseAuthMode(s string) (AuthMode, error) {
	switch AuthMode(strings.ToLower(strings.TrimSpace(s))) {
	case AuthModeDemo:
		return AuthModeDemo, nil
	case AuthModeStrict:
		return AuthModeStrict, nil
	}
	return "", fmt.Errorf("unknown auth mode %q", s)
}

// PlaceholderUser is the profile given to a member the authenticator could
// not vouch for in demo mode.
func PlaceholderUser(callsign string) models.User {
	return models.User{
		ID:         "demo-user",
		FirstName:  "Demo",
		LastName:   "User",
		Callsign:   callsign,
		Division:   "Middle East",
		Rating:     "Captain",
		Status:     "online",
		TotalHours: 1250,
		JoinDate:   "2022-03-15",
		Email:      strings.ToLower(callsign) + "@levantva.com",
	}
}

// SessionStore holds zero or one signed-in member and mirrors it to the
// metadata repository under common.SessionKey.
type SessionStore struct {
	mu   sync.RWMutex
	user *models.User

	auth  Authenticator
	repo  metadata.Repository
	mode  AuthMode
	log   logging.Logger
	hooks []func(*models.User)
}

func NewSessionStore(auth Authenticator, repo metadata.Repository, mode AuthMode, log logging.Logger) *SessionStore {
	if mode == "" {
		mode = AuthModeDemo
	}
	return &SessionStore{
		auth: auth,
		repo: repo,
		mode: mode,
		log:  log.With("module", "session"),
	}
}

// OnChange registers fn to be called with a copy of the member after every
// login, update and logout (nil after logout).
func (s *SessionStore) OnChange(fn func(*models.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, fn)
}

// Restore loads the persisted member, if any. The record is trusted as is.
// A record that cannot be decoded is deleted and the store stays empty.
func (s *SessionStore) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, common.SessionKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if raw == nil {
		return nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Error(ctx, "stored session is malformed, clearing it", "error", err)
		if derr := s.repo.Delete(ctx, common.SessionKey); derr != nil {
			s.log.Error(ctx, "clearing malformed session failed", "error", derr)
		}
		return nil
	}

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "callsign", u.Callsign)
	return nil
}

// Login signs a member in. Empty fields yield common.ErrMissingCredentials.
// When the authenticator returns no user, demo mode signs in a placeholder
// and strict mode returns common.ErrInvalidCredentials.
func (s *SessionStore) Login(ctx context.Context, callsign, password string) (models.User, error) {
	if callsign == "" || password == "" {
		return models.User{}, common.ErrMissingCredentials
	}

	var u models.User
	if found := s.auth.Authenticate(ctx, callsign, password); found != nil {
		u = *found
	} else {
		if s.mode == AuthModeStrict {
			s.log.Info(ctx, "login rejected", "callsign", callsign)
			return models.User{}, common.ErrInvalidCredentials
		}
		s.log.Info(ctx, "signing in with placeholder profile", "callsign", callsign)
		u = PlaceholderUser(callsign)
	}

	if err := s.set(ctx, u); err != nil {
		return models.User{}, err
	}
	s.log.Info(ctx, "logged in", "callsign", u.Callsign)
	return u, nil
}

// Logout clears the member from memory and storage. Calling it with
// nobody signed in is not an error.
func (s *SessionStore) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, common.SessionKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	s.mu.Lock()
	had := s.user != nil
	s.user = nil
	hooks := s.hooks
	s.mu.Unlock()

	if had {
		s.log.Info(ctx, "logged out")
		for _, fn := range hooks {
			fn(nil)
		}
	}
	return nil
}

// Update merges patch into the signed-in member and persists the result.
// It reports false when nobody is signed in.
func (s *SessionStore) Update(ctx context.Context, patch models.UserPatch) (models.User, bool, error) {
	s.mu.RLock()
	cur := s.user
	s.mu.RUnlock()
	if cur == nil {
		return models.User{}, false, nil
	}

	u := patch.Apply(*cur)
	if err := s.set(ctx, u); err != nil {
		return models.User{}, true, err
	}
	return u, true, nil
}

// Current returns a copy of the signed-in member.
func (s *SessionStore) Current() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// Mode reports the configured auth mode.
func (s *SessionStore) Mode() AuthMode {
	return s.mode
}

func (s *SessionStore) set(ctx context.Context, u models.User) error {
	if err := metadata.SetJSON(ctx, s.repo, common.SessionKey, u); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.user = &u
	hooks := s.hooks
	s.mu.Unlock()

	for _, fn := range hooks {
		c := u
		fn(&c)
	}
	return nil
}
