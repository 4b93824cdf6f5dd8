package store

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"online-store-frontend/internal/api"
	"online-store-frontend/internal/events"
	"online-store-frontend/internal/models"
	"online-store-frontend/internal/storage"
)

// AuthAPI is the slice of the remote client the session store depends on.
type AuthAPI interface {
	Login(ctx context.Context, email, password string, rememberMe bool) (*api.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// State is the session store's lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateChecking
	StateAuthenticated
	StateAnonymous
)

// SessionStore reconciles durable storage, the in-memory identity and the
// remote "who am I" endpoint, and answers authorization questions for the
// rest of the application.
type SessionStore struct {
	api         AuthAPI
	storage     storage.Storage
	state       State
	user        *models.User
	checked     bool
	unsubscribe func()
}

// NewSessionStore creates a session store over the given browser profile
// and subscribes it to the auth signal bus. Call Close on teardown.
func NewSessionStore(authAPI AuthAPI, st storage.Storage, bus *events.Bus) *SessionStore {
	s := &SessionStore{
		api:     authAPI,
		storage: st,
		state:   StateUninitialized,
	}
	if bus != nil {
		s.unsubscribe = bus.Subscribe(s.onAuthChanged)
	}
	return s
}

// Close unsubscribes the store from the auth signal bus.
func (s *SessionStore) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// onAuthChanged reacts to the cross-cutting auth signal (a 401 anywhere in
// the application). The signal is level-triggered: it resets the check
// guard and the next CheckAuthStatus re-reads reality from storage.
func (s *SessionStore) onAuthChanged(event events.AuthChanged) {
	s.checked = false
	if !event.LoggedIn {
		s.user = nil
		s.state = StateAnonymous
	}
}

// tokenValid reports whether the JWT is not yet expired. The signature is
// deliberately not verified here; that is the backend's job, the client
// only avoids presenting a token it knows is dead.
func tokenValid(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp == nil {
		return true
	}
	return exp.After(time.Now())
}

// CheckAuthStatus runs the full reconciliation at most once per store
// lifetime: it loads token and cached identity from storage, refreshes the
// identity from the remote API when the token looks alive, and degrades to
// the cached identity when the remote call fails for anything other than
// an auth failure.
func (s *SessionStore) CheckAuthStatus(ctx context.Context) State {
	if s.checked {
		return s.state
	}
	s.state = StateChecking

	token, hasToken := storage.Token(s.storage)
	cached, hasUser := storage.ReadUser(s.storage)

	switch {
	case hasToken && hasUser && tokenValid(token):
		fresh, err := s.api.Me(ctx)
		switch {
		case err == nil:
			s.user = fresh
			storage.WriteUser(s.storage, fresh)
			s.state = StateAuthenticated
		case errors.Is(err, models.ErrAuthExpired):
			s.user = nil
			s.state = StateAnonymous
		default:
			// Remote refresh failed; the cached identity is better than
			// logging the user out over a transient error.
			s.user = cached
			s.state = StateAuthenticated
		}
	case hasToken:
		// Dead or orphaned token; clean up locally.
		storage.ClearAuth(s.storage)
		s.user = nil
		s.state = StateAnonymous
	default:
		s.user = nil
		s.state = StateAnonymous
	}

	s.checked = true
	return s.state
}

// LoginResult is the structured outcome of a login attempt; login never
// surfaces transport errors raw.
type LoginResult struct {
	Success bool
	IsAdmin bool
	Message string
	User    *models.User
}

// Login exchanges credentials with the backend and, on success, persists
// token and identity and flips the store to authenticated.
func (s *SessionStore) Login(ctx context.Context, email, password string, rememberMe bool) LoginResult {
	resp, err := s.api.Login(ctx, email, password, rememberMe)
	if err != nil {
		return LoginResult{Success: false, Message: loginFailureMessage(err)}
	}

	user := resp.User()
	storage.SetToken(s.storage, resp.Token)
	storage.WriteUser(s.storage, user)

	s.user = user
	s.state = StateAuthenticated
	s.checked = true

	return LoginResult{
		Success: true,
		IsAdmin: user.IsAdmin,
		Message: "signed in successfully",
		User:    user,
	}
}

func loginFailureMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.StatusCode == 400 {
			return "invalid email or password"
		}
	}
	if errors.Is(err, models.ErrAuthExpired) {
		return "invalid email or password"
	}
	return "sign in failed, please try again"
}

// Logout clears the identity and durable storage. Local only; no remote
// endpoint is involved.
func (s *SessionStore) Logout() {
	storage.ClearAuth(s.storage)
	s.user = nil
	s.state = StateAnonymous
	s.checked = false
}

// UpdateUser merges partial fields into the current identity in memory and
// in durable storage. The admin flag survives unless the patch explicitly
// carries it.
func (s *SessionStore) UpdateUser(patch models.UserPatch) {
	if s.user == nil {
		if cached, ok := storage.ReadUser(s.storage); ok {
			s.user = cached
		} else {
			return
		}
	}
	s.user.Merge(patch)
	storage.WriteUser(s.storage, s.user)
}

// User returns the current identity, nil when anonymous.
func (s *SessionStore) User() *models.User {
	return s.user
}

// IsAuthenticated reports whether an identity is loaded.
func (s *SessionStore) IsAuthenticated() bool {
	return s.state == StateAuthenticated && s.user != nil
}

// IsAdmin reports whether the current identity has admin privilege.
func (s *SessionStore) IsAdmin() bool {
	return s.user != nil && s.user.IsAdmin
}

// HasPermission reports whether the identity carries the named role. An
// admin identity satisfies every permission check.
func (s *SessionStore) HasPermission(name string) bool {
	if s.user == nil {
		return false
	}
	if s.user.IsAdmin {
		return true
	}
	return s.user.HasRole(name)
}

// IsOwner reports whether the identity owns the resource. Admins own
// everything.
func (s *SessionStore) IsOwner(resourceUserID int) bool {
	if s.user == nil {
		return false
	}
	if s.user.IsAdmin {
		return true
	}
	return s.user.ID == resourceUserID
}
