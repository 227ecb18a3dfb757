package session

import (
	"context"

	"github.com/gatherhq/gather/internal/api"
	apperrors "github.com/gatherhq/gather/internal/errors"
	"github.com/gatherhq/gather/internal/log"
)

// State is the session lifecycle state.
type State int

const (
	// StateUnknown is the startup state before Init has run.
	StateUnknown State = iota
	// StateAnonymous means no valid session exists.
	StateAnonymous
	// StateAuthenticated means a user is logged in and the bearer
	// token is set on the API client.
	StateAuthenticated
)

// Result is the outcome of an auth flow. Failures are converted to a value
// with a user-facing message; auth flows never propagate raw errors.
type Result struct {
	Success bool
	Error   string
}

func okResult() Result { return Result{Success: true} }

func failResult(msg string) Result { return Result{Success: false, Error: msg} }

// Manager owns the current session: the logged-in user, the persisted token
// pair, and the API client's bearer token. It is the sole writer of that
// token, and always sets it before any dependent request is issued.
type Manager struct {
	client *api.Client
	store  *Store
	logger *log.Logger

	state   State
	user    *api.User
	refresh string
}

// NewManager creates a session manager. The manager starts in StateUnknown
// until Init is called.
func NewManager(client *api.Client, store *Store, logger *log.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		logger: logger,
		state:  StateUnknown,
	}
}

// Init validates any stored credentials against the backend.
// A stored token that fails profile validation is discarded.
func (m *Manager) Init(ctx context.Context) State {
	creds, ok, err := m.store.Load()
	if err != nil {
		m.logger.WithError(err).Warn("discarding unreadable credentials")
		_ = m.store.Clear()
	}
	if !ok || err != nil || creds.AccessToken == "" {
		m.toAnonymous()
		return m.state
	}

	m.client.SetToken(creds.AccessToken)
	user, err := m.client.Profile(ctx)
	if err != nil {
		m.logger.WithError(err).Debug("stored token rejected, clearing session")
		_ = m.store.Clear()
		m.toAnonymous()
		return m.state
	}

	m.user = user
	m.refresh = creds.RefreshToken
	m.state = StateAuthenticated
	return m.state
}

// Login authenticates with email and password.
func (m *Manager) Login(ctx context.Context, email, password string) Result {
	auth, err := m.client.Login(ctx, email, password)
	if err != nil {
		return failResult(authMessage(err, "Login failed"))
	}
	return m.adopt(auth)
}

// Register creates an account and logs the new user in.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) Result {
	auth, err := m.client.Register(ctx, req)
	if err != nil {
		return failResult(authMessage(err, "Registration failed"))
	}
	return m.adopt(auth)
}

// LoginWithGoogle exchanges a Google OAuth access token for a session.
func (m *Manager) LoginWithGoogle(ctx context.Context, oauthToken string) Result {
	auth, err := m.client.GoogleLogin(ctx, oauthToken)
	if err != nil {
		return failResult(authMessage(err, "Google login failed"))
	}
	return m.adopt(auth)
}

// adopt persists the token pair, sets the bearer on the client, and moves
// the session to authenticated. Persistence happens first so a crash after
// adopt never leaves a live token unstored.
func (m *Manager) adopt(auth *api.AuthResponse) Result {
	creds := Credentials{
		AccessToken:  auth.Tokens.Access,
		RefreshToken: auth.Tokens.Refresh,
		Email:        auth.User.Email,
	}
	if err := m.store.Save(creds); err != nil {
		m.logger.WithError(err).Error("could not persist credentials")
		return failResult("Could not save your session, check permissions on ~/.gather")
	}

	m.client.SetToken(auth.Tokens.Access)
	user := auth.User
	m.user = &user
	m.refresh = auth.Tokens.Refresh
	m.state = StateAuthenticated
	return okResult()
}

// Logout notifies the server best-effort and always clears local state.
func (m *Manager) Logout(ctx context.Context) {
	if m.refresh != "" {
		if err := m.client.Logout(ctx, m.refresh); err != nil {
			m.logger.WithError(err).Debug("server logout failed, clearing locally")
		}
	}

	if err := m.store.Clear(); err != nil {
		m.logger.WithError(err).Warn("could not remove credentials file")
	}
	m.toAnonymous()
}

func (m *Manager) toAnonymous() {
	m.client.ClearToken()
	m.user = nil
	m.refresh = ""
	m.state = StateAnonymous
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.state
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.state == StateAuthenticated
}

// User returns the current user snapshot, or nil when anonymous.
func (m *Manager) User() *api.User {
	return m.user
}

// RequireUser returns the current user or a not-logged-in error.
func (m *Manager) RequireUser() (*api.User, error) {
	if m.state != StateAuthenticated || m.user == nil {
		return nil, apperrors.NewNotLoggedInError()
	}
	return m.user, nil
}

// authMessage extracts a user-facing message from an auth endpoint failure.
func authMessage(err error, fallback string) string {
	if apiErr, ok := err.(*api.Error); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
