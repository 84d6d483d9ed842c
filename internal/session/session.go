package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Adarsh-oo7/pscprep/internal/api"
	"github.com/Adarsh-oo7/pscprep/internal/store"
)

// ErrNotAuthenticated indicates no valid stored session exists and the
// user must log in.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session holds the authenticated user snapshot, theme preference and
// a couple of cross-screen scratch values for the lifetime of the
// process. It is constructed once and injected into screens — never
// accessed as a global.
type Session struct {
	api   *api.Client
	creds store.CredentialRepo
	prefs store.PreferenceRepo
	log   *logrus.Entry

	mu      sync.Mutex
	tokens  store.Tokens
	profile *api.Profile

	// Theme is "dark" or "light".
	Theme string

	// Cross-screen scratch values.
	ActiveExamID  string
	ActiveTopicID string
}

// New creates a Session. The api.Client passed in should use this
// session's AccessToken as its TokenSource.
func New(creds store.CredentialRepo, prefs store.PreferenceRepo, log *logrus.Entry) *Session {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Session{
		creds: creds,
		prefs: prefs,
		log:   log,
		Theme: "dark",
	}
}

// Bind attaches the API client after construction. The client needs
// the session's token source and the session needs the client, so one
// side has to be wired late.
func (s *Session) Bind(client *api.Client) {
	s.api = client
}

// AccessToken returns the current access token ("" when signed out).
// Suitable as an api.TokenSource.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.Access
}

// Profile returns the cached profile snapshot, or nil when signed out.
func (s *Session) Profile() *api.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Authenticated reports whether a profile has been loaded.
func (s *Session) Authenticated() bool {
	return s.Profile() != nil
}

// Bootstrap restores a previous session: load stored tokens, fetch the
// profile. An auth failure clears the stored tokens and returns
// ErrNotAuthenticated so the caller routes to login; no partial state
// is left behind.
func (s *Session) Bootstrap(ctx context.Context) error {
	t, err := s.creds.Load(ctx)
	if err != nil {
		// Local storage trouble only costs the convenience of staying
		// signed in.
		s.log.WithError(err).Warn("could not load stored credentials")
		return ErrNotAuthenticated
	}
	if t == nil {
		return ErrNotAuthenticated
	}

	s.mu.Lock()
	s.tokens = *t
	s.mu.Unlock()

	profile, err := s.api.Me(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			s.forget(ctx)
			return ErrNotAuthenticated
		}
		return fmt.Errorf("fetch profile: %w", err)
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	s.loadTheme(ctx)
	return nil
}

// Login persists the token pair, then fetches the profile. On profile
// failure the tokens are rolled back so the session stays consistent.
func (s *Session) Login(ctx context.Context, access, refresh string) error {
	t := store.Tokens{Access: access, Refresh: refresh}
	if err := s.creds.Save(ctx, t); err != nil {
		s.log.WithError(err).Warn("could not persist credentials")
	}

	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()

	profile, err := s.api.Me(ctx)
	if err != nil {
		s.forget(ctx)
		return fmt.Errorf("fetch profile: %w", err)
	}

	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	s.loadTheme(ctx)
	return nil
}

// Logout clears stored tokens and in-memory session state.
func (s *Session) Logout(ctx context.Context) {
	s.forget(ctx)
}

// SetTheme updates and persists the theme preference.
func (s *Session) SetTheme(ctx context.Context, theme string) {
	s.Theme = theme
	if err := s.prefs.Set(ctx, store.PrefTheme, theme); err != nil {
		s.log.WithError(err).Warn("could not persist theme preference")
	}
}

func (s *Session) loadTheme(ctx context.Context) {
	theme, err := s.prefs.Get(ctx, store.PrefTheme)
	if err != nil {
		s.log.WithError(err).Warn("could not load theme preference")
		return
	}
	if theme != "" {
		s.Theme = theme
	}
}

func (s *Session) forget(ctx context.Context) {
	if err := s.creds.Clear(ctx); err != nil {
		s.log.WithError(err).Warn("could not clear stored credentials")
	}
	s.mu.Lock()
	s.tokens = store.Tokens{}
	s.profile = nil
	s.mu.Unlock()
}
