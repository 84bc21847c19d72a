// Package session owns the authenticated identity on this client: the
// bearer token, the cached user profile and the role projections derived
// from it. It is handed to collaborators explicitly; nothing else reads the
// underlying storage keys.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api/auth"
	"github.com/drawhub-lab/client/pkg/kv"
	"github.com/drawhub-lab/client/pkg/logger"
)

type Store struct {
	mu     sync.RWMutex
	tokens *Tokens
	store  kv.Store
	auth   auth.IEndpoint
	log    logger.Logger

	user *model.User
}

// NewStore re-hydrates the cached profile from the kv store so the identity
// survives a restart without a network round trip.
func NewStore(store kv.Store, tokens *Tokens, authEndpoint auth.IEndpoint, log logger.Logger) *Store {
	s := &Store{tokens: tokens, store: store, auth: authEndpoint, log: log}

	if raw, ok := store.Get(userKey); ok {
		var user model.User
		if err := json.Unmarshal([]byte(raw), &user); err == nil {
			s.user = &user
		} else {
			log.Warnf("dropping unreadable cached profile: %v", err)
			_ = store.Delete(userKey)
		}
	}

	return s
}

func (s *Store) Tokens() *Tokens {
	return s.tokens
}

func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}

	return *s.user, true
}

func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil &&
		(s.user.Role == model.RoleAdmin || s.user.Role == model.RoleSuperAdmin)
}

func (s *Store) IsSuperAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil && s.user.Role == model.RoleSuperAdmin
}

// Login persists the returned token and profile as a side effect of
// success.
func (s *Store) Login(ctx context.Context, req model.LoginRequest) (model.User, error) {
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		return model.User{}, err
	}

	if err := s.tokens.Set(resp.Token); err != nil {
		s.log.Warnf("cannot persist token: %v", err)
	}
	s.setUser(&resp.User)

	return resp.User, nil
}

// Logout clears local state even when the remote invalidation fails.
func (s *Store) Logout(ctx context.Context) error {
	defer s.clearLocal()

	return s.auth.Logout(ctx)
}

// FetchUser refreshes the cached identity. A failure clears the token and
// is returned so callers can react.
func (s *Store) FetchUser(ctx context.Context) (model.User, error) {
	user, err := s.auth.Me(ctx)
	if err != nil {
		s.clearLocal()
		return model.User{}, err
	}

	s.setUser(&user)
	return user, nil
}

// InitializeAuth runs once at startup. Either the stored token still
// resolves to an identity, or the client ends up fully logged out; a
// half-authenticated state is not a possible outcome.
func (s *Store) InitializeAuth(ctx context.Context) {
	if _, ok := s.tokens.Token(); !ok {
		s.clearLocal()
		return
	}

	if _, err := s.FetchUser(ctx); err != nil {
		s.log.Warnf("stored session is no longer valid: %v", err)
	}
}

// HandleUnauthorized is the 401 hook registered on the request wrapper.
func (s *Store) HandleUnauthorized() {
	s.clearLocal()
}

func (s *Store) setUser(user *model.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if user == nil {
		return
	}

	raw, err := json.Marshal(user)
	if err != nil {
		s.log.Warnf("cannot serialize profile: %v", err)
		return
	}

	if err := s.store.Set(userKey, string(raw)); err != nil {
		s.log.Warnf("cannot persist profile: %v", err)
	}
}

func (s *Store) clearLocal() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.log.Warnf("cannot clear session state: %v", err)
	}
}
