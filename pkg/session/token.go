package session

import (
	"time"

	"github.com/drawhub-lab/client/pkg/kv"
	"github.com/golang-jwt/jwt/v4"
)

const (
	tokenKey = "auth_token"
	userKey  = "user_info"
)

// Tokens is the durable bearer token store. It satisfies the request
// wrapper's TokenProvider.
type Tokens struct {
	store kv.Store
}

func NewTokens(store kv.Store) *Tokens {
	return &Tokens{store: store}
}

func (t *Tokens) Token() (string, bool) {
	return t.store.Get(tokenKey)
}

func (t *Tokens) Set(token string) error {
	return t.store.Set(tokenKey, token)
}

// Clear drops the token and the cached user profile so a later reload can
// never show a stale identity.
func (t *Tokens) Clear() error {
	if err := t.store.Delete(tokenKey); err != nil {
		return err
	}

	return t.store.Delete(userKey)
}

// ExpiresAt reads the exp claim of the stored token without verifying the
// signature; verification belongs to the backend. The second result is
// false when no token is stored or it carries no expiry.
func (t *Tokens) ExpiresAt() (time.Time, bool) {
	raw, ok := t.store.Get(tokenKey)
	if !ok {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, &claims); err != nil {
		return time.Time{}, false
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}
