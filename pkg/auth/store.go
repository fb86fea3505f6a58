// Package auth owns the client session: the bearer token and identity
// record persisted in durable storage, and the login/logout flows around
// them. It is the single source of truth for "am I logged in, and as whom".
package auth

import (
	"encoding/json"
	"sync"

	"startuphub/domain"
	"startuphub/infrastructure/storage"

	"go.uber.org/zap"
)

// Storage keys. The web front-end uses the same two localStorage keys; both
// are always written and cleared together.
const (
	KeyAccessToken = "accessToken"
	KeyUser        = "user"
)

// Store holds the current session on top of durable storage. Reads are
// served from storage on every call so that a cleared session is observed
// immediately by all callers.
type Store struct {
	mu      sync.Mutex
	storage storage.Store
	onClear []func()
	logger  *zap.Logger
}

// NewStore creates a session store over the given storage backend.
func NewStore(st storage.Store, logger *zap.Logger) *Store {
	return &Store{storage: st, logger: logger}
}

// Save persists the token and identity record. Both keys are written; a
// partial session is never stored.
func (s *Store) Save(token string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(KeyAccessToken, token); err != nil {
		return err
	}
	return s.storage.Set(KeyUser, string(encoded))
}

// Token returns the stored bearer token, and whether one is present.
func (s *Store) Token() (string, bool) {
	return s.storage.Get(KeyAccessToken)
}

// Current returns the stored identity record, if any.
func (s *Store) Current() (domain.User, bool) {
	raw, ok := s.storage.Get(KeyUser)
	if !ok {
		return domain.User{}, false
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return domain.User{}, false
	}
	return u, true
}

// Claims decodes the stored token's claims for display. Absence of a
// token or an undecodable one both read as no claims.
func (s *Store) Claims() (TokenClaims, bool) {
	token, ok := s.storage.Get(KeyAccessToken)
	if !ok {
		return TokenClaims{}, false
	}
	claims, err := InspectToken(token)
	if err != nil {
		return TokenClaims{}, false
	}
	return claims, true
}

// IsAuthenticated reports whether a token is present. Expiry is not checked
// locally; only a backend rejection clears the session.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.storage.Get(KeyAccessToken)
	return ok
}

// Clear removes both session keys and notifies subscribers. It is called by
// logout and by the 401 interceptor.
func (s *Store) Clear() {
	s.mu.Lock()
	if err := s.storage.Delete(KeyAccessToken); err != nil {
		s.logger.Warn("Failed to delete access token", zap.Error(err))
	}
	if err := s.storage.Delete(KeyUser); err != nil {
		s.logger.Warn("Failed to delete user record", zap.Error(err))
	}
	subs := make([]func(), len(s.onClear))
	copy(subs, s.onClear)
	s.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// OnClear registers a callback invoked after the session is cleared.
// The route table uses this to fall back to the login view.
func (s *Store) OnClear(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onClear = append(s.onClear, fn)
}
