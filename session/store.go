package session

import (
	"errors"
	"sync"
)

// ErrTokenExists reports a token-value collision on insert. Collisions are
// astronomically unlikely at the configured payload entropy, but the store
// still refuses the insert so the caller can re-roll.
var ErrTokenExists = errors.New("session: token already issued")

// Store is the concurrency-safe account→tokens relation. One account may
// own any number of concurrently valid tokens.
type Store struct {
	mu      sync.Mutex
	byOwner map[string][]string
	ownerOf map[string]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		byOwner: make(map[string][]string),
		ownerOf: make(map[string]string),
	}
}

// Append records token as belonging to accountID, creating the account's
// token set if absent.
func (s *Store) Append(accountID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ownerOf[token]; exists {
		return ErrTokenExists
	}
	s.ownerOf[token] = accountID
	s.byOwner[accountID] = append(s.byOwner[accountID], token)
	return nil
}

// Owner reports which account a token was issued to.
func (s *Store) Owner(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner, ok := s.ownerOf[token]
	return owner, ok
}

// TokensFor returns a copy of the token set owned by accountID, in
// issuance order.
func (s *Store) TokensFor(accountID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.byOwner[accountID]...)
}

// Len returns the total number of issued tokens.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ownerOf)
}
