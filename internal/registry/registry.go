package registry

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrDuplicateUsername reports a case-insensitive username collision.
	ErrDuplicateUsername = errors.New("registry: duplicate username")
	// ErrDuplicateID reports an id collision on insert.
	ErrDuplicateID = errors.New("registry: duplicate id")
	// ErrNotFound reports that no account matches the given id or username.
	ErrNotFound = errors.New("registry: account not found")
	// ErrTwoFactorEnabled reports that the enablement latch is already set.
	ErrTwoFactorEnabled = errors.New("registry: two-factor already enabled")
	// ErrCodeRejected reports that the verification callback declined the
	// submitted code. The latch is left untouched.
	ErrCodeRejected = errors.New("registry: verification code rejected")
)

// TwoFactor is the second-factor state of one account. Secret and
// ProvisioningURI are fixed at account creation; Enabled is a one-way latch
// flipped only through [Registry.EnableTwoFactor].
type TwoFactor struct {
	Enabled         bool
	SecretBase32    string
	ProvisioningURI string
	QRCodePNG       []byte
}

// Account is one registered principal. ID and Username are immutable after
// creation; PasswordHash is finished hash material produced by the caller.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	TwoFactor    TwoFactor
}

func (a Account) clone() Account {
	out := a
	out.TwoFactor.QRCodePNG = append([]byte(nil), a.TwoFactor.QRCodePNG...)
	return out
}

// Registry is the concurrency-safe account store.
type Registry struct {
	mu         sync.Mutex
	byID       map[string]*Account
	byUsername map[string]string // lowercased username -> id
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		byID:       make(map[string]*Account),
		byUsername: make(map[string]string),
	}
}

// Create inserts acc. The username uniqueness check and the insert happen
// under one lock acquisition; callers should do expensive work (hashing,
// secret generation) before calling.
func (r *Registry) Create(acc Account) error {
	key := strings.ToLower(acc.Username)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byUsername[key]; exists {
		return ErrDuplicateUsername
	}
	if _, exists := r.byID[acc.ID]; exists {
		return ErrDuplicateID
	}

	stored := acc.clone()
	r.byID[acc.ID] = &stored
	r.byUsername[key] = acc.ID
	return nil
}

// GetByID returns a copy of the account with the given id.
func (r *Registry) GetByID(id string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.byID[id]
	if !ok {
		return Account{}, ErrNotFound
	}
	return acc.clone(), nil
}

// GetByUsername returns a copy of the account whose username matches
// case-insensitively.
func (r *Registry) GetByUsername(username string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byUsername[strings.ToLower(username)]
	if !ok {
		return Account{}, ErrNotFound
	}
	return r.byID[id].clone(), nil
}

// EnableTwoFactor flips the enablement latch for the account after verify
// accepts the stored secret. The latch check, the verification, and the
// commit all run inside the same critical section, so two concurrent calls
// cannot both observe the latch unset. Verification failure leaves the
// account unchanged.
func (r *Registry) EnableTwoFactor(id string, verify func(secretBase32 string) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if acc.TwoFactor.Enabled {
		return ErrTwoFactorEnabled
	}
	if verify == nil || !verify(acc.TwoFactor.SecretBase32) {
		return ErrCodeRejected
	}

	acc.TwoFactor.Enabled = true
	return nil
}

// List returns copies of all accounts ordered by id.
func (r *Registry) List() []Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Account, 0, len(r.byID))
	for _, acc := range r.byID {
		out = append(out, acc.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of accounts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}
