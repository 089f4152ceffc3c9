package totpgate

import "errors"

var (
	// ErrDuplicateUsername is returned by Register when the requested
	// username collides case-insensitively with an existing account.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrWeakPassword is returned by Register when the password fails the
	// configured policy.
	ErrWeakPassword = errors.New("password policy violation")
	// ErrUsernameInvalid is returned by Register for an empty username.
	ErrUsernameInvalid = errors.New("invalid username")
	// ErrAccountNotFound is returned when no account matches the given
	// id or username.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCredentials is returned by Login when the password does not
	// verify against the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTwoFactorNotEnabled is returned by Login before enrollment has been
	// verified for the account.
	ErrTwoFactorNotEnabled = errors.New("two-factor not enabled")
	// ErrTwoFactorAlreadyEnabled is returned by VerifyEnrollment once the
	// enablement latch is set; the latch is one-way.
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor already enabled")
	// ErrTwoFactorInvalid is returned when a submitted TOTP code does not
	// match any code in the accepted step window.
	ErrTwoFactorInvalid = errors.New("invalid two-factor code")
	// ErrTwoFactorUnavailable is returned when TOTP provisioning itself
	// fails; the underlying cause is never surfaced to external callers.
	ErrTwoFactorUnavailable = errors.New("two-factor backend unavailable")
	// ErrSessionCreationFailed is returned by Login when token generation
	// fails after authentication succeeded. No partial session is retained.
	ErrSessionCreationFailed = errors.New("session creation failed")
	// ErrSessionInvalid is returned by ValidateSession for a token that was
	// never issued or does not belong to the account it claims.
	ErrSessionInvalid = errors.New("invalid session token")
	// ErrHashingUnavailable is returned by Register when credential hashing
	// fails. Treated as an internal failure, never a crash.
	ErrHashingUnavailable = errors.New("credential hashing unavailable")
	// ErrEngineNotReady is returned when an Engine method is called on an
	// engine that was not constructed through Builder.Build.
	ErrEngineNotReady = errors.New("engine not initialized")
)
