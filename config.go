package totpgate

import (
	"errors"
	"strings"
)

// Config carries every tunable of the engine. Configure it before
// [Builder.Build]; the engine treats it as immutable afterwards.
type Config struct {
	Password PasswordConfig
	Policy   PolicyConfig
	TOTP     TOTPConfig
	Session  SessionConfig
	Identity IdentityConfig
	Security SecurityConfig
	Audit    AuditConfig
	Metrics  MetricsConfig
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig holds the Argon2id parameters used by the credential
// hasher.
type PasswordConfig struct {
	Memory      uint32 // in KB
	Time        uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// PolicyConfig defines the password acceptance policy enforced at
// registration. Beyond MinLength, a password must contain at least one
// uppercase letter, one lowercase letter, one digit, and one rune from
// Symbols.
type PolicyConfig struct {
	MinLength int
	Symbols   string
}

/*
====================================
TOTP CONFIG
====================================
*/

// TOTPConfig controls second-factor secret generation and verification.
type TOTPConfig struct {
	Issuer     string
	Digits     int
	Period     int    // seconds per step
	Skew       int    // accepted steps either side of now
	Algorithm  string // "SHA1", "SHA256" (default), "SHA512"
	SecretSize int    // secret bytes fed to the generator
	QRSize     int    // rendered QR image edge, in pixels
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig controls opaque session-token issuance.
type SessionConfig struct {
	// TokenLength is the length of the random alphanumeric payload
	// appended to the encoded account id.
	TokenLength int
}

// IdentityConfig controls the snowflake identifier generator.
type IdentityConfig struct {
	// Node distinguishes concurrent generator instances (0-1023).
	Node int64
	// EpochMillis is the generator epoch as Unix milliseconds.
	EpochMillis int64
}

// SecurityConfig holds opt-in hardening switches.
type SecurityConfig struct {
	// MaskUnknownUsername collapses the login-time distinction between an
	// unknown username and a wrong password into ErrInvalidCredentials,
	// closing the username-enumeration oracle the reference behavior leaks.
	// Off by default to match observed behavior.
	MaskUnknownUsername bool
}

/*
====================================
AUDIT / METRICS CONFIG
====================================
*/

// AuditConfig controls the asynchronous audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// defaultEpochMillis is 2025-01-01T00:00:00Z.
const defaultEpochMillis int64 = 1735689600000

// DefaultConfig returns the production defaults: Argon2id 64 MB/t=3/p=2,
// SHA-256 TOTP with 6 digits, a 30-second period and one step of skew,
// 64-character session-token payloads, and audit + metrics enabled.
func DefaultConfig() Config {
	return Config{
		Password: PasswordConfig{
			Memory:      64 * 1024,
			Time:        3,
			Parallelism: 2,
			SaltLength:  16,
			KeyLength:   32,
		},
		Policy: PolicyConfig{
			MinLength: 8,
			Symbols:   "!@#$%^&*()",
		},
		TOTP: TOTPConfig{
			Issuer:     "totpgate",
			Digits:     6,
			Period:     30,
			Skew:       1,
			Algorithm:  "SHA256",
			SecretSize: 32,
			QRSize:     200,
		},
		Session: SessionConfig{
			TokenLength: 64,
		},
		Identity: IdentityConfig{
			Node:        1,
			EpochMillis: defaultEpochMillis,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func validateConfig(cfg Config) error {
	if cfg.Password.Memory < 8*1024 {
		return errors.New("password memory must be >= 8192 KB")
	}
	if cfg.Password.Time < 1 {
		return errors.New("password time must be >= 1")
	}
	if cfg.Password.Parallelism < 1 {
		return errors.New("password parallelism must be >= 1")
	}
	if cfg.Password.SaltLength < 16 {
		return errors.New("password salt length must be >= 16")
	}
	if cfg.Password.KeyLength < 16 {
		return errors.New("password key length must be >= 16")
	}
	if cfg.Policy.MinLength < 1 {
		return errors.New("policy minimum length must be >= 1")
	}
	if cfg.Policy.Symbols == "" {
		return errors.New("policy symbol set must not be empty")
	}
	if cfg.TOTP.Issuer == "" {
		return errors.New("totp issuer must not be empty")
	}
	if cfg.TOTP.Digits != 6 && cfg.TOTP.Digits != 8 {
		return errors.New("totp digits must be 6 or 8")
	}
	if cfg.TOTP.Period < 1 {
		return errors.New("totp period must be >= 1 second")
	}
	if cfg.TOTP.Skew < 0 {
		return errors.New("totp skew must be >= 0")
	}
	switch strings.ToUpper(cfg.TOTP.Algorithm) {
	case "SHA1", "SHA256", "SHA512":
	default:
		return errors.New("unsupported totp algorithm")
	}
	if cfg.TOTP.SecretSize < 16 {
		return errors.New("totp secret size must be >= 16 bytes")
	}
	if cfg.TOTP.QRSize < 64 {
		return errors.New("totp qr size must be >= 64 pixels")
	}
	if cfg.Session.TokenLength < 32 {
		return errors.New("session token length must be >= 32")
	}
	if cfg.Identity.Node < 0 || cfg.Identity.Node > 1023 {
		return errors.New("identity node must be in [0, 1023]")
	}
	if cfg.Identity.EpochMillis <= 0 {
		return errors.New("identity epoch must be positive")
	}
	if cfg.Audit.Enabled && cfg.Audit.BufferSize < 1 {
		return errors.New("audit buffer size must be >= 1")
	}
	return nil
}
