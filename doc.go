// Package totpgate provides a minimal authentication engine: account
// registration with Argon2id credential hashing, TOTP second-factor
// enrollment and verification, and opaque session-token issuance against
// an in-memory account store.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// totpgate is the public surface. It exposes [Engine], [Builder], [Config],
// the sentinel error variables, and value types (RegisterResult, LoginResult,
// AccountSummary, MetricsSnapshot). The account registry and audit
// dispatching live under internal/ and are never exported; the credential
// hasher and the session store live in their own importable packages.
//
// # What this package must NOT do
//
//   - Perform network or disk I/O inside Engine methods. All state is held
//     in process memory for the lifetime of the process.
//   - Expose the live account map, the token map, or raw TOTP secrets other
//     than the one-time enrollment payload returned by [Engine.Register].
//   - Log. Observability happens through the audit dispatcher and the
//     metrics counters; the transport layer owns logging.
//
// # Deliberately deferred
//
// Rate limiting, session-token expiry and revocation, a TOTP replay cache
// beyond the algorithm's own step window, and encryption of stored TOTP
// secrets are follow-on hardening work, not silent additions.
package totpgate
