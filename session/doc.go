// Package session issues and tracks opaque bearer tokens proving a
// completed login.
//
// A token is the account id in unpadded base64 joined to a random
// alphanumeric payload with a dot. The encoded id exists for traceability
// only; [Store.Owner] is the authority on who a token belongs to, and
// callers must re-check membership rather than trust the decoded prefix.
//
// Tokens have no expiry and no revocation path in this package; both are
// deferred hardening work.
package session
