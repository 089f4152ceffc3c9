// Package password provides one-way Argon2id credential hashing with
// per-call random salts, encoded in the PHC string format, and
// constant-time verification.
//
// Raw passwords are never stored, returned, or logged by this package.
package password
