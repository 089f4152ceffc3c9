// Package registry owns the authoritative in-memory account map.
//
// # Design
//
// A single mutex guards both the id-keyed account map and the lowercased
// username index, so the duplicate-username check and the insert are one
// critical section and cannot race. Accounts cross the package boundary by
// value only; the live records never escape.
//
// # What this package must NOT do
//
//   - Hash passwords or verify TOTP codes. Callers pass finished hash
//     material in, and code verification enters through a callback so the
//     enablement latch can be compared and committed under the same lock.
//   - Import totpgate or any sibling package.
package registry
