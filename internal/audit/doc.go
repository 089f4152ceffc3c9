// Package audit provides the asynchronous audit pipeline for totpgate:
// the event model, the sink interface with built-in implementations, and
// a buffered dispatcher that decouples flow latency from sink latency.
//
// # What this package must NOT do
//
//   - Block a flow on a slow sink when DropIfFull is set; it accounts for
//     the drop instead.
//   - Import totpgate or any sibling package.
package audit
