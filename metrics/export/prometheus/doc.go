// Package prometheus renders totpgate metrics in the Prometheus text
// exposition format, without pulling in a client library: the engine's
// counters are already atomic, so export is a read-only snapshot walk.
package prometheus
