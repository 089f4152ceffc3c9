// Package otel bridges totpgate metrics onto an OpenTelemetry meter as
// observable counters. Values are read from engine snapshots inside the
// registered callback; nothing is pushed.
package otel
