package totpgate

import "sync/atomic"

// MetricID identifies one counter in the in-process metrics system.
type MetricID uint16

const (
	// MetricRegisterSuccess counts accounts created.
	MetricRegisterSuccess MetricID = iota
	// MetricRegisterDuplicate counts registrations rejected for a username
	// collision.
	MetricRegisterDuplicate
	// MetricRegisterPolicyReject counts registrations rejected by the
	// password policy.
	MetricRegisterPolicyReject
	// MetricRegisterFailure counts registrations that failed internally
	// (hashing, secret generation, artifact rendering).
	MetricRegisterFailure
	// MetricEnrollSuccess counts enrollment verifications that set the
	// enablement latch.
	MetricEnrollSuccess
	// MetricEnrollInvalidCode counts enrollment verifications rejected for
	// a wrong code.
	MetricEnrollInvalidCode
	// MetricEnrollAlreadyEnabled counts enrollment verifications against an
	// already-latched account.
	MetricEnrollAlreadyEnabled
	// MetricLoginSuccess counts fully authenticated logins.
	MetricLoginSuccess
	// MetricLoginFailure counts logins rejected at the lookup or password
	// gate.
	MetricLoginFailure
	// MetricLoginTwoFactorMissing counts logins rejected because enrollment
	// was never verified.
	MetricLoginTwoFactorMissing
	// MetricLoginTwoFactorInvalid counts logins rejected at the TOTP gate.
	MetricLoginTwoFactorInvalid
	// MetricSessionIssued counts session tokens minted.
	MetricSessionIssued
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds lock-free counters. The write path is allocation-free;
// counters occupy distinct cache lines to avoid false sharing between
// concurrent flows.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time copy of all counters.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates a Metrics instance. When cfg.Enabled is false all
// operations are no-ops and Snapshot returns an empty map.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether counters are recording.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the given counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Get returns the current value of the given counter.
func (m *Metrics) Get(id MetricID) uint64 {
	if m == nil || !m.enabled || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot deep-copies all counters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricIDCount),
	}
	if m == nil || !m.enabled {
		return snapshot
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snapshot.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snapshot
}
