package totpgate

import (
	"time"

	internalaudit "github.com/MrEthical07/totpgate/internal/audit"
	"github.com/MrEthical07/totpgate/internal/registry"
	"github.com/MrEthical07/totpgate/password"
	"github.com/MrEthical07/totpgate/session"
)

// Engine is the authentication orchestrator. It owns the account registry
// and the session store and sequences them with the credential hasher and
// the TOTP engine into the three public flows: Register, VerifyEnrollment,
// and Login.
//
// Construct an Engine through [Builder.Build]; after that, every method is
// safe for concurrent use.
type Engine struct {
	config   Config
	registry *registry.Registry
	sessions *session.Store
	ids      IDSource
	hasher   *password.Hasher
	totp     *totpManager
	audit    *internalaudit.Dispatcher
	metrics  *Metrics
	clock    func() time.Time
}

// Close flushes and stops the audit dispatcher. The engine must not be
// used after Close.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.audit.Close()
}

// AuditDropped reports how many audit events were discarded due to
// dispatcher backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot returns a point-in-time copy of all counters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) ready() bool {
	return e != nil &&
		e.registry != nil &&
		e.sessions != nil &&
		e.ids != nil &&
		e.hasher != nil &&
		e.totp != nil &&
		e.clock != nil
}

func (e *Engine) now() time.Time {
	return e.clock()
}
