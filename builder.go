package totpgate

import (
	"errors"
	"time"

	internalaudit "github.com/MrEthical07/totpgate/internal/audit"
	"github.com/MrEthical07/totpgate/internal/registry"
	"github.com/MrEthical07/totpgate/password"
	"github.com/MrEthical07/totpgate/session"
)

// Builder assembles an [Engine]. Construction is allocation-only; no I/O
// happens before or during Build.
type Builder struct {
	config Config

	auditSink AuditSink
	ids       IDSource
	clock     func() time.Time

	built bool
}

// New returns a Builder seeded with [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithAuditSink sets the sink that receives audit events. Without a sink
// the dispatcher still runs and drops events into a NoOpSink.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithIDSource overrides the snowflake identifier generator, primarily for
// deterministic tests.
func (b *Builder) WithIDSource(ids IDSource) *Builder {
	b.ids = ids
	return b
}

// WithClock overrides the wall clock used for TOTP step computation,
// primarily for deterministic tests.
func (b *Builder) WithClock(clock func() time.Time) *Builder {
	b.clock = clock
	return b
}

// Build validates the configuration and assembles the engine. A Builder is
// single-use.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if err := validateConfig(b.config); err != nil {
		return nil, err
	}

	hasher, err := password.New(password.Params{
		Memory:      b.config.Password.Memory,
		Time:        b.config.Password.Time,
		Parallelism: b.config.Password.Parallelism,
		SaltLength:  b.config.Password.SaltLength,
		KeyLength:   b.config.Password.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	ids := b.ids
	if ids == nil {
		source, err := newSnowflakeSource(b.config.Identity)
		if err != nil {
			return nil, err
		}
		ids = source
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	engine := &Engine{
		config:   b.config,
		registry: registry.New(),
		sessions: session.NewStore(),
		ids:      ids,
		hasher:   hasher,
		totp:     newTOTPManager(b.config.TOTP),
		metrics:  NewMetrics(b.config.Metrics),
		clock:    clock,
	}
	engine.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    b.config.Audit.Enabled,
		BufferSize: b.config.Audit.BufferSize,
		DropIfFull: b.config.Audit.DropIfFull,
	}, b.auditSink)

	b.built = true
	return engine, nil
}
