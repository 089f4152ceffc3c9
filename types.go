package totpgate

import (
	"io"

	internalaudit "github.com/MrEthical07/totpgate/internal/audit"
)

// RegisterRequest is the input for [Engine.Register].
type RegisterRequest struct {
	Username string
	Password string
}

// RegisterResult is returned by [Engine.Register]. SecretBase32,
// ProvisioningURI, and QRCodePNG form the one-time enrollment payload:
// this is the only moment the secret leaves the engine, so the caller must
// deliver it to the end user immediately.
type RegisterResult struct {
	AccountID       string
	SecretBase32    string
	ProvisioningURI string
	QRCodePNG       []byte
}

// LoginResult is returned by [Engine.Login] after all three gates pass.
type LoginResult struct {
	AccountID    string
	SessionToken string
}

// AccountSummary is the safe, listable projection of an account. It never
// carries hash material or the TOTP secret.
type AccountSummary struct {
	ID               string
	Username         string
	TwoFactorEnabled bool
}

// IDSource produces unique, time-ordered account identifiers. Implementations
// must be safe for concurrent use and must never repeat an id within the
// process lifetime.
type IDSource interface {
	Next() string
}

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
