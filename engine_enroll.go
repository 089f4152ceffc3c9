package totpgate

import (
	"context"
	"errors"

	"github.com/MrEthical07/totpgate/internal/registry"
)

// VerifyEnrollment proves possession of the enrolled authenticator: it
// verifies the submitted code against the account's stored secret and, on
// success, sets the two-factor enablement latch. The latch is one-way;
// once set, further calls return [ErrTwoFactorAlreadyEnabled] regardless
// of code validity. A wrong code leaves the account unchanged.
//
// This is the only path that transitions an account out of the
// two-factor-pending state.
func (e *Engine) VerifyEnrollment(ctx context.Context, accountID, code string) error {
	if !e.ready() {
		return ErrEngineNotReady
	}

	// The latch check, the code verification, and the commit run inside
	// the registry's critical section, so two concurrent calls cannot both
	// pass the latch check.
	at := e.now()
	err := e.registry.EnableTwoFactor(accountID, func(secretBase32 string) bool {
		return e.totp.Verify(secretBase32, code, at)
	})

	switch {
	case err == nil:
		e.metricInc(MetricEnrollSuccess)
		e.emitAudit(ctx, auditEventEnrollSuccess, true, accountID, nil, nil)
		return nil
	case errors.Is(err, registry.ErrNotFound):
		e.emitAudit(ctx, auditEventEnrollFailure, false, accountID, ErrAccountNotFound, nil)
		return ErrAccountNotFound
	case errors.Is(err, registry.ErrTwoFactorEnabled):
		e.metricInc(MetricEnrollAlreadyEnabled)
		e.emitAudit(ctx, auditEventEnrollFailure, false, accountID, ErrTwoFactorAlreadyEnabled, nil)
		return ErrTwoFactorAlreadyEnabled
	case errors.Is(err, registry.ErrCodeRejected):
		e.metricInc(MetricEnrollInvalidCode)
		e.emitAudit(ctx, auditEventEnrollFailure, false, accountID, ErrTwoFactorInvalid, nil)
		return ErrTwoFactorInvalid
	default:
		e.emitAudit(ctx, auditEventEnrollFailure, false, accountID, err, nil)
		return err
	}
}
