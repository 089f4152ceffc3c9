package totpgate

import (
	"context"
	"errors"

	"github.com/MrEthical07/totpgate/internal/registry"
)

// Register creates an account: it enforces the password policy, hashes the
// password, provisions the TOTP secret and its enrollment artifact, and
// inserts the account under a uniqueness check that is atomic with the
// insert. No session is issued at registration; the account starts with
// two-factor pending.
//
// The returned result carries the one-time enrollment payload (secret,
// provisioning URI, QR PNG). The secret is never retrievable again.
func (e *Engine) Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}

	if req.Username == "" {
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", ErrUsernameInvalid, nil)
		return nil, ErrUsernameInvalid
	}
	if !acceptablePassword(e.config.Policy, req.Password) {
		e.metricInc(MetricRegisterPolicyReject)
		e.emitAudit(ctx, auditEventRegisterPolicyReject, false, "", ErrWeakPassword, func() map[string]string {
			return map[string]string{
				"username": req.Username,
			}
		})
		return nil, ErrWeakPassword
	}

	// Best-effort early duplicate check. The registry re-checks atomically
	// on insert; this only spares the hashing cost on the common collision.
	if _, err := e.registry.GetByUsername(req.Username); err == nil {
		e.metricInc(MetricRegisterDuplicate)
		e.emitAudit(ctx, auditEventRegisterDuplicate, false, "", ErrDuplicateUsername, func() map[string]string {
			return map[string]string{
				"username": req.Username,
			}
		})
		return nil, ErrDuplicateUsername
	}

	// Hashing and secret generation are CPU-bound and run outside any lock;
	// only the final insert takes the registry lock.
	id := e.ids.Next()

	hash, err := e.hasher.Hash(req.Password)
	if err != nil {
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", ErrHashingUnavailable, nil)
		return nil, ErrHashingUnavailable
	}

	key, err := e.totp.Provision(id, req.Username)
	if err != nil {
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", ErrTwoFactorUnavailable, nil)
		return nil, ErrTwoFactorUnavailable
	}
	artifact, err := e.totp.QRCode(key)
	if err != nil {
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, "", ErrTwoFactorUnavailable, nil)
		return nil, ErrTwoFactorUnavailable
	}

	err = e.registry.Create(registry.Account{
		ID:           id,
		Username:     req.Username,
		PasswordHash: hash,
		TwoFactor: registry.TwoFactor{
			Enabled:         false,
			SecretBase32:    key.Secret(),
			ProvisioningURI: key.URL(),
			QRCodePNG:       artifact,
		},
	})
	if err != nil {
		if errors.Is(err, registry.ErrDuplicateUsername) {
			e.metricInc(MetricRegisterDuplicate)
			e.emitAudit(ctx, auditEventRegisterDuplicate, false, "", ErrDuplicateUsername, func() map[string]string {
				return map[string]string{
					"username": req.Username,
				}
			})
			return nil, ErrDuplicateUsername
		}
		e.metricInc(MetricRegisterFailure)
		e.emitAudit(ctx, auditEventRegisterFailure, false, id, err, nil)
		return nil, err
	}

	e.metricInc(MetricRegisterSuccess)
	e.emitAudit(ctx, auditEventRegisterSuccess, true, id, nil, func() map[string]string {
		return map[string]string{
			"username": req.Username,
		}
	})

	return &RegisterResult{
		AccountID:       id,
		SecretBase32:    key.Secret(),
		ProvisioningURI: key.URL(),
		QRCodePNG:       artifact,
	}, nil
}
