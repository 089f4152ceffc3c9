package totpgate

import (
	"context"

	"github.com/MrEthical07/totpgate/session"
)

// sessionIssueAttempts bounds re-rolls on a token-value collision.
const sessionIssueAttempts = 3

// Login runs the authentication state machine: username lookup, password
// verification, two-factor enablement gate, TOTP code verification, and
// finally session issuance. Each gate short-circuits with its sentinel
// error; no partial session is ever created.
//
// An unknown username returns [ErrAccountNotFound] unless
// Security.MaskUnknownUsername collapses it into [ErrInvalidCredentials].
func (e *Engine) Login(ctx context.Context, username, passwd, code string) (*LoginResult, error) {
	if !e.ready() {
		return nil, ErrEngineNotReady
	}

	acc, err := e.registry.GetByUsername(username)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		notFound := error(ErrAccountNotFound)
		if e.config.Security.MaskUnknownUsername {
			notFound = ErrInvalidCredentials
		}
		e.emitAudit(ctx, auditEventLoginFailure, false, "", notFound, func() map[string]string {
			return map[string]string{
				"username": username,
				"reason":   "unknown_username",
			}
		})
		return nil, notFound
	}

	// A malformed stored hash verifies as false, same as a wrong password;
	// the distinction must not leak to the caller.
	ok, err := e.hasher.Verify(passwd, acc.PasswordHash)
	if err != nil || !ok {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, acc.ID, ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"reason": "password_mismatch",
			}
		})
		return nil, ErrInvalidCredentials
	}

	if !acc.TwoFactor.Enabled {
		e.metricInc(MetricLoginTwoFactorMissing)
		e.emitAudit(ctx, auditEventLoginFailure, false, acc.ID, ErrTwoFactorNotEnabled, func() map[string]string {
			return map[string]string{
				"reason": "two_factor_pending",
			}
		})
		return nil, ErrTwoFactorNotEnabled
	}

	if !e.totp.Verify(acc.TwoFactor.SecretBase32, code, e.now()) {
		e.metricInc(MetricLoginTwoFactorInvalid)
		e.emitAudit(ctx, auditEventLoginFailure, false, acc.ID, ErrTwoFactorInvalid, func() map[string]string {
			return map[string]string{
				"reason": "two_factor_code",
			}
		})
		return nil, ErrTwoFactorInvalid
	}

	token, err := e.issueSession(acc.ID)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, acc.ID, ErrSessionCreationFailed, func() map[string]string {
			return map[string]string{
				"reason": "session_issuance",
			}
		})
		return nil, ErrSessionCreationFailed
	}

	e.metricInc(MetricLoginSuccess)
	e.metricInc(MetricSessionIssued)
	e.emitAudit(ctx, auditEventLoginSuccess, true, acc.ID, nil, nil)

	return &LoginResult{
		AccountID:    acc.ID,
		SessionToken: token,
	}, nil
}

// issueSession mints an opaque token bound to the account id and records
// it in the session store, re-rolling on the unlikely value collision.
func (e *Engine) issueSession(accountID string) (string, error) {
	var lastErr error
	for i := 0; i < sessionIssueAttempts; i++ {
		secret, err := session.NewSecret(e.config.Session.TokenLength)
		if err != nil {
			return "", err
		}
		token := session.Encode(accountID, secret)
		if err := e.sessions.Append(accountID, token); err != nil {
			lastErr = err
			continue
		}
		return token, nil
	}
	return "", lastErr
}
