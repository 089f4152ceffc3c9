package totpgate

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	auditEventRegisterSuccess      = "register_success"
	auditEventRegisterDuplicate    = "register_duplicate"
	auditEventRegisterPolicyReject = "register_policy_reject"
	auditEventRegisterFailure      = "register_failure"
	auditEventEnrollSuccess        = "enroll_success"
	auditEventEnrollFailure        = "enroll_failure"
	auditEventLoginSuccess         = "login_success"
	auditEventLoginFailure         = "login_failure"
)

// auditErrorCode normalizes engine errors into stable codes so sinks never
// see raw error text.
func auditErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateUsername):
		return "duplicate_username"
	case errors.Is(err, ErrWeakPassword):
		return "password_policy"
	case errors.Is(err, ErrUsernameInvalid):
		return "username_invalid"
	case errors.Is(err, ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrTwoFactorNotEnabled):
		return "two_factor_not_enabled"
	case errors.Is(err, ErrTwoFactorAlreadyEnabled):
		return "two_factor_already_enabled"
	case errors.Is(err, ErrTwoFactorInvalid):
		return "two_factor_invalid"
	case errors.Is(err, ErrTwoFactorUnavailable),
		errors.Is(err, ErrHashingUnavailable),
		errors.Is(err, ErrSessionCreationFailed):
		return "backend_unavailable"
	default:
		return "internal_error"
	}
}

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	accountID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	e.audit.Emit(ctx, AuditEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		AccountID: accountID,
		Success:   success,
		Error:     auditErrorCode(err),
		Metadata:  metadata,
	})
}
