package internaldefs

import totpgate "github.com/MrEthical07/totpgate"

// CounterDef describes one exported counter series.
type CounterDef struct {
	ID   totpgate.MetricID
	Name string
	Help string
}

// CounterDefs lists every engine counter in export order.
var CounterDefs = []CounterDef{
	{totpgate.MetricRegisterSuccess, "totpgate_register_success_total", "Accounts created."},
	{totpgate.MetricRegisterDuplicate, "totpgate_register_duplicate_total", "Registrations rejected for a username collision."},
	{totpgate.MetricRegisterPolicyReject, "totpgate_register_policy_reject_total", "Registrations rejected by the password policy."},
	{totpgate.MetricRegisterFailure, "totpgate_register_failure_total", "Registrations failed internally."},
	{totpgate.MetricEnrollSuccess, "totpgate_enroll_success_total", "Enrollment verifications that enabled the second factor."},
	{totpgate.MetricEnrollInvalidCode, "totpgate_enroll_invalid_code_total", "Enrollment verifications rejected for a wrong code."},
	{totpgate.MetricEnrollAlreadyEnabled, "totpgate_enroll_already_enabled_total", "Enrollment verifications against an already-enabled account."},
	{totpgate.MetricLoginSuccess, "totpgate_login_success_total", "Fully authenticated logins."},
	{totpgate.MetricLoginFailure, "totpgate_login_failure_total", "Logins rejected at the lookup or password gate."},
	{totpgate.MetricLoginTwoFactorMissing, "totpgate_login_two_factor_missing_total", "Logins rejected because enrollment was never verified."},
	{totpgate.MetricLoginTwoFactorInvalid, "totpgate_login_two_factor_invalid_total", "Logins rejected at the TOTP gate."},
	{totpgate.MetricSessionIssued, "totpgate_session_issued_total", "Session tokens minted."},
}

// AuditDroppedName is the series for dispatcher backpressure drops.
const AuditDroppedName = "totpgate_audit_dropped_total"
