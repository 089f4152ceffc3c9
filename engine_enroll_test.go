package totpgate

import (
	"context"
	"testing"
	"time"
)

func TestVerifyEnrollmentSetsLatch(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")

	enrollTestAccount(t, engine, result)

	accounts := engine.Accounts()
	if len(accounts) != 1 || !accounts[0].TwoFactorEnabled {
		t.Fatal("expected two-factor to be enabled after verification")
	}
}

func TestVerifyEnrollmentWrongCode(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")

	valid := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	err := engine.VerifyEnrollment(context.Background(), result.AccountID, wrongCodeFor(valid))
	if err != ErrTwoFactorInvalid {
		t.Fatalf("expected ErrTwoFactorInvalid, got %v", err)
	}

	if engine.Accounts()[0].TwoFactorEnabled {
		t.Fatal("wrong code must not enable two-factor")
	}

	// The account is still enrollable afterwards.
	enrollTestAccount(t, engine, result)
}

func TestVerifyEnrollmentIsOneWay(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")
	enrollTestAccount(t, engine, result)

	code := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	err := engine.VerifyEnrollment(context.Background(), result.AccountID, code)
	if err != ErrTwoFactorAlreadyEnabled {
		t.Fatalf("expected ErrTwoFactorAlreadyEnabled, got %v", err)
	}
}

func TestVerifyEnrollmentUnknownAccount(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	err := engine.VerifyEnrollment(context.Background(), "missing", "123456")
	if err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestVerifyEnrollmentAcceptsSkewedCode(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")

	// One step behind the pinned clock, inside the configured skew.
	behind := testInstant.Add(-time.Duration(engine.config.TOTP.Period) * time.Second)
	code := codeAt(t, engine.config.TOTP, result.SecretBase32, behind)

	if err := engine.VerifyEnrollment(context.Background(), result.AccountID, code); err != nil {
		t.Fatalf("expected skewed code to verify, got %v", err)
	}
}
