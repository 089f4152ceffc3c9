package totpgate

import (
	"context"
	"testing"

	"github.com/MrEthical07/totpgate/session"
)

func TestLoginBeforeEnrollment(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")

	code := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	_, err := engine.Login(context.Background(), "alice", "Valid1Pass!", code)
	if err != ErrTwoFactorNotEnabled {
		t.Fatalf("expected ErrTwoFactorNotEnabled, got %v", err)
	}
	if tokens := engine.AccountSessions(result.AccountID); len(tokens) != 0 {
		t.Fatal("gated login must not issue a session")
	}
}

func TestLoginSuccess(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")
	enrollTestAccount(t, engine, result)

	code := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	login, err := engine.Login(context.Background(), "alice", "Valid1Pass!", code)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.AccountID != result.AccountID {
		t.Fatalf("expected account %s, got %s", result.AccountID, login.AccountID)
	}
	if login.SessionToken == "" {
		t.Fatal("expected a session token")
	}

	// Token shape: base64(account id) "." 64-char payload.
	id, secret, err := session.Decode(login.SessionToken)
	if err != nil {
		t.Fatalf("token decode failed: %v", err)
	}
	if id != result.AccountID {
		t.Fatalf("token encodes account %s, want %s", id, result.AccountID)
	}
	if len(secret) != engine.config.Session.TokenLength {
		t.Fatalf("expected %d-char payload, got %d", engine.config.Session.TokenLength, len(secret))
	}

	owner, err := engine.ValidateSession(login.SessionToken)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if owner != result.AccountID {
		t.Fatalf("session resolves to %s, want %s", owner, result.AccountID)
	}
}

func TestLoginCaseInsensitiveUsername(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "Alice")
	enrollTestAccount(t, engine, result)

	code := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	login, err := engine.Login(context.Background(), "ALICE", "Valid1Pass!", code)
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.AccountID != result.AccountID {
		t.Fatalf("expected account %s, got %s", result.AccountID, login.AccountID)
	}
}

func TestLoginIssuesDistinctConcurrentSessions(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")
	enrollTestAccount(t, engine, result)

	code := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)

	first, err := engine.Login(context.Background(), "alice", "Valid1Pass!", code)
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	second, err := engine.Login(context.Background(), "alice", "Valid1Pass!", code)
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	if first.SessionToken == second.SessionToken {
		t.Fatal("expected distinct session tokens")
	}

	tokens := engine.AccountSessions(result.AccountID)
	if len(tokens) != 2 {
		t.Fatalf("expected 2 live sessions, got %d", len(tokens))
	}
	for _, token := range []string{first.SessionToken, second.SessionToken} {
		owner, err := engine.ValidateSession(token)
		if err != nil || owner != result.AccountID {
			t.Fatalf("expected both sessions valid, got %q %v", owner, err)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")
	enrollTestAccount(t, engine, result)

	code := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	_, err := engine.Login(context.Background(), "alice", "Wrong1Pass!", code)
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWrongCode(t *testing.T) {
	engine := newTestEngine(t, testConfig())
	result := registerTestAccount(t, engine, "alice")
	enrollTestAccount(t, engine, result)

	valid := codeAt(t, engine.config.TOTP, result.SecretBase32, testInstant)
	_, err := engine.Login(context.Background(), "alice", "Valid1Pass!", wrongCodeFor(valid))
	if err != ErrTwoFactorInvalid {
		t.Fatalf("expected ErrTwoFactorInvalid, got %v", err)
	}
	if tokens := engine.AccountSessions(result.AccountID); len(tokens) != 0 {
		t.Fatal("rejected login must not issue a session")
	}
}

func TestLoginUnknownUsername(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	_, err := engine.Login(context.Background(), "ghost", "Valid1Pass!", "123456")
	if err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestLoginMaskedUnknownUsername(t *testing.T) {
	cfg := testConfig()
	cfg.Security.MaskUnknownUsername = true
	engine := newTestEngine(t, cfg)

	_, err := engine.Login(context.Background(), "ghost", "Valid1Pass!", "123456")
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestValidateSessionUnknownToken(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	if _, err := engine.ValidateSession("bm9wZQ.abc"); err != ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}
