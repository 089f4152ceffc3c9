package totpgate

import (
	"context"
	"testing"
	"time"
)

func drainAudit(t *testing.T, sink *ChannelSink, want int) []AuditEvent {
	t.Helper()
	events := make([]AuditEvent, 0, want)
	for len(events) < want {
		select {
		case event := <-sink.Events():
			events = append(events, event)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected %d audit events, got %d", want, len(events))
		}
	}
	return events
}

func TestAuditTrailForFullFlow(t *testing.T) {
	cfg := testConfig()
	cfg.Audit = AuditConfig{Enabled: true, BufferSize: 32}
	sink := NewChannelSink(32)

	engine, err := New().
		WithConfig(cfg).
		WithAuditSink(sink).
		WithClock(func() time.Time { return testInstant }).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	result := registerTestAccount(t, engine, "alice")
	enrollTestAccount(t, engine, result)
	code := codeAt(t, cfg.TOTP, result.SecretBase32, testInstant)
	if _, err := engine.Login(context.Background(), "alice", "Valid1Pass!", code); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	engine.Close()

	events := drainAudit(t, sink, 3)
	wantTypes := []string{"register_success", "enroll_success", "login_success"}
	for i, event := range events {
		if event.EventType != wantTypes[i] {
			t.Fatalf("event %d: expected %s, got %s", i, wantTypes[i], event.EventType)
		}
		if !event.Success {
			t.Fatalf("event %d: expected success", i)
		}
		if event.AccountID != result.AccountID {
			t.Fatalf("event %d: expected account %s, got %s", i, result.AccountID, event.AccountID)
		}
		if event.ID == "" || event.Timestamp.IsZero() {
			t.Fatalf("event %d: missing id or timestamp", i)
		}
	}
	if events[0].Metadata["username"] != "alice" {
		t.Fatalf("unexpected register metadata: %v", events[0].Metadata)
	}
}

func TestAuditRecordsNormalizedFailureCodes(t *testing.T) {
	cfg := testConfig()
	cfg.Audit = AuditConfig{Enabled: true, BufferSize: 32}
	sink := NewChannelSink(32)

	engine, err := New().
		WithConfig(cfg).
		WithAuditSink(sink).
		WithClock(func() time.Time { return testInstant }).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if _, err := engine.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: "weak",
	}); err != ErrWeakPassword {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
	if _, err := engine.Login(context.Background(), "ghost", "Valid1Pass!", "123456"); err != ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	engine.Close()

	events := drainAudit(t, sink, 2)
	if events[0].EventType != "register_policy_reject" || events[0].Error != "password_policy" {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1].EventType != "login_failure" || events[1].Error != "account_not_found" {
		t.Fatalf("unexpected second event: %+v", events[1])
	}
	if events[1].Metadata["reason"] != "unknown_username" {
		t.Fatalf("unexpected login metadata: %v", events[1].Metadata)
	}
}

func TestAuditDisabledEmitsNothing(t *testing.T) {
	engine := newTestEngine(t, testConfig())

	registerTestAccount(t, engine, "alice")
	if engine.AuditDropped() != 0 {
		t.Fatal("disabled audit must not count drops")
	}
}
