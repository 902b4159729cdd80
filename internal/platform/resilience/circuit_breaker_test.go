package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteRecordsOutcome(t *testing.T) {
	b := NewCircuitBreaker(1, time.Second, 1)

	now := time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	errRedis := errors.New("dial tcp: connection refused")
	if err := b.Execute(func() error { return errRedis }); !errors.Is(err, errRedis) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed execute, got %s", state)
	}

	calls := 0
	err := b.Execute(func() error {
		calls++
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("expected fn to be skipped while open, got %d calls", calls)
	}

	now = now.Add(2 * time.Second)
	if err := b.Execute(func() error { calls++; return nil }); err != nil {
		t.Fatalf("expected half-open probe to run, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one probe call, got %d", calls)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(1, time.Second, 2)

	now := time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(time.Second)

	if err := b.Allow(); err != nil {
		t.Fatalf("expected first probe allowed: %v", err)
	}
	if err := b.Allow(); err != nil {
		t.Fatalf("expected second probe allowed: %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected third probe rejected, got %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after half-open failure, got %s", state)
	}
}

func TestCircuitBreakerConfig_WithDefaults(t *testing.T) {
	cfg := CircuitBreakerConfig{Enabled: true, FailureThreshold: 3}.WithDefaults()
	defaults := DefaultCircuitBreakerConfig()

	if cfg.FailureThreshold != 3 {
		t.Fatalf("expected threshold 3, got %d", cfg.FailureThreshold)
	}
	if cfg.OpenTimeout != defaults.OpenTimeout || cfg.HalfOpenMaxReq != defaults.HalfOpenMaxReq {
		t.Fatalf("expected defaults for unset fields, got %+v", cfg)
	}
}

func TestCircuitBreakerConfig_BuildDisabledIsPassThrough(t *testing.T) {
	b := CircuitBreakerConfig{Enabled: false}.Build()
	if b != nil {
		t.Fatalf("expected nil breaker when disabled")
	}

	calls := 0
	for i := 0; i < 10; i++ {
		_ = b.Execute(func() error {
			calls++
			return errors.New("redis down")
		})
	}
	if calls != 10 {
		t.Fatalf("expected every call to run, got %d", calls)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected nil breaker to report closed, got %s", state)
	}
}

func TestCircuitBreakerConfig_BuildReportsTransitions(t *testing.T) {
	var transitions []string
	b := CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 1,
		OpenTimeout:      time.Second,
		HalfOpenMaxReq:   1,
		OnStateChange: func(from, to CircuitState) {
			transitions = append(transitions, string(from)+"->"+string(to))
		},
	}.Build()

	now := time.Date(2026, 6, 11, 18, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(time.Second)
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("expected probe to pass, got %v", err)
	}

	want := []string{"closed->open", "open->half_open", "half_open->closed"}
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transition %d: got %s want %s", i, transitions[i], want[i])
		}
	}
}
