package countdown

import (
	"errors"
	"testing"
	"time"
)

func TestController_StartRejectsBadDurations(t *testing.T) {
	c := New()

	for _, d := range []time.Duration{0, -time.Second} {
		if err := c.Start(d); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("Start(%v) error = %v, want ErrInvalidDuration", d, err)
		}
	}
	if got := c.State(); got != StateIdle {
		t.Errorf("State() after rejected starts = %v, want StateIdle", got)
	}
}

func TestController_StartRejectsSecondSession(t *testing.T) {
	c := New()
	if err := c.Start(time.Minute); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer c.Reset()

	if err := c.Start(time.Minute); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start error = %v, want ErrAlreadyRunning", err)
	}
	if !c.Running() {
		t.Error("first session should still be running after rejected start")
	}
}

func TestController_CompletesWhenDurationElapses(t *testing.T) {
	c := New()
	if err := c.Start(20 * time.Millisecond); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if got := c.Wait(); got != StateCompleted {
		t.Fatalf("Wait() = %v, want StateCompleted", got)
	}
	if got := c.State(); got != StateCompleted {
		t.Errorf("State() = %v, want StateCompleted", got)
	}
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() after completion = %v, want 0", got)
	}

	c.Reset()
	if got := c.State(); got != StateIdle {
		t.Errorf("State() after Reset = %v, want StateIdle", got)
	}
}

func TestController_StopCancelsWait(t *testing.T) {
	c := New()
	if err := c.Start(5 * time.Second); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	outcome := make(chan State, 1)
	go func() { outcome <- c.Wait() }()

	// Let Wait park before cancelling.
	time.Sleep(10 * time.Millisecond)
	c.Stop()

	select {
	case got := <-outcome:
		if got != StateCancelled {
			t.Errorf("Wait() = %v, want StateCancelled", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Stop")
	}

	c.Reset()
	if got := c.State(); got != StateIdle {
		t.Errorf("State() after Reset = %v, want StateIdle", got)
	}
}

func TestController_StopWithoutSessionIsNoop(t *testing.T) {
	c := New()
	c.Stop()

	if got := c.State(); got != StateIdle {
		t.Errorf("State() after idle Stop = %v, want StateIdle", got)
	}
}

func TestController_WaitWithoutSessionReturnsImmediately(t *testing.T) {
	c := New()

	done := make(chan State, 1)
	go func() { done <- c.Wait() }()

	select {
	case got := <-done:
		if got != StateIdle {
			t.Errorf("Wait() = %v, want StateIdle", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait blocked with no session armed")
	}
}

func TestController_RemainingFollowsClock(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c := New()
	c.SetNowFunc(func() time.Time { return base })

	if err := c.Start(10 * time.Minute); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer c.Reset()

	if got := c.Remaining(); got != 10*time.Minute {
		t.Errorf("Remaining() at start = %v, want 10m", got)
	}

	c.SetNowFunc(func() time.Time { return base.Add(3 * time.Minute) })
	if got := c.Remaining(); got != 7*time.Minute {
		t.Errorf("Remaining() after 3m = %v, want 7m", got)
	}

	c.SetNowFunc(func() time.Time { return base.Add(time.Hour) })
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() past deadline = %v, want 0", got)
	}
}

func TestController_DurationSurvivesUntilReset(t *testing.T) {
	c := New()
	if err := c.Start(20 * time.Millisecond); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := c.Duration(); got != 20*time.Millisecond {
		t.Errorf("Duration() while running = %v, want 20ms", got)
	}

	c.Wait()
	if got := c.Duration(); got != 20*time.Millisecond {
		t.Errorf("Duration() after completion = %v, want 20ms", got)
	}

	c.Reset()
	if got := c.Duration(); got != 0 {
		t.Errorf("Duration() after Reset = %v, want 0", got)
	}
}

func TestController_FailMarksCompletedSession(t *testing.T) {
	c := New()
	if err := c.Start(10 * time.Millisecond); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if got := c.Wait(); got != StateCompleted {
		t.Fatalf("Wait() = %v, want StateCompleted", got)
	}

	sendErr := errors.New("delivery refused")
	c.Fail(sendErr)

	if got := c.State(); got != StateFailed {
		t.Errorf("State() = %v, want StateFailed", got)
	}
	if got := c.Err(); !errors.Is(got, sendErr) {
		t.Errorf("Err() = %v, want the recorded failure", got)
	}

	c.Reset()
	if got := c.Err(); got != nil {
		t.Errorf("Err() after Reset = %v, want nil", got)
	}
}

func TestController_FailIgnoredWhileRunning(t *testing.T) {
	c := New()
	if err := c.Start(time.Minute); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer c.Reset()

	c.Fail(errors.New("too early"))
	if got := c.State(); got != StateRunning {
		t.Errorf("State() = %v, want StateRunning", got)
	}
	if got := c.Err(); got != nil {
		t.Errorf("Err() = %v, want nil", got)
	}
}

func TestController_RestartsAfterCancel(t *testing.T) {
	c := New()
	if err := c.Start(5 * time.Second); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}

	outcome := make(chan State, 1)
	go func() { outcome <- c.Wait() }()
	time.Sleep(10 * time.Millisecond)
	c.Stop()

	select {
	case <-outcome:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Stop")
	}
	c.Reset()

	if err := c.Start(20 * time.Millisecond); err != nil {
		t.Fatalf("restart failed: %v", err)
	}
	if got := c.Wait(); got != StateCompleted {
		t.Errorf("Wait() on second session = %v, want StateCompleted", got)
	}
	c.Reset()
}

func TestController_ResetWakesParkedWait(t *testing.T) {
	c := New()
	if err := c.Start(5 * time.Second); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	outcome := make(chan State, 1)
	go func() { outcome <- c.Wait() }()
	time.Sleep(10 * time.Millisecond)

	c.Reset()

	select {
	case <-outcome:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after Reset")
	}
	if got := c.State(); got != StateIdle {
		t.Errorf("State() after Reset = %v, want StateIdle", got)
	}
}

func TestState_Strings(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateCompleted, "completed"},
		{StateCancelled, "cancelled"},
		{StateFailed, "failed"},
		{State(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestState_Terminal(t *testing.T) {
	terminal := []State{StateCompleted, StateCancelled, StateFailed}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%v.Terminal() = false, want true", s)
		}
	}
	for _, s := range []State{StateIdle, StateRunning} {
		if s.Terminal() {
			t.Errorf("%v.Terminal() = true, want false", s)
		}
	}
}
