package systems

import "testing"

func TestCompletionTimerLifecycle(t *testing.T) {
	fired := 0
	timer := NewCompletionTimer(1.0, func() { fired++ })

	if timer.Update(false, 0.5) || timer.Armed() {
		t.Fatal("expected inactive timer to stay disarmed")
	}

	timer.Update(true, 0.5)
	if !timer.Armed() {
		t.Fatal("expected timer armed on rising edge")
	}
	if r := timer.Remaining(); r != 0.5 {
		t.Errorf("expected 0.5s remaining, got %f", r)
	}

	if !timer.Update(true, 0.5) {
		t.Fatal("expected timer to fire once delay elapsed")
	}
	if fired != 1 || !timer.Fired() {
		t.Errorf("expected one fire, got %d (Fired=%v)", fired, timer.Fired())
	}

	// Condition persists: no refire
	for i := 0; i < 10; i++ {
		if timer.Update(true, 0.5) {
			t.Fatal("timer refired while condition persisted")
		}
	}
	if fired != 1 {
		t.Errorf("expected a single fire, got %d", fired)
	}
}

func TestCompletionTimerRearmsOnNextRisingEdge(t *testing.T) {
	fired := 0
	timer := NewCompletionTimer(0.5, func() { fired++ })

	timer.Update(true, 0.5)
	timer.Update(false, 0.5)
	timer.Update(true, 0.5)

	if fired != 2 {
		t.Errorf("expected one fire per activation, got %d", fired)
	}
}

func TestCompletionTimerCancel(t *testing.T) {
	fired := 0
	timer := NewCompletionTimer(1.0, func() { fired++ })

	timer.Update(true, 0.75)
	timer.Cancel()
	if timer.Armed() || timer.Remaining() != 0 {
		t.Errorf("expected disarmed timer after cancel")
	}

	// Re-activation starts a fresh countdown
	timer.Update(true, 0.5)
	if fired != 0 {
		t.Fatalf("expected no fire after partial countdown, got %d", fired)
	}
	timer.Update(true, 0.5)
	if fired != 1 {
		t.Errorf("expected fire after full fresh delay, got %d", fired)
	}
}

func TestCompletionTimerNilCallback(t *testing.T) {
	timer := NewCompletionTimer(0, nil)
	if !timer.Update(true, 0) {
		t.Error("expected zero-delay timer to fire immediately")
	}
}
