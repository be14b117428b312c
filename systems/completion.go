package systems

// CompletionTimer is a cancelable delayed callback driven by the frame clock.
// It arms on the rising edge of its condition, fires once after the delay,
// and is canceled if the condition drops first.
type CompletionTimer struct {
	delay    float64
	callback func()

	active  bool // condition seen on the previous update
	armed   bool
	fired   bool
	elapsed float64
}

// NewCompletionTimer creates a timer that calls callback delay seconds after arming.
// A nil callback is allowed.
func NewCompletionTimer(delay float64, callback func()) *CompletionTimer {
	return &CompletionTimer{delay: delay, callback: callback}
}

// Update advances the timer by dt with the current condition.
// Returns true on the update that fires the callback.
func (t *CompletionTimer) Update(active bool, dt float64) bool {
	if !active {
		t.Cancel()
		return false
	}

	if !t.active {
		// Rising edge
		t.active = true
		t.armed = true
		t.fired = false
		t.elapsed = 0
	}

	if !t.armed || t.fired {
		return false
	}

	t.elapsed += dt
	if t.elapsed < t.delay {
		return false
	}

	t.fired = true
	t.armed = false
	if t.callback != nil {
		t.callback()
	}
	return true
}

// Cancel disarms the timer. The next true condition re-arms it.
func (t *CompletionTimer) Cancel() {
	t.active = false
	t.armed = false
	t.fired = false
	t.elapsed = 0
}

// Armed reports whether the timer is counting down.
func (t *CompletionTimer) Armed() bool {
	return t.armed
}

// Fired reports whether the callback fired during the current activation.
func (t *CompletionTimer) Fired() bool {
	return t.fired
}

// Remaining returns the seconds left before the callback fires, or 0 when not armed.
func (t *CompletionTimer) Remaining() float64 {
	if !t.armed {
		return 0
	}
	return max(t.delay-t.elapsed, 0)
}
