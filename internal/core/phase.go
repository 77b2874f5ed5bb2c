package core

// Timeout is a pending transition: after Remaining seconds the machine
// switches to Next.
type Timeout[S any] struct {
	Remaining float64
	Next      S
}

// Machine holds a game's current state plus an optional pending timeout.
// While a timeout is pending it is authoritative and the current state does
// not process input.
type Machine[S any] struct {
	current S
	pending *Timeout[S]
}

// NewMachine starts in the given state with nothing pending.
func NewMachine[S any](initial S) Machine[S] {
	return Machine[S]{current: initial}
}

// State returns the active state.
func (m *Machine[S]) State() S {
	return m.current
}

// Set switches immediately and drops any pending timeout.
func (m *Machine[S]) Set(s S) {
	m.current = s
	m.pending = nil
}

// After schedules a switch to next once secs have elapsed.
func (m *Machine[S]) After(secs float64, next S) {
	m.pending = &Timeout[S]{Remaining: secs, Next: next}
}

// Pending returns the pending timeout, or nil.
func (m *Machine[S]) Pending() *Timeout[S] {
	return m.pending
}

// Advance consumes dt against the pending timeout. It returns true when the
// frame may continue: nothing was pending, or the timeout elapsed and the
// machine switched to its next state. It returns false while still waiting.
func (m *Machine[S]) Advance(dt float64) bool {
	if m.pending == nil {
		return true
	}
	if m.pending.Remaining < dt {
		next := m.pending.Next
		m.pending = nil
		m.current = next
		return true
	}
	m.pending.Remaining -= dt
	return false
}
