package intcode

// State holds everything needed to resume a computer: memory,
// instruction pointer and both I/O queues.
type State struct {
	Memory Memory
	IP     int64
	Input  Queue
	Output Queue
}

// Clone returns a deep copy of the state.
func (s *State) Clone() State {
	return State{
		Memory: s.Memory.Clone(),
		IP:     s.IP,
		Input:  s.Input.Clone(),
		Output: s.Output.Clone(),
	}
}

// State returns a deep copy of the live state.
func (c *Computer) State() State {
	return c.state.Clone()
}

// Capture stores a deep copy of the live state as the checkpoint
// used by Reset. An existing checkpoint is replaced.
func (c *Computer) Capture() {
	s := c.state.Clone()
	c.snapshot = &s
}

// HasSnapshot returns true if a checkpoint was captured.
func (c *Computer) HasSnapshot() bool {
	return c.snapshot != nil
}

// Snapshot returns a deep copy of the checkpoint.
// Returns false if none was captured.
func (c *Computer) Snapshot() (State, bool) {
	if c.snapshot == nil {
		return State{}, false
	}
	return c.snapshot.Clone(), true
}

// Reset replaces the live state with a fresh copy of the checkpoint.
// The checkpoint itself is kept for later resets.
//
// Returns ErrNoSnapshot, and leaves the live state alone, if Capture
// was never called.
func (c *Computer) Reset() error {
	if c.snapshot == nil {
		return ErrNoSnapshot
	}
	c.state = c.snapshot.Clone()
	return nil
}
