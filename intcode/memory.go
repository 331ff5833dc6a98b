package intcode

import "github.com/pkg/errors"

// Memory defines the computer's memory bank.
type Memory []int64

// Lookup returns the value at the given address.
func (m Memory) Lookup(addr int64) (int64, error) {
	if err := m.check(addr); err != nil {
		return 0, err
	}
	return m[addr], nil
}

// Set sets the value at the given address.
func (m Memory) Set(addr, value int64) error {
	if err := m.check(addr); err != nil {
		return err
	}
	m[addr] = value
	return nil
}

// Lookup3 reads three consecutive cells, starting at the given address.
// It does not apply address modes.
func (m Memory) Lookup3(start int64) (a, b, c int64, err error) {
	if a, err = m.Lookup(start); err != nil {
		return
	}
	if b, err = m.Lookup(start + 1); err != nil {
		return
	}
	c, err = m.Lookup(start + 2)
	return
}

// Len returns the number of addressable cells.
func (m Memory) Len() int64 {
	return int64(len(m))
}

// Clone returns a deep copy of the memory bank.
func (m Memory) Clone() Memory {
	if m == nil {
		return nil
	}
	out := make(Memory, len(m))
	copy(out, m)
	return out
}

func (m Memory) check(addr int64) error {
	if addr < 0 || addr >= int64(len(m)) {
		return errors.WithMessagef(ErrAddressRange, "address %d, memory size %d", addr, len(m))
	}
	return nil
}
