// Package intcode implements the Intcode computer.
package intcode

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TraceFunc represents a callback handler for debug trace output.
// It is called with every decoded instruction, before it executes.
type TraceFunc func(*Instruction)

// Computer implements the runtime.
//
// A Computer is not safe for concurrent use. Separate instances share
// no state and may run in parallel.
type Computer struct {
	state    State       // Live memory, instruction pointer and I/O queues.
	snapshot *State      // Checkpoint restored by Reset.
	trace    TraceFunc   // Handler for debug trace output.
	instr    Instruction // Decoded instruction data.
	steps    uint64      // Number of executed instructions.
}

// New creates an empty computer. If debug is set, every instruction
// is logged at debug level before it executes.
func New(debug bool) *Computer {
	c := &Computer{}
	if debug {
		c.trace = logTrace
	}
	return c
}

// SetTrace installs a custom trace handler. A nil handler disables tracing.
func (c *Computer) SetTrace(trace TraceFunc) {
	c.trace = trace
}

// Load parses a comma separated list of integers and appends it to memory.
// Memory is not modified if any value fails to parse.
//
// Calling Load more than once appends to the program loaded earlier.
func (c *Computer) Load(program string) error {
	fields := strings.Split(strings.TrimSpace(program), ",")
	values := make(Memory, 0, len(fields))

	for i, field := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return errors.WithMessagef(ErrParse, "value %d: %q", i, field)
		}
		values = append(values, v)
	}

	c.state.Memory = append(c.state.Memory, values...)
	return nil
}

// LoadReader reads a program from r and loads it. See Load.
func (c *Computer) LoadReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read program")
	}
	return c.Load(string(data))
}

// Memory returns the live memory bank.
// It is only valid until the next Reset or Load.
func (c *Computer) Memory() Memory {
	return c.state.Memory
}

// IP returns the instruction pointer.
func (c *Computer) IP() int64 {
	return c.state.IP
}

// Steps returns the number of instructions executed by this computer.
func (c *Computer) Steps() uint64 {
	return c.steps
}

// Lookup returns the value at the given address.
func (c *Computer) Lookup(addr int64) (int64, error) {
	return c.state.Memory.Lookup(addr)
}

// Set sets the value at the given address.
func (c *Computer) Set(addr, value int64) error {
	return c.state.Memory.Set(addr, value)
}

// AddInput appends values to the input buffer.
func (c *Computer) AddInput(values ...int64) {
	c.state.Input.Push(values...)
}

// DrainOutput returns all buffered output, oldest first, and empties the buffer.
func (c *Computer) DrainOutput() []int64 {
	return c.state.Output.Drain()
}

// Run executes instructions until the program halts and returns
// the value at address resultAt.
func (c *Computer) Run(resultAt int64) (int64, error) {
	for {
		err := c.Step()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, err
		}
	}

	return c.Lookup(resultAt)
}

// Step performs a single execution step.
// Returns io.EOF if the program has halted.
// The instruction pointer is left as-is if the instruction fails.
func (c *Computer) Step() error {
	instr := &c.instr

	if err := instr.Decode(c.state.Memory, c.state.IP); err != nil {
		return NewError(instr, err)
	}

	if c.trace != nil {
		c.trace(instr)
	}

	err := handlers[instr.Opcode](c, instr)
	switch {
	case err == io.EOF:
		c.steps++
		return err
	case err != nil:
		return NewError(instr, err)
	}

	c.steps++
	c.state.IP += instr.Width()
	return nil
}

// logTrace is the trace handler installed in debug mode.
func logTrace(i *Instruction) {
	log.WithFields(log.Fields{
		"ip":    i.IP,
		"instr": i.Raw,
	}).Debug(i.String())
}
