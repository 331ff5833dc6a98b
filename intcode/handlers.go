package intcode

import (
	"io"

	"github.com/hexaflex/aoc/arch"
)

// handler executes a single decoded instruction. It does not move the
// instruction pointer; Step advances it by the instruction width when
// the handler succeeds.
type handler func(c *Computer, instr *Instruction) error

// handlers maps every known opcode onto its implementation.
var handlers = [arch.MaxOpcode + 1]handler{
	arch.ADD:  opAdd,
	arch.MUL:  opMul,
	arch.IN:   opIn,
	arch.OUT:  opOut,
	arch.HALT: opHalt,
}

// Arithmetic wraps around on int64 overflow.
func opAdd(c *Computer, instr *Instruction) error {
	return c.binary(instr, func(a, b int64) int64 { return a + b })
}

func opMul(c *Computer, instr *Instruction) error {
	return c.binary(instr, func(a, b int64) int64 { return a * b })
}

func opIn(c *Computer, instr *Instruction) error {
	v, ok := c.state.Input.Pop()
	if !ok {
		return ErrInputEmpty
	}
	if err := c.Set(instr.Args[0], v); err != nil {
		// Leave the queue as it was so the instruction can be retried.
		c.state.Input = append(Queue{v}, c.state.Input...)
		return err
	}
	return nil
}

func opOut(c *Computer, instr *Instruction) error {
	v, err := c.operand(instr, 0)
	if err != nil {
		return err
	}
	c.state.Output.Push(v)
	return nil
}

func opHalt(*Computer, *Instruction) error {
	return io.EOF
}

// binary applies f to the first two operands and stores the result at
// the address held by the third parameter, which is always positional.
func (c *Computer) binary(instr *Instruction, f func(a, b int64) int64) error {
	a, err := c.operand(instr, 0)
	if err != nil {
		return err
	}
	b, err := c.operand(instr, 1)
	if err != nil {
		return err
	}
	return c.Set(instr.Args[2], f(a, b))
}

// operand returns parameter n with its address mode applied.
// Any mode other than Immediate dereferences the parameter.
func (c *Computer) operand(instr *Instruction, n int) (int64, error) {
	if instr.Modes[n] == arch.Immediate {
		return instr.Args[n], nil
	}
	return c.Lookup(instr.Args[n])
}
