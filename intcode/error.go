package intcode

import (
	"fmt"

	"github.com/pkg/errors"
)

// Known failure conditions. Errors returned by the computer can be
// matched against these with errors.Is.
var (
	ErrAddressRange  = errors.New("address out of range")
	ErrUnknownOpcode = errors.New("unexpected opcode")
	ErrInputEmpty    = errors.New("input buffer is empty")
	ErrParse         = errors.New("malformed program")
	ErrNoSnapshot    = errors.New("no snapshot captured")
)

// Error defines a runtime error.
type Error struct {
	Instruction
	Err error
}

// NewError creates a new runtime error for the given instruction.
func NewError(instr *Instruction, err error) *Error {
	return &Error{
		Instruction: *instr,
		Err:         err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04d: %v (instruction %d)", e.IP, e.Err, e.Raw)
}

func (e *Error) Unwrap() error {
	return e.Err
}
