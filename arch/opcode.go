// Package arch defines the Intcode instruction set along with
// some related helper functions.
package arch

import "strings"

// Opcode identifies an instruction. It is the low two decimal
// digits of an encoded instruction value.
type Opcode int

// Known opcodes.
const (
	ADD  Opcode = 1
	MUL  Opcode = 2
	IN   Opcode = 3
	OUT  Opcode = 4
	HALT Opcode = 99
)

// MaxOpcode is the largest value an opcode can take.
const MaxOpcode = 99

// Lookup returns the opcode for the given instruction name.
// Returns false if the name is not recognized.
func Lookup(name string) (Opcode, bool) {
	switch strings.ToUpper(name) {
	case "ADD":
		return ADD, true
	case "MUL":
		return MUL, true
	case "IN":
		return IN, true
	case "OUT":
		return OUT, true
	case "HALT":
		return HALT, true
	}

	return 0, false
}

// Name returns the name for the given opcode.
// Returns false if the opcode is not recognized.
func Name(op Opcode) (string, bool) {
	switch op {
	case ADD:
		return "ADD", true
	case MUL:
		return "MUL", true
	case IN:
		return "IN", true
	case OUT:
		return "OUT", true
	case HALT:
		return "HALT", true
	}

	return "", false
}

// Argc returns the number of parameters the given instruction requires.
// Returns -1 if the opcode is not recognized.
func Argc(op Opcode) int {
	switch op {
	case ADD, MUL:
		return 3
	case IN, OUT:
		return 1
	case HALT:
		return 0
	}
	return -1
}

// Width returns the number of memory cells occupied by the instruction,
// the opcode cell included. Returns -1 if the opcode is not recognized.
func Width(op Opcode) int {
	if n := Argc(op); n > -1 {
		return n + 1
	}
	return -1
}

func (op Opcode) String() string {
	if name, ok := Name(op); ok {
		return name
	}
	return "?"
}
