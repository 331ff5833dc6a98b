package intcode

import (
	"fmt"
	"strings"

	"github.com/hexaflex/aoc/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     int64                          // Instruction address.
	Raw    int64                          // Encoded instruction value.
	Opcode arch.Opcode                    // Instruction opcode.
	Modes  [arch.MaxArgs]arch.AddressMode // Parameter address modes.
	Args   [arch.MaxArgs]int64            // Raw parameter values, before address modes are applied.
}

// Decode decodes the instruction at the given address.
// Unknown opcodes yield ErrUnknownOpcode, with IP and Raw filled in.
func (i *Instruction) Decode(m Memory, ip int64) error {
	*i = Instruction{IP: ip}

	raw, err := m.Lookup(ip)
	if err != nil {
		return err
	}

	i.Raw = raw
	i.Opcode, i.Modes = arch.Decode(raw)

	switch argc := arch.Argc(i.Opcode); argc {
	case -1:
		return ErrUnknownOpcode
	case 3:
		i.Args[0], i.Args[1], i.Args[2], err = m.Lookup3(ip + 1)
		return err
	default:
		for j := 0; j < argc; j++ {
			if i.Args[j], err = m.Lookup(ip + 1 + int64(j)); err != nil {
				return err
			}
		}
	}

	return nil
}

// Width returns the number of cells the instruction occupies.
func (i *Instruction) Width() int64 {
	return int64(arch.Width(i.Opcode))
}

// String returns a disassembled representation of the instruction.
// Immediate parameters are prefixed with '$'.
func (i *Instruction) String() string {
	name, ok := arch.Name(i.Opcode)
	if !ok {
		name = fmt.Sprintf("%02d", i.Opcode)
	}

	var sb strings.Builder
	for j := 0; j < arch.Argc(i.Opcode); j++ {
		if j > 0 {
			sb.WriteString(", ")
		}
		if i.Modes[j] == arch.Immediate {
			sb.WriteByte('$')
		}
		fmt.Fprintf(&sb, "%d", i.Args[j])
	}

	return strings.TrimSpace(fmt.Sprintf("%04d %5s %s", i.IP, name, sb.String()))
}
