// Package asm converts between Intcode programs and a readable assembly form.
//
// Every source line holds one statement. A statement is an instruction
// name followed by comma separated parameters, or DATA followed by raw
// cell values. Parameters prefixed with '$' are immediate; all others
// are positional. A ';' starts a comment. A statement may be preceded by
// its address, which must match the address it is assembled at. This
// makes Disassemble output, and trace output, valid assembly:
//
//	0000   MUL 4, $3, 4
//	0004  HALT
//	      DATA 33
package asm

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hexaflex/aoc/arch"
	"github.com/hexaflex/aoc/intcode"
	"github.com/pkg/errors"
)

// Build assembles the given source into a program.
// The name is only used for error messages.
func Build(name string, r io.Reader) (intcode.Memory, error) {
	var out intcode.Memory

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := scanner.Text()
		if i := strings.IndexByte(text, ';'); i > -1 {
			text = text[:i]
		}

		var err error
		out, err = assembleLine(out, text, Position{File: name, Line: line})
		if err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}

	return out, nil
}

// assembleLine appends the encoded statement in text to out.
func assembleLine(out intcode.Memory, text string, pos Position) (intcode.Memory, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return out, nil
	}

	line := text
	col := func(token string) Position {
		pos.Col = strings.Index(line, token) + 1
		return pos
	}

	name := fields[0]
	if addr, err := strconv.ParseInt(name, 10, 64); err == nil {
		if addr != out.Len() {
			return nil, newError(col(name), "statement address %d does not match location %d", addr, out.Len())
		}
		if len(fields) == 1 {
			return nil, newError(col(name), "missing statement after address")
		}
		text = text[strings.Index(text, name)+len(name):]
		name = fields[1]
	}

	rest := strings.TrimSpace(text[strings.Index(text, name)+len(name):])
	var params []string
	if rest != "" {
		params = strings.Split(rest, ",")
		for i := range params {
			params[i] = strings.TrimSpace(params[i])
		}
	}

	if strings.EqualFold(name, "data") {
		if len(params) == 0 {
			return nil, newError(col(name), "DATA requires at least one value")
		}
		for _, p := range params {
			v, err := strconv.ParseInt(p, 10, 64)
			if err != nil {
				return nil, newError(col(p), "invalid value %q", p)
			}
			out = append(out, v)
		}
		return out, nil
	}

	op, ok := arch.Lookup(name)
	if !ok {
		return nil, newError(col(name), "unknown instruction %q", name)
	}

	if argc := arch.Argc(op); len(params) != argc {
		return nil, newError(col(name), "%s expects %d parameters, have %d", op, argc, len(params))
	}

	modes := make([]arch.AddressMode, len(params))
	args := make([]int64, len(params))

	for i, p := range params {
		value := p
		if strings.HasPrefix(value, "$") {
			modes[i] = arch.Immediate
			value = value[1:]
		}

		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, newError(col(p), "invalid parameter %q", p)
		}
		args[i] = v
	}

	out = append(out, arch.Encode(op, modes...))
	return append(out, args...), nil
}

// Disassemble returns an assembly listing for the given program.
// Cells which do not hold a well formed instruction are listed as DATA.
func Disassemble(m intcode.Memory) string {
	var sb strings.Builder
	var instr intcode.Instruction

	for ip := int64(0); ip < m.Len(); {
		if instr.Decode(m, ip) != nil || !canonical(&instr) {
			fmt.Fprintf(&sb, "%04d %5s %d\n", ip, "DATA", m[ip])
			ip++
			continue
		}

		sb.WriteString(instr.String())
		sb.WriteByte('\n')
		ip += instr.Width()
	}

	return sb.String()
}

// canonical returns true if re-encoding the instruction yields its raw
// value, so the listing assembles back to the same program.
func canonical(instr *intcode.Instruction) bool {
	argc := arch.Argc(instr.Opcode)
	for _, m := range instr.Modes[:argc] {
		if m != arch.Position && m != arch.Immediate {
			return false
		}
	}
	return arch.Encode(instr.Opcode, instr.Modes[:argc]...) == instr.Raw
}

// Format returns the program in the comma separated form accepted
// by Computer.Load.
func Format(m intcode.Memory) string {
	parts := make([]string, len(m))
	for i, v := range m {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
