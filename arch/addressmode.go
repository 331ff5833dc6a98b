package arch

// AddressMode defines instruction parameter address modes.
type AddressMode byte

// Known address modes.
const (
	Position  AddressMode = 0 // x = mem[123]
	Immediate AddressMode = 1 // x = 123
)

// MaxArgs is the largest number of parameters any instruction takes.
const MaxArgs = 3

// Decode splits an encoded instruction value into its opcode and
// the address modes of up to MaxArgs parameters, least significant
// mode digit first.
func Decode(value int64) (Opcode, [MaxArgs]AddressMode) {
	var modes [MaxArgs]AddressMode

	digits := value / 100
	for i := range modes {
		modes[i] = AddressMode(digits % 10)
		digits /= 10
	}

	return Opcode(value % 100), modes
}

// Encode is the inverse of Decode.
func Encode(op Opcode, modes ...AddressMode) int64 {
	value := int64(op)
	scale := int64(100)

	for _, m := range modes {
		value += int64(m) * scale
		scale *= 10
	}

	return value
}
