package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-asm/isa"
)

// encodeJ builds the scrambled J-type immediate:
//
//	off[20] | off[10:1] | off[11] | off[19:12] | rd | opcode
//
// off is symbol_table[label] - address of this instruction; bit 0 of
// off is not stored. jal accepts "rd, label" or a bare "label" (rd
// defaults to x1, the return-address register, matching the common
// assembler convention for a call-site jal).
func (e *Encoder) encodeJ(mnemonic string, operands []string, address uint32) (uint32, error) {
	var rd uint32
	var label string

	switch len(operands) {
	case 1:
		rd = 1
		label = operands[0]
	case 2:
		var err error
		rd, err = e.reg(operands[0])
		if err != nil {
			return 0, err
		}
		label = operands[1]
	default:
		return 0, fmt.Errorf("%s requires operands (%s), got %d", mnemonic, isa.OperandForm(mnemonic), len(operands))
	}

	target, err := e.symbols.Address(label)
	if err != nil {
		return 0, fmt.Errorf("undefined label: %q", label)
	}
	off := int64(int32(target) - int32(address))

	if off%2 != 0 {
		return 0, fmt.Errorf("jump target not half-aligned: offset=%d", off)
	}
	if off < -1048576 || off > 1048574 {
		return 0, fmt.Errorf("jump offset out of range [-1048576,1048574]: %d", off)
	}

	u := uint32(off)
	bit20 := (u >> 20) & 0x1
	bits10_1 := (u >> 1) & 0x3FF
	bit11 := (u >> 11) & 0x1
	bits19_12 := (u >> 12) & 0xFF

	opcode, _ := isa.Opcode(mnemonic)
	word := bit20<<31 | bits10_1<<21 | bit11<<20 | bits19_12<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}
