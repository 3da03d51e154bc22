package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-asm/isa"
)

// encodeB builds the scrambled B-type immediate:
//
//	off[12] | off[10:5] | rs2 | rs1 | funct3 | off[4:1] | off[11] | opcode
//
// off is symbol_table[label] - address of this instruction; bit 0 of
// off is always zero and is not stored. Each field is extracted from
// the offset by an explicit named bit range to keep the scrambled
// layout auditable rather than reusing J-type's extraction by accident.
func (e *Encoder) encodeB(mnemonic string, operands []string, address uint32) (uint32, error) {
	if err := wantOperands(mnemonic, operands, 3); err != nil {
		return 0, err
	}

	rs1, err := e.reg(operands[0])
	if err != nil {
		return 0, err
	}
	rs2, err := e.reg(operands[1])
	if err != nil {
		return 0, err
	}

	target, err := e.symbols.Address(operands[2])
	if err != nil {
		return 0, fmt.Errorf("undefined label: %q", operands[2])
	}
	off := int64(int32(target) - int32(address))

	if off%2 != 0 {
		return 0, fmt.Errorf("branch target not word/half-aligned: offset=%d", off)
	}
	if off < -4096 || off > 4094 {
		return 0, fmt.Errorf("branch offset out of range [-4096,4094]: %d", off)
	}

	u := uint32(off)
	bit12 := (u >> 12) & 0x1
	bits10_5 := (u >> 5) & 0x3F
	bits4_1 := (u >> 1) & 0xF
	bit11 := (u >> 11) & 0x1

	opcode, _ := isa.Opcode(mnemonic)
	funct3, _ := isa.Funct3(mnemonic)

	word := bit12<<31 | bits10_5<<25 | (rs2&0x1F)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | bits4_1<<8 | bit11<<7 | (opcode & 0x7F)
	return word, nil
}
