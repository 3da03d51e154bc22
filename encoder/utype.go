package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-asm/isa"
)

// encodeU builds: imm[31:12][31:12] | rd[11:7] | opcode[6:0]
// lui takes the immediate literally; auipc likewise (the CPU adds PC
// at runtime, which is outside this core's concern — it only encodes
// the bit pattern).
func (e *Encoder) encodeU(mnemonic string, operands []string, anchor uint32) (uint32, error) {
	if err := wantOperands(mnemonic, operands, 2); err != nil {
		return 0, err
	}

	rd, err := e.reg(operands[0])
	if err != nil {
		return 0, err
	}
	imm, err := e.immediateOperand(operands[1], anchor)
	if err != nil {
		return 0, err
	}
	if imm < 0 || imm > 0xFFFFF {
		return 0, fmt.Errorf("%s: immediate out of range [0,0xFFFFF]: %d", mnemonic, imm)
	}

	opcode, _ := isa.Opcode(mnemonic)
	word := (uint32(imm)&0xFFFFF)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}
