package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-asm/isa"
	"github.com/lookbusy1344/rv32i-asm/lexer"
)

// encodeS builds: imm[11:5][31:25] | rs2[24:20] | rs1[19:15] | funct3[14:12] | imm[4:0][11:7] | opcode[6:0]
// Form: "mnem rs2, imm(rs1)"
func (e *Encoder) encodeS(mnemonic string, operands []string) (uint32, error) {
	if err := wantOperands(mnemonic, operands, 2); err != nil {
		return 0, err
	}

	rs2, err := e.reg(operands[0])
	if err != nil {
		return 0, err
	}
	immStr, regStr, err := lexer.MemoryOperand(operands[1])
	if err != nil {
		return 0, err
	}
	imm, err := lexer.ParseImmediate(immStr)
	if err != nil {
		return 0, err
	}
	if imm < -2048 || imm > 2047 {
		return 0, fmt.Errorf("%s: immediate out of range [-2048,2047]: %d", mnemonic, imm)
	}
	rs1, err := e.reg(regStr)
	if err != nil {
		return 0, err
	}

	opcode, _ := isa.Opcode(mnemonic)
	funct3, _ := isa.Funct3(mnemonic)
	u := uint32(imm)

	hi := (u >> 5) & 0x7F
	lo := u & 0x1F

	word := hi<<25 | (rs2&0x1F)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | lo<<7 | (opcode & 0x7F)
	return word, nil
}
