package encoder

import "github.com/lookbusy1344/rv32i-asm/isa"

// encodeR builds: funct7[31:25] | rs2[24:20] | rs1[19:15] | funct3[14:12] | rd[11:7] | opcode[6:0]
func (e *Encoder) encodeR(mnemonic string, operands []string) (uint32, error) {
	if err := wantOperands(mnemonic, operands, 3); err != nil {
		return 0, err
	}

	rd, err := e.reg(operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := e.reg(operands[1])
	if err != nil {
		return 0, err
	}
	rs2, err := e.reg(operands[2])
	if err != nil {
		return 0, err
	}

	opcode, _ := isa.Opcode(mnemonic)
	funct3, _ := isa.Funct3(mnemonic)
	funct7, _ := isa.Funct7(mnemonic)

	word := (funct7&0x7F)<<25 | (rs2&0x1F)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}
