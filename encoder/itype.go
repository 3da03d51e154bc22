package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-asm/isa"
	"github.com/lookbusy1344/rv32i-asm/lexer"
)

var shiftImmediate = map[string]bool{"slli": true, "srli": true, "srai": true}

// encodeI builds: imm[11:0][31:20] | rs1[19:15] | funct3[14:12] | rd[11:7] | opcode[6:0]
//
// Shift-immediate forms constrain imm to 0..31 and place funct7 in
// 31:25 with shamt in 24:20. Loads and jalr both accept a memory
// operand "imm(rs1)"; jalr additionally accepts "rd, rs1, imm".
func (e *Encoder) encodeI(mnemonic string, operands []string, anchor uint32) (uint32, error) {
	opcode, _ := isa.Opcode(mnemonic)
	funct3, _ := isa.Funct3(mnemonic)

	switch {
	case shiftImmediate[mnemonic]:
		return e.encodeShiftImmediate(mnemonic, operands, opcode, funct3)
	case mnemonic == "jalr":
		return e.encodeJalr(operands, opcode, funct3, anchor)
	case isLoadMnemonic(mnemonic):
		return e.encodeLoad(mnemonic, operands, opcode, funct3)
	default:
		return e.encodeArithmeticI(mnemonic, operands, opcode, funct3, anchor)
	}
}

func isLoadMnemonic(mnemonic string) bool {
	switch mnemonic {
	case "lb", "lh", "lw", "lbu", "lhu":
		return true
	default:
		return false
	}
}

func (e *Encoder) encodeArithmeticI(mnemonic string, operands []string, opcode, funct3 uint32, anchor uint32) (uint32, error) {
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
	imm, err := e.immediateOperand(operands[2], anchor)
	if err != nil {
		return 0, err
	}
	if imm < -2048 || imm > 2047 {
		return 0, fmt.Errorf("%s: immediate out of range [-2048,2047]: %d", mnemonic, imm)
	}

	word := (uint32(imm)&0xFFF)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}

func (e *Encoder) encodeShiftImmediate(mnemonic string, operands []string, opcode, funct3 uint32) (uint32, error) {
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
	shamt, err := lexer.ParseImmediate(operands[2])
	if err != nil {
		return 0, err
	}
	if shamt < 0 || shamt > 31 {
		return 0, fmt.Errorf("%s: shift amount out of range [0,31]: %d", mnemonic, shamt)
	}
	funct7, _ := isa.Funct7(mnemonic)

	word := (funct7&0x7F)<<25 | (uint32(shamt)&0x1F)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}

func (e *Encoder) encodeLoad(mnemonic string, operands []string, opcode, funct3 uint32) (uint32, error) {
	if err := wantOperands(mnemonic, operands, 2); err != nil {
		return 0, err
	}
	rd, err := e.reg(operands[0])
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

	word := (uint32(imm)&0xFFF)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}

// encodeJalr accepts both "jalr rd, rs1, imm" and "jalr rd, imm(rs1)".
func (e *Encoder) encodeJalr(operands []string, opcode, funct3 uint32, anchor uint32) (uint32, error) {
	var (
		rd, rs1 uint32
		imm     int64
		err     error
	)

	switch len(operands) {
	case 2:
		rd, err = e.reg(operands[0])
		if err != nil {
			return 0, err
		}
		var immStr, regStr string
		immStr, regStr, err = lexer.MemoryOperand(operands[1])
		if err != nil {
			return 0, err
		}
		imm, err = e.immediateOperand(immStr, anchor)
		if err != nil {
			return 0, err
		}
		rs1, err = e.reg(regStr)
		if err != nil {
			return 0, err
		}
	case 3:
		rd, err = e.reg(operands[0])
		if err != nil {
			return 0, err
		}
		rs1, err = e.reg(operands[1])
		if err != nil {
			return 0, err
		}
		imm, err = e.immediateOperand(operands[2], anchor)
		if err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("jalr requires operands (%s), got %d", isa.OperandForm("jalr"), len(operands))
	}

	if imm < -2048 || imm > 2047 {
		return 0, fmt.Errorf("jalr: immediate out of range [-2048,2047]: %d", imm)
	}

	word := (uint32(imm)&0xFFF)<<20 | (rs1&0x1F)<<15 | (funct3&0x7)<<12 | (rd&0x1F)<<7 | (opcode & 0x7F)
	return word, nil
}
