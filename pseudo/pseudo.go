// Package pseudo implements the pseudo-instruction expander: a pure,
// deterministic function from (mnemonic, operands) to a short sequence
// of concrete RV32I (mnemonic, operands) pairs. Both passes of the
// assembler call the same Expand (directly, or through ExpansionLength)
// so the length of a variable-length expansion like "li" is never
// computed two different ways.
package pseudo

import (
	"fmt"
	"strconv"

	"github.com/lookbusy1344/rv32i-asm/lexer"
)

// Instr is one concrete (base) instruction produced by expansion.
type Instr struct {
	Mnemonic string
	Operands []string
}

// Known reports whether mnemonic is a recognized pseudo-instruction.
func Known(mnemonic string) bool {
	switch mnemonic {
	case "nop", "mv", "not", "neg", "seqz", "snez", "sltz", "sgtz",
		"j", "jr", "ret", "call", "la",
		"beqz", "bnez", "bltz", "bgez", "blez", "bgtz",
		"li":
		return true
	default:
		return false
	}
}

// ExpansionLength returns how many real instructions mnemonic expands
// to. Pass one calls this to
// advance the program counter; it must agree exactly with Expand, so it
// is implemented in terms of Expand rather than duplicating the "li"
// magnitude check.
//
// If expansion fails (e.g. a malformed "li" immediate, or wrong arity),
// the length is reported as 1: pass two will independently fail the
// same way and emit a single zero-word placeholder, so the two passes
// stay in lockstep even on error.
func ExpansionLength(mnemonic string, operands []string) (int, error) {
	expanded, err := Expand(mnemonic, operands)
	if err != nil {
		return 1, err
	}
	return len(expanded), nil
}

// Expand maps one pseudo-instruction invocation to its base-instruction
// sequence. mnemonic must satisfy Known; callers dispatch on Known
// before calling Expand.
func Expand(mnemonic string, ops []string) ([]Instr, error) {
	switch mnemonic {
	case "nop":
		return arity(ops, 0, func() []Instr {
			return []Instr{{"addi", []string{"x0", "x0", "0"}}}
		})

	case "mv":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"addi", []string{ops[0], ops[1], "0"}}}
		})

	case "not":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"xori", []string{ops[0], ops[1], "-1"}}}
		})

	case "neg":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"sub", []string{ops[0], "x0", ops[1]}}}
		})

	case "seqz":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"sltiu", []string{ops[0], ops[1], "1"}}}
		})

	case "snez":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"sltu", []string{ops[0], "x0", ops[1]}}}
		})

	case "sltz":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"slt", []string{ops[0], ops[1], "x0"}}}
		})

	case "sgtz":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"slt", []string{ops[0], "x0", ops[1]}}}
		})

	case "j":
		return arity(ops, 1, func() []Instr {
			return []Instr{{"jal", []string{"x0", ops[0]}}}
		})

	case "jr":
		return arity(ops, 1, func() []Instr {
			return []Instr{{"jalr", []string{"x0", "0(" + ops[0] + ")"}}}
		})

	case "ret":
		return arity(ops, 0, func() []Instr {
			return []Instr{{"jalr", []string{"x0", "0(ra)"}}}
		})

	case "call":
		return arity(ops, 1, func() []Instr {
			label := ops[0]
			return []Instr{
				{"auipc", []string{"ra", "%hi20(" + label + ")"}},
				{"jalr", []string{"ra", "%lo12(" + label + ")(ra)"}},
			}
		})

	case "la":
		return arity(ops, 2, func() []Instr {
			label := ops[1]
			return []Instr{
				{"auipc", []string{ops[0], "%hi20(" + label + ")"}},
				{"addi", []string{ops[0], ops[0], "%lo12(" + label + ")"}},
			}
		})

	case "beqz":
		return branchZero(ops, "beq")
	case "bnez":
		return branchZero(ops, "bne")
	case "bltz":
		return branchZero(ops, "blt")
	case "bgez":
		return branchZero(ops, "bge")
	case "blez":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"bge", []string{"x0", ops[0], ops[1]}}}
		})
	case "bgtz":
		return arity(ops, 2, func() []Instr {
			return []Instr{{"blt", []string{"x0", ops[0], ops[1]}}}
		})

	case "li":
		return expandLi(ops)

	default:
		return nil, fmt.Errorf("unknown pseudo-instruction: %s", mnemonic)
	}
}

func branchZero(ops []string, real string) ([]Instr, error) {
	return arity(ops, 2, func() []Instr {
		return []Instr{{real, []string{ops[0], "x0", ops[1]}}}
	})
}

func arity(ops []string, want int, build func() []Instr) ([]Instr, error) {
	if len(ops) != want {
		return nil, fmt.Errorf("expected %d operand(s), got %d", want, len(ops))
	}
	return build(), nil
}

// expandLi implements the li length contract of spec §4.2: a single
// addi when the immediate fits in a signed 12-bit field, otherwise a
// lui+addi pair whose combined effect computes the full 32-bit value.
func expandLi(ops []string) ([]Instr, error) {
	if len(ops) != 2 {
		return nil, fmt.Errorf("li requires 2 operands, got %d", len(ops))
	}
	rd := ops[0]
	imm, err := lexer.ParseImmediate(ops[1])
	if err != nil {
		return nil, fmt.Errorf("malformed li immediate: %v", err)
	}

	if imm >= -2048 && imm <= 2047 {
		return []Instr{{"addi", []string{rd, "x0", strconv.FormatInt(imm, 10)}}}, nil
	}

	if imm < -(1 << 31) || imm > (1<<32-1) {
		return nil, fmt.Errorf("li immediate out of 32-bit range: %d", imm)
	}

	v := uint32(imm)
	hi20 := (v + 0x800) >> 12
	lo12 := int32(v) - int32(hi20<<12)

	return []Instr{
		{"lui", []string{rd, strconv.FormatUint(uint64(hi20&0xFFFFF), 10)}},
		{"addi", []string{rd, rd, strconv.FormatInt(int64(lo12), 10)}},
	}, nil
}
