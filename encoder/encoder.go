// Package encoder converts a concrete (non-pseudo) RV32I instruction —
// mnemonic plus operand strings — into its 32-bit machine word, per
// format. Every encoder masks each bit field to its declared width
// before OR-ing it into the result, so a negative immediate's sign
// bits can never bleed into a neighboring field.
package encoder

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/rv32i-asm/isa"
	"github.com/lookbusy1344/rv32i-asm/lexer"
	"github.com/lookbusy1344/rv32i-asm/symtab"
)

// Encoder holds the symbol table used to resolve label operands. It
// carries no other mutable state: one instance is reused across every
// instruction of pass two.
type Encoder struct {
	symbols *symtab.Table
}

// New creates an encoder bound to the symbol table it resolves label
// operands against (pass two passes the table completed by pass one).
func New(symbols *symtab.Table) *Encoder {
	return &Encoder{symbols: symbols}
}

// Encode dispatches mnemonic to the matching format encoder and
// returns the 32-bit instruction word. address is this instruction's
// own byte address (used for PC-relative B/J offsets); anchor is the
// address of the first real instruction in its pseudo-expansion group
// (equal to address for anything that isn't part of a multi-instruction
// pseudo like "call"/"la", and used only to resolve their %hi20/%lo12
// synthetic operands against one shared PC-relative split).
func (e *Encoder) Encode(mnemonic string, operands []string, address, anchor uint32) (uint32, error) {
	format, err := isa.FormatOf(mnemonic)
	if err != nil {
		return 0, err
	}

	switch format {
	case isa.FormatR:
		return e.encodeR(mnemonic, operands)
	case isa.FormatI:
		return e.encodeI(mnemonic, operands, anchor)
	case isa.FormatS:
		return e.encodeS(mnemonic, operands)
	case isa.FormatB:
		return e.encodeB(mnemonic, operands, address)
	case isa.FormatU:
		return e.encodeU(mnemonic, operands, anchor)
	case isa.FormatJ:
		return e.encodeJ(mnemonic, operands, address)
	case isa.FormatSYS:
		return e.encodeSYS(mnemonic, operands)
	default:
		return 0, fmt.Errorf("unknown instruction: %s", mnemonic)
	}
}

func (e *Encoder) reg(operand string) (uint32, error) {
	return isa.RegisterIndex(strings.TrimSpace(operand))
}

func wantOperands(mnemonic string, got []string, want int) error {
	if len(got) != want {
		form := isa.OperandForm(mnemonic)
		return fmt.Errorf("%s requires operands (%s), got %d", mnemonic, form, len(got))
	}
	return nil
}

// resolveSigned resolves an operand to a signed value: either a label
// (looked up in the symbol table, returned as its absolute address so
// callers needing a PC-relative split can subtract anchor/address
// themselves) or a plain numeric literal.
func (e *Encoder) resolveSigned(operand string) (int64, error) {
	if sym, ok := e.symbols.Lookup(operand); ok && sym.Defined {
		return int64(sym.Address), nil
	}
	return lexer.ParseImmediate(operand)
}

// hiLoRelocation recognizes the synthetic "%hi20(label)" / "%lo12(label)"
// operand forms produced by the call/la pseudo expansions and resolves
// the named label's offset from anchor. ok is false for an operand that
// isn't one of these two forms, in which case the caller falls back to
// treating it as an ordinary immediate.
func (e *Encoder) hiLoRelocation(operand string, anchor uint32) (value int64, ok bool, err error) {
	var label string
	var isHi bool
	switch {
	case strings.HasPrefix(operand, "%hi20(") && strings.HasSuffix(operand, ")"):
		label = operand[len("%hi20(") : len(operand)-1]
		isHi = true
	case strings.HasPrefix(operand, "%lo12(") && strings.HasSuffix(operand, ")"):
		label = operand[len("%lo12(") : len(operand)-1]
		isHi = false
	default:
		return 0, false, nil
	}

	target, lookupErr := e.symbols.Address(label)
	if lookupErr != nil {
		return 0, true, lookupErr
	}
	offset := int64(int32(target) - int32(anchor))
	hi20 := (offset + 0x800) >> 12
	if isHi {
		return hi20 & 0xFFFFF, true, nil
	}
	lo12 := offset - (hi20 << 12)
	return lo12, true, nil
}

// immediateOperand resolves either a %hi20/%lo12 synthetic operand or
// an ordinary immediate/label operand, in that order.
func (e *Encoder) immediateOperand(operand string, anchor uint32) (int64, error) {
	if v, ok, err := e.hiLoRelocation(operand, anchor); ok {
		return v, err
	}
	return e.resolveSigned(operand)
}
