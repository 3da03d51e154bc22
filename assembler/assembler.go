// Package assembler ties the lexer, pseudo-expander, ISA tables,
// symbol table, and encoder together into the two-pass scheme: pass
// one discovers every label's address, pass two expands pseudos again
// and emits the final machine code, consulting the now-complete symbol
// table for every PC-relative offset.
package assembler

import (
	"encoding/binary"
	"strings"

	"github.com/lookbusy1344/rv32i-asm/diag"
	"github.com/lookbusy1344/rv32i-asm/encoder"
	"github.com/lookbusy1344/rv32i-asm/isa"
	"github.com/lookbusy1344/rv32i-asm/lexer"
	"github.com/lookbusy1344/rv32i-asm/pseudo"
	"github.com/lookbusy1344/rv32i-asm/symtab"
)

var directives = map[string]bool{
	".text": true, ".globl": true, ".global": true, ".data": true,
}

// Result is everything one Assemble call produces: the flat
// little-endian text segment, the diagnostic sink (possibly empty),
// the completed symbol table, and an overall ok flag equivalent to
// diagnostics.Count() == 0.
type Result struct {
	Text        []byte
	Diagnostics *diag.Sink
	Symbols     *symtab.Table
	OK          bool
}

// Assemble is the core's single entry point: an ordered list of
// source-line strings in, a Result out. It is pure except for the
// diagnostic sink it builds as it goes; no I/O happens here.
func Assemble(lines []string) *Result {
	sink := diag.New()
	symbols := symtab.New()

	finalPC := passOne(lines, symbols, sink)
	text := passTwo(lines, symbols, sink, finalPC)

	return &Result{
		Text:        text,
		Diagnostics: sink,
		Symbols:     symbols,
		OK:          !sink.HasErrors(),
	}
}

// passOne walks the source once, recording every label's byte address
// and returning the final program counter — the byte length pass two
// must emit, per the invariant in spec §3.
func passOne(lines []string, symbols *symtab.Table, sink *diag.Sink) uint32 {
	var pc uint32

	for i, raw := range lines {
		lineNo := i + 1
		line := lexer.Tokenize(raw, lineNo)
		if line.Blank {
			continue
		}

		if line.Label != "" {
			if !symbols.Define(line.Label, pc, lineNo) {
				sink.Reportf(lineNo, raw, diag.Symbolic, "duplicate label definition: %q", line.Label)
			}
		}

		if line.Directive != "" {
			if !directives[line.Directive] {
				sink.Reportf(lineNo, raw, diag.Semantic, "unrecognized directive: %s", line.Directive)
			}
			continue
		}

		if line.Mnemonic == "" {
			continue
		}

		pc += 4 * uint32(instructionCount(line.Mnemonic, line.Operands))
	}

	return pc
}

// instructionCount returns how many real instructions one source line
// expands to: 1 for a base mnemonic, pseudo.ExpansionLength for a
// pseudo, and 1 (the zero-word placeholder slot) for anything
// unrecognized — matching pass two's placeholder policy so PC stays in
// lockstep even when a line is malformed. A pseudo whose operands are
// malformed still reports length 1; pass two re-derives and reports the
// identical error when it expands the line for real.
func instructionCount(mnemonic string, operands []string) int {
	if pseudo.Known(mnemonic) {
		n, _ := pseudo.ExpansionLength(mnemonic, operands)
		return n
	}
	return 1
}

// passTwo walks the source again with the completed symbol table,
// expanding pseudos and encoding each resulting instruction. A faulty
// instruction still advances PC by 4 via a zero-word placeholder, so
// every later label offset stays consistent with pass one.
func passTwo(lines []string, symbols *symtab.Table, sink *diag.Sink, finalPC uint32) []byte {
	text := make([]byte, 0, finalPC)
	enc := encoder.New(symbols)
	var pc uint32

	emit := func(word uint32) {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], word)
		text = append(text, buf[:]...)
		pc += 4
	}

	for i, raw := range lines {
		lineNo := i + 1
		line := lexer.Tokenize(raw, lineNo)
		if line.Blank {
			continue
		}
		if line.Directive != "" {
			continue
		}
		if line.Mnemonic == "" {
			continue
		}

		instrs, err := expandLine(line.Mnemonic, line.Operands)
		if err != nil {
			kind := diag.Structural
			if _, unknown := err.(*unknownInstructionError); unknown || strings.Contains(err.Error(), "operand") {
				kind = diag.Semantic
			}
			sink.Reportf(lineNo, raw, kind, "%v", err)
			emit(0)
			continue
		}

		anchor := pc
		for _, instr := range instrs {
			recordReferences(symbols, instr, lineNo)
			word, encErr := enc.Encode(instr.Mnemonic, instr.Operands, pc, anchor)
			if encErr != nil {
				sink.Reportf(lineNo, raw, classify(encErr), "%v", encErr)
				emit(0)
				continue
			}
			emit(word)
		}
	}

	return text
}

// recordReferences notes every label an instruction's operands name,
// so symtab's advisory Unreferenced() report (and any future
// cross-reference tooling) sees uses as well as definitions. Labels
// only ever appear as a B/J branch target or inside a %hi20/%lo12
// synthetic operand; every other operand is a register or a plain
// numeric immediate and is skipped.
func recordReferences(symbols *symtab.Table, instr pseudo.Instr, lineNo int) {
	format, err := isa.FormatOf(instr.Mnemonic)
	if err != nil {
		return
	}

	switch format {
	case isa.FormatB:
		if len(instr.Operands) == 3 {
			symbols.Reference(instr.Operands[2], lineNo)
		}
	case isa.FormatJ:
		if len(instr.Operands) > 0 {
			symbols.Reference(instr.Operands[len(instr.Operands)-1], lineNo)
		}
	default:
		for _, op := range instr.Operands {
			if label, ok := hiLoLabel(op); ok {
				symbols.Reference(label, lineNo)
			}
		}
	}
}

// hiLoLabel extracts the label name from a "%hi20(label)" or
// "%lo12(label)" synthetic operand, as produced by the call/la pseudo
// expansions (including call's "%lo12(label)(ra)" memory form).
func hiLoLabel(operand string) (string, bool) {
	for _, prefix := range []string{"%hi20(", "%lo12("} {
		if strings.HasPrefix(operand, prefix) {
			if end := strings.IndexByte(operand, ')'); end > len(prefix) {
				return operand[len(prefix):end], true
			}
		}
	}
	return "", false
}

// expandLine resolves a source line's mnemonic+operands into the
// concrete instruction sequence pass two will encode: the line as-is
// if it's already a base mnemonic, or its pseudo expansion.
func expandLine(mnemonic string, operands []string) ([]pseudo.Instr, error) {
	if pseudo.Known(mnemonic) {
		return pseudo.Expand(mnemonic, operands)
	}
	if isa.Known(mnemonic) {
		return []pseudo.Instr{{Mnemonic: mnemonic, Operands: operands}}, nil
	}
	return nil, &unknownInstructionError{mnemonic}
}

type unknownInstructionError struct{ mnemonic string }

func (e *unknownInstructionError) Error() string {
	return "unknown instruction: " + e.mnemonic
}

// classify picks a diagnostic Kind for an encoder error, best-effort,
// so the renderer can group diagnostics the way spec §7's taxonomy
// describes without the encoder itself depending on package diag.
func classify(err error) diag.Kind {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "out of range"), strings.Contains(msg, "not word"), strings.Contains(msg, "not half-aligned"):
		return diag.Range
	case strings.Contains(msg, "undefined label"), strings.Contains(msg, "undefined symbol"):
		return diag.Symbolic
	case strings.Contains(msg, "unknown register"), strings.Contains(msg, "unknown instruction"), strings.Contains(msg, "requires operands"):
		return diag.Semantic
	default:
		return diag.Lexical
	}
}
