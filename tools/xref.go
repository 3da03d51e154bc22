package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/rv32i-asm/lexer"
	"github.com/lookbusy1344/rv32i-asm/symtab"
)

// ReferenceType distinguishes how a label was used at one reference
// site; RV32I has no separate load/store-address syntax, so this
// collapses the teacher's ARM-specific split into branch vs. call vs.
// data (an la address computation).
type ReferenceType int

const (
	RefUnknown ReferenceType = iota
	RefBranch
	RefCall
	RefData
)

func (r ReferenceType) String() string {
	switch r {
	case RefBranch:
		return "branch"
	case RefCall:
		return "call"
	case RefData:
		return "data"
	default:
		return "unknown"
	}
}

// ReferenceSite is one use of a label: the line it appears on and how
// it was used there.
type ReferenceSite struct {
	Line int
	Kind ReferenceType
}

// XRefSymbol is one label's full report entry: where it's defined and
// every line that references it.
type XRefSymbol struct {
	Name       string
	Defined    bool
	DefLine    int
	IsFunction bool
	References []ReferenceSite
}

// XRefReport renders a sorted, human-readable cross-reference listing
// from an already-populated symbol table (typically assembler.Result.Symbols)
// plus the source lines that produced it, so each reference can be
// classified by how the label was used.
type XRefReport struct {
	symbols []*XRefSymbol
}

// NewXRefReport builds a report from a completed symbol table and the
// source lines assembled into it. lines is re-tokenized (not
// re-assembled) purely to classify each reference site; no diagnostics
// are produced here.
func NewXRefReport(lines []string, table *symtab.Table) *XRefReport {
	sites := classifyReferences(lines)

	var out []*XRefSymbol
	for _, sym := range table.All() {
		refs := sites[sym.Name]
		if len(refs) == 0 && len(sym.References) > 0 {
			// A reference symtab recorded but this pass couldn't
			// classify (e.g. a raw %hi20/%lo12 operand written by
			// hand rather than produced by call/la).
			refs = make([]ReferenceSite, len(sym.References))
			for i, line := range sym.References {
				refs[i] = ReferenceSite{Line: line, Kind: RefUnknown}
			}
		}

		isFunction := false
		for _, ref := range refs {
			if ref.Kind == RefCall {
				isFunction = true
				break
			}
		}

		out = append(out, &XRefSymbol{
			Name:       sym.Name,
			Defined:    sym.Defined,
			DefLine:    sym.DefLine,
			IsFunction: isFunction,
			References: refs,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return &XRefReport{symbols: out}
}

// classifyReferences re-tokenizes source (at the pseudo-mnemonic
// level, before expansion) and returns every label use keyed by
// label name, each tagged with how it was used.
func classifyReferences(lines []string) map[string][]ReferenceSite {
	sites := make(map[string][]ReferenceSite)
	for i, raw := range lines {
		lineNo := i + 1
		tl := lexer.Tokenize(raw, lineNo)
		if tl.Blank || tl.Directive != "" || tl.Mnemonic == "" {
			continue
		}
		label, kind, ok := classifyReference(tl.Mnemonic, tl.Operands)
		if !ok {
			continue
		}
		sites[label] = append(sites[label], ReferenceSite{Line: lineNo, Kind: kind})
	}
	return sites
}

// classifyReference identifies the label operand of a branch, jump,
// call, or load-address mnemonic and how it is used. j/beqz/bnez/...
// are unconditional/conditional jumps (branch); jal and the call
// pseudo transfer control with a return address (call); la merely
// computes an address (data).
func classifyReference(mnemonic string, operands []string) (label string, kind ReferenceType, ok bool) {
	switch mnemonic {
	case "beq", "bne", "blt", "bge", "bltu", "bgeu":
		if len(operands) == 3 {
			return operands[2], RefBranch, true
		}
	case "beqz", "bnez", "bltz", "bgez", "blez", "bgtz":
		if len(operands) == 2 {
			return operands[1], RefBranch, true
		}
	case "j":
		if len(operands) == 1 {
			return operands[0], RefBranch, true
		}
	case "jal":
		if len(operands) > 0 {
			return operands[len(operands)-1], RefCall, true
		}
	case "call":
		if len(operands) == 1 {
			return operands[0], RefCall, true
		}
	case "la":
		if len(operands) == 2 {
			return operands[1], RefData, true
		}
	}
	return "", RefUnknown, false
}

// String renders the full text report: per-symbol detail followed by
// a summary count block.
func (r *XRefReport) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol Cross-Reference\n")
	sb.WriteString("======================\n\n")

	for _, sym := range r.symbols {
		sb.WriteString(fmt.Sprintf("%-30s", sym.Name))
		switch {
		case sym.IsFunction:
			sb.WriteString(" [function]")
		case sym.Defined:
			sb.WriteString(" [label]")
		default:
			sb.WriteString(" [undefined]")
		}
		sb.WriteString("\n")

		if sym.Defined {
			sb.WriteString(fmt.Sprintf("  Defined:     line %d\n", sym.DefLine))
		} else {
			sb.WriteString("  Defined:     (undefined)\n")
		}

		if len(sym.References) == 0 {
			sb.WriteString("  Referenced:  (never)\n")
		} else {
			sites := make([]string, len(sym.References))
			for i, ref := range sym.References {
				sites[i] = fmt.Sprintf("line %d (%s)", ref.Line, ref.Kind)
			}
			sb.WriteString(fmt.Sprintf("  Referenced:  %d time(s), %s\n", len(sym.References), strings.Join(sites, ", ")))
		}
		sb.WriteString("\n")
	}

	var defined, undefined, unused int
	for _, sym := range r.symbols {
		if sym.Defined {
			defined++
		} else {
			undefined++
		}
		if len(sym.References) == 0 {
			unused++
		}
	}

	sb.WriteString("Summary\n")
	sb.WriteString("=======\n")
	sb.WriteString(fmt.Sprintf("Total symbols: %d\n", len(r.symbols)))
	sb.WriteString(fmt.Sprintf("Defined:       %d\n", defined))
	sb.WriteString(fmt.Sprintf("Undefined:     %d\n", undefined))
	sb.WriteString(fmt.Sprintf("Unused:        %d\n", unused))

	return sb.String()
}

// GenerateXRef is a convenience wrapper returning the rendered text of
// NewXRefReport(lines, table); it does not assemble lines itself.
func GenerateXRef(lines []string, table *symtab.Table) string {
	return NewXRefReport(lines, table).String()
}
