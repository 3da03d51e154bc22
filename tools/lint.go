// Package tools provides static-analysis utilities layered on top of
// the assembler core: a linter, a canonical formatter, and a
// cross-reference report, all driven off the same lexer/symtab types
// package assembler already builds.
package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lookbusy1344/rv32i-asm/isa"
	"github.com/lookbusy1344/rv32i-asm/lexer"
	"github.com/lookbusy1344/rv32i-asm/pseudo"
	"github.com/lookbusy1344/rv32i-asm/symtab"
)

// LintLevel is the severity of a lint finding.
type LintLevel int

const (
	LintError LintLevel = iota
	LintWarning
	LintInfo
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue is a single finding at a source line.
type LintIssue struct {
	Level   LintLevel
	Line    int
	Message string
	Code    string
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d: %s: %s [%s]", i.Line, i.Level, i.Message, i.Code)
}

// LintOptions controls which passes the linter runs.
type LintOptions struct {
	Strict       bool // treat warnings as errors
	CheckUnused  bool // flag defined-but-unreferenced labels
	SuggestFixes bool // append a "did you mean" suggestion to undefined-label errors
}

// DefaultLintOptions mirrors the defaults a CLI invocation with no
// flags should use.
func DefaultLintOptions() *LintOptions {
	return &LintOptions{CheckUnused: true, SuggestFixes: true}
}

// Linter analyzes source lines without producing machine code. It
// reuses package lexer and symtab directly rather than re-parsing.
type Linter struct {
	options *LintOptions
	issues  []*LintIssue
	symbols *symtab.Table
}

// NewLinter creates a linter; a nil options falls back to
// DefaultLintOptions.
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{options: options, symbols: symtab.New()}
}

// Lint analyzes an ordered list of source lines and returns every
// finding, sorted by line number. It performs its own lightweight
// label pass rather than calling assembler.Assemble, so it can surface
// style findings (unused labels) the assembler itself has no reason to
// report. Directive lines are not checked.
func (l *Linter) Lint(lines []string) []*LintIssue {
	l.issues = nil
	l.symbols = symtab.New()

	var pc uint32
	var tokenized []*lexer.Line

	for i, raw := range lines {
		lineNo := i + 1
		tl := lexer.Tokenize(raw, lineNo)
		tokenized = append(tokenized, tl)
		if tl.Blank || tl.Directive != "" {
			continue
		}
		if tl.Label != "" {
			if !l.symbols.Define(tl.Label, pc, lineNo) {
				l.issues = append(l.issues, &LintIssue{
					Level: LintWarning, Line: lineNo,
					Message: fmt.Sprintf("duplicate label %q", tl.Label),
					Code:    "DUPLICATE_LABEL",
				})
			}
		}
		if tl.Mnemonic == "" {
			continue
		}
		n := 1
		if pseudo.Known(tl.Mnemonic) {
			n, _ = pseudo.ExpansionLength(tl.Mnemonic, tl.Operands)
		}
		pc += 4 * uint32(n)
	}

	l.checkUndefinedLabels(tokenized)
	if l.options.CheckUnused {
		l.checkUnusedLabels()
	}
	l.checkInstructions(tokenized)

	sort.Slice(l.issues, func(i, j int) bool { return l.issues[i].Line < l.issues[j].Line })
	return l.issues
}

// checkUndefinedLabels flags every branch/jump/hi-lo operand naming a
// label this source never defines.
func (l *Linter) checkUndefinedLabels(lines []*lexer.Line) {
	for _, tl := range lines {
		if tl.Blank || tl.Directive != "" || tl.Mnemonic == "" {
			continue
		}
		for _, label := range labelOperands(tl.Mnemonic, tl.Operands) {
			if sym, ok := l.symbols.Lookup(label); !ok || !sym.Defined {
				msg := fmt.Sprintf("undefined label %q", label)
				if l.options.SuggestFixes {
					if guess := l.findSimilarLabel(label); guess != "" {
						msg += fmt.Sprintf(" (did you mean %q?)", guess)
					}
				}
				l.issues = append(l.issues, &LintIssue{
					Level: LintError, Line: tl.LineNo, Message: msg, Code: "UNDEF_LABEL",
				})
			}
			l.symbols.Reference(label, tl.LineNo)
		}
	}
}

// checkUnusedLabels warns about labels defined but never referenced,
// skipping conventional entry points.
func (l *Linter) checkUnusedLabels() {
	for _, sym := range l.symbols.Unreferenced() {
		if isSpecialLabel(sym.Name) {
			continue
		}
		l.issues = append(l.issues, &LintIssue{
			Level:   LintWarning,
			Line:    sym.DefLine,
			Message: fmt.Sprintf("label %q defined but never referenced", sym.Name),
			Code:    "UNUSED_LABEL",
		})
	}
}

// checkInstructions flags mnemonics the ISA/pseudo tables don't know.
// Operand counts are not checked here; only a full assemble reports
// them.
func (l *Linter) checkInstructions(lines []*lexer.Line) {
	for _, tl := range lines {
		if tl.Blank || tl.Directive != "" || tl.Mnemonic == "" {
			continue
		}
		if !isa.Known(tl.Mnemonic) && !pseudo.Known(tl.Mnemonic) {
			l.issues = append(l.issues, &LintIssue{
				Level:   LintError,
				Line:    tl.LineNo,
				Message: fmt.Sprintf("unknown instruction %q", tl.Mnemonic),
				Code:    "UNKNOWN_INSTRUCTION",
			})
		}
	}
}

// labelOperands returns the operands of mnemonic that name a label,
// per the same convention encoder and assembler use: the last operand
// of a branch/jump, or a %hi20/%lo12-wrapped operand anywhere. A pseudo
// is expanded first and its base instructions are scanned instead.
func labelOperands(mnemonic string, operands []string) []string {
	var out []string
	if pseudo.Known(mnemonic) {
		instrs, err := pseudo.Expand(mnemonic, operands)
		if err != nil {
			return nil
		}
		for _, instr := range instrs {
			out = append(out, labelOperands(instr.Mnemonic, instr.Operands)...)
		}
		return out
	}
	format, err := isa.FormatOf(mnemonic)
	if err == nil {
		switch format {
		case isa.FormatB:
			if len(operands) == 3 {
				out = append(out, operands[2])
			}
			return out
		case isa.FormatJ:
			if len(operands) > 0 {
				out = append(out, operands[len(operands)-1])
			}
			return out
		}
	}
	for _, op := range operands {
		for _, prefix := range []string{"%hi20(", "%lo12("} {
			if strings.HasPrefix(op, prefix) {
				if end := strings.IndexByte(op, ')'); end > len(prefix) {
					out = append(out, op[len(prefix):end])
				}
			}
		}
	}
	return out
}

func (l *Linter) findSimilarLabel(target string) string {
	target = strings.ToLower(target)
	best, bestDist := "", 999
	for _, sym := range l.symbols.All() {
		if !sym.Defined {
			continue
		}
		dist := levenshteinDistance(strings.ToLower(sym.Name), target)
		if dist < bestDist && dist <= 3 {
			best, bestDist = sym.Name, dist
		}
	}
	return best
}

func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}
	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}
	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = minOf(matrix[i-1][j]+1, matrix[i][j-1]+1, matrix[i-1][j-1]+cost)
		}
	}
	return matrix[len(s1)][len(s2)]
}

func minOf(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func isSpecialLabel(label string) bool {
	for _, s := range []string{"_start", "main", "__start", "start"} {
		if strings.EqualFold(label, s) {
			return true
		}
	}
	return false
}
