package tools

import (
	"strings"

	"github.com/lookbusy1344/rv32i-asm/lexer"
)

// FormatStyle selects a canonical column layout.
type FormatStyle int

const (
	FormatDefault FormatStyle = iota
	FormatCompact
)

// FormatOptions controls the formatter's column layout.
type FormatOptions struct {
	Style             FormatStyle
	InstructionColumn int
	OperandColumn     int
	CommentColumn     int
	AlignOperands     bool
	AlignComments     bool
}

// DefaultFormatOptions is the standard column layout.
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:             FormatDefault,
		InstructionColumn: 8,
		OperandColumn:     16,
		CommentColumn:     40,
		AlignOperands:     true,
		AlignComments:     true,
	}
}

// CompactFormatOptions minimizes whitespace: one space between fields,
// no column alignment.
func CompactFormatOptions() *FormatOptions {
	return &FormatOptions{Style: FormatCompact}
}

// Formatter renders tokenized source lines back to canonical text.
type Formatter struct {
	options *FormatOptions
}

// NewFormatter creates a formatter; nil options falls back to
// DefaultFormatOptions.
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format re-renders each source line in canonical column layout,
// preserving blank lines and the text of every comment (re-emitted
// after a "# " marker; a comment-only line starts at column 0).
func (f *Formatter) Format(lines []string) string {
	var out strings.Builder
	for i, raw := range lines {
		tl := lexer.Tokenize(raw, i+1)
		out.WriteString(f.formatLine(tl))
		out.WriteString("\n")
	}
	return out.String()
}

func (f *Formatter) formatLine(tl *lexer.Line) string {
	if tl.Blank {
		if comment := commentOf(tl.Raw); comment != "" {
			return "# " + comment
		}
		return ""
	}

	comment := commentOf(tl.Raw)
	var line strings.Builder

	if tl.Label != "" {
		line.WriteString(tl.Label)
		line.WriteString(":")
		if f.options.Style != FormatCompact {
			f.padToColumn(&line, f.options.InstructionColumn)
		} else {
			line.WriteString(" ")
		}
	} else if f.options.Style != FormatCompact {
		f.padToColumn(&line, f.options.InstructionColumn)
	}

	name := tl.Mnemonic
	if tl.Directive != "" {
		name = tl.Directive
	}
	if name == "" {
		if comment != "" {
			line.WriteString("# ")
			line.WriteString(comment)
		}
		return line.String()
	}
	line.WriteString(name)

	if len(tl.Operands) > 0 {
		if f.options.Style == FormatCompact {
			line.WriteString(" ")
		} else if f.options.AlignOperands {
			f.padToColumn(&line, f.options.OperandColumn)
		} else {
			line.WriteString("\t")
		}
		line.WriteString(strings.Join(tl.Operands, ", "))
	}

	if comment != "" {
		if f.options.Style == FormatCompact {
			line.WriteString(" # ")
		} else if f.options.AlignComments {
			f.padToColumn(&line, f.options.CommentColumn)
			line.WriteString("# ")
		} else {
			line.WriteString("\t# ")
		}
		line.WriteString(comment)
	}

	return line.String()
}

func (f *Formatter) padToColumn(sb *strings.Builder, column int) {
	current := sb.Len()
	switch {
	case current < column:
		sb.WriteString(strings.Repeat(" ", column-current))
	case current == column:
	default:
		sb.WriteString(" ")
	}
}

// commentOf extracts the trailing "# ..." comment from a raw source
// line, if any, trimmed of its leading marker and whitespace.
func commentOf(raw string) string {
	idx := strings.IndexByte(raw, '#')
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(raw[idx+1:])
}

// FormatString is a convenience wrapper applying DefaultFormatOptions.
func FormatString(lines []string) string {
	return NewFormatter(DefaultFormatOptions()).Format(lines)
}
