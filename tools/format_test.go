package tools

import (
	"strings"
	"testing"
)

func TestFormatBasicLine(t *testing.T) {
	out := NewFormatter(DefaultFormatOptions()).Format([]string{"addi x1,x0,1"})
	if !strings.Contains(out, "addi") || !strings.Contains(out, "x1, x0, 1") {
		t.Errorf("formatted output missing expected tokens: %q", out)
	}
}

func TestFormatPreservesLabel(t *testing.T) {
	out := NewFormatter(DefaultFormatOptions()).Format([]string{"main: addi x0, x0, 0"})
	if !strings.HasPrefix(out, "main:") {
		t.Errorf("expected output to start with the label, got %q", out)
	}
}

func TestFormatPreservesBlankLines(t *testing.T) {
	out := NewFormatter(DefaultFormatOptions()).Format([]string{"addi x1,x0,1", "", "add x2,x0,x1"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 || lines[1] != "" {
		t.Errorf("expected a preserved blank middle line, got %v", lines)
	}
}

func TestFormatCommentRoundTrips(t *testing.T) {
	out := NewFormatter(DefaultFormatOptions()).Format([]string{"addi x1, x0, 1 # set one"})
	if !strings.Contains(out, "# set one") {
		t.Errorf("expected a '#'-marked comment in formatted output, got %q", out)
	}
}

func TestFormatCompactStyle(t *testing.T) {
	out := NewFormatter(CompactFormatOptions()).Format([]string{"main:   addi   x1,   x0,  1"})
	want := "main: addi x1, x0, 1\n"
	if out != want {
		t.Errorf("compact format = %q, want %q", out, want)
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	source := []string{
		"# header comment",
		"main: addi x1, x0, 1 # load one",
		"loop: beq x1, x0, main",
		"",
		"ret",
	}
	formatter := NewFormatter(DefaultFormatOptions())
	once := formatter.Format(source)
	twice := formatter.Format(strings.Split(strings.TrimRight(once, "\n"), "\n"))
	if once != twice {
		t.Errorf("formatting is not idempotent:\nfirst:\n%q\nsecond:\n%q", once, twice)
	}
}

func TestFormatStringConvenienceWrapper(t *testing.T) {
	if FormatString([]string{"addi x1,x0,1"}) != NewFormatter(DefaultFormatOptions()).Format([]string{"addi x1,x0,1"}) {
		t.Error("FormatString should match NewFormatter(DefaultFormatOptions()).Format")
	}
}
