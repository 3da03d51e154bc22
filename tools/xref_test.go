package tools

import (
	"strings"
	"testing"

	"github.com/lookbusy1344/rv32i-asm/symtab"
)

func TestXRefReportsDefinitionAndReferences(t *testing.T) {
	lines := []string{
		"main: addi x1, x0, 1",
		"beq x1, x0, main",
		"beq x1, x0, main",
	}
	table := symtab.New()
	table.Define("main", 0, 1)
	table.Reference("main", 2)
	table.Reference("main", 3)

	report := NewXRefReport(lines, table).String()
	if !strings.Contains(report, "main") {
		t.Fatalf("report missing symbol name: %q", report)
	}
	if !strings.Contains(report, "line 1") {
		t.Errorf("report missing definition line, got %q", report)
	}
	if !strings.Contains(report, "2 time(s)") {
		t.Errorf("report missing reference count, got %q", report)
	}
	if !strings.Contains(report, "line 2 (branch)") || !strings.Contains(report, "line 3 (branch)") {
		t.Errorf("report should classify beq references as branch, got %q", report)
	}
}

func TestXRefClassifiesCallAsFunction(t *testing.T) {
	lines := []string{
		"call helper",
		"helper: ret",
	}
	table := symtab.New()
	table.Reference("helper", 1)
	table.Define("helper", 4, 2)

	report := NewXRefReport(lines, table).String()
	if !strings.Contains(report, "line 1 (call)") {
		t.Errorf("expected the call pseudo's reference to be classified as call, got %q", report)
	}
	if !strings.Contains(report, "[function]") {
		t.Errorf("a symbol with a call reference should be marked [function], got %q", report)
	}
}

func TestXRefClassifiesLaAsData(t *testing.T) {
	lines := []string{
		"la x5, buf",
		"buf:",
	}
	table := symtab.New()
	table.Reference("buf", 1)
	table.Define("buf", 4, 2)

	report := NewXRefReport(lines, table).String()
	if !strings.Contains(report, "line 1 (data)") {
		t.Errorf("expected la's reference to be classified as data, got %q", report)
	}
	if strings.Contains(report, "[function]") {
		t.Errorf("a data-only reference should not mark the symbol [function], got %q", report)
	}
}

func TestXRefFlagsUndefinedSymbol(t *testing.T) {
	lines := []string{"beq x1, x0, ghost"}
	table := symtab.New()
	table.Reference("ghost", 1)

	report := NewXRefReport(lines, table).String()
	if !strings.Contains(report, "[undefined]") {
		t.Errorf("expected an [undefined] marker, got %q", report)
	}
	if !strings.Contains(report, "Undefined:     1") {
		t.Errorf("expected undefined count of 1, got %q", report)
	}
}

func TestXRefFlagsUnusedSymbolAsInformational(t *testing.T) {
	lines := []string{"unused: addi x0, x0, 0"}
	table := symtab.New()
	table.Define("unused", 0, 1)

	report := NewXRefReport(lines, table).String()
	if !strings.Contains(report, "(never)") {
		t.Errorf("expected a never-referenced marker, got %q", report)
	}
	if !strings.Contains(report, "Unused:        1") {
		t.Errorf("expected unused count of 1, got %q", report)
	}
}

func TestGenerateXRefMatchesNewXRefReport(t *testing.T) {
	lines := []string{"a: addi x0, x0, 0"}
	table := symtab.New()
	table.Define("a", 0, 1)
	if GenerateXRef(lines, table) != NewXRefReport(lines, table).String() {
		t.Error("GenerateXRef should match NewXRefReport(lines, table).String()")
	}
}
