package lexer

import "testing"

func TestParseImmediateDecimal(t *testing.T) {
	cases := map[string]int64{
		"0": 0, "42": 42, "-42": -42, "+7": 7, "2047": 2047, "-2048": -2048,
	}
	for in, want := range cases {
		got, err := ParseImmediate(in)
		if err != nil {
			t.Errorf("ParseImmediate(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseImmediate(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseImmediateHexAndBinary(t *testing.T) {
	cases := map[string]int64{
		"0x10": 16, "0xFF": 255, "-0x10": -16, "0b1010": 10, "-0b1": -1,
	}
	for in, want := range cases {
		got, err := ParseImmediate(in)
		if err != nil {
			t.Errorf("ParseImmediate(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseImmediate(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseImmediateInvalid(t *testing.T) {
	for _, bad := range []string{"", "abc", "0xZZ", "1.5"} {
		if _, err := ParseImmediate(bad); err == nil {
			t.Errorf("ParseImmediate(%q) = nil error, want an error", bad)
		}
	}
}

func TestMemoryOperand(t *testing.T) {
	imm, reg, err := MemoryOperand("4(x1)")
	if err != nil {
		t.Fatalf("MemoryOperand: %v", err)
	}
	if imm != "4" || reg != "x1" {
		t.Errorf("MemoryOperand(4(x1)) = (%q, %q), want (4, x1)", imm, reg)
	}
}

func TestMemoryOperandImplicitZero(t *testing.T) {
	imm, reg, err := MemoryOperand("(sp)")
	if err != nil {
		t.Fatalf("MemoryOperand: %v", err)
	}
	if imm != "0" || reg != "sp" {
		t.Errorf("MemoryOperand((sp)) = (%q, %q), want (0, sp)", imm, reg)
	}
}

func TestMemoryOperandNestedHiLo(t *testing.T) {
	// Produced by the "call" pseudo expansion: the immediate half is
	// itself a %lo12(label) synthetic operand carrying its own parens.
	imm, reg, err := MemoryOperand("%lo12(main)(ra)")
	if err != nil {
		t.Fatalf("MemoryOperand: %v", err)
	}
	if imm != "%lo12(main)" || reg != "ra" {
		t.Errorf("MemoryOperand(%%lo12(main)(ra)) = (%q, %q), want (%%lo12(main), ra)", imm, reg)
	}
}

func TestMemoryOperandMalformed(t *testing.T) {
	for _, bad := range []string{"4x1", "4(x1", "()"} {
		imm, reg, err := MemoryOperand(bad)
		if err == nil {
			t.Errorf("MemoryOperand(%q) = (%q, %q), want an error", bad, imm, reg)
		}
	}
}
