package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseImmediate parses a decimal, "0x..." hex, or "0b..." binary
// literal, optionally signed, as described by the grammar in spec §6.
// The result is returned as a signed 64-bit value so callers can range-
// check it against whatever field width they're encoding into without
// losing the sign.
func ParseImmediate(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty immediate")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}

	var (
		value uint64
		err   error
	)
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		value, err = strconv.ParseUint(s[2:], 16, 64)
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		value, err = strconv.ParseUint(s[2:], 2, 64)
	default:
		value, err = strconv.ParseUint(s, 10, 64)
	}
	if err != nil {
		return 0, fmt.Errorf("invalid immediate value: %q", s)
	}

	result := int64(value)
	if negative {
		result = -result
	}
	return result, nil
}

// MemoryOperand splits a load/store operand of the form "imm(reg)"
// into its immediate and register parts. Both parts are required;
// a missing or malformed parenthesis is reported as an error naming
// the offending operand. The split point is the LAST '(' in the
// string, not the first: the immediate half may itself be a
// "%hi20(label)"/"%lo12(label)" synthetic operand (as produced by the
// call/la pseudo expansions), which carries its own parentheses.
func MemoryOperand(operand string) (imm string, reg string, err error) {
	s := strings.TrimSpace(operand)
	open := strings.LastIndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return "", "", fmt.Errorf("malformed memory operand (expected imm(reg)): %q", operand)
	}
	imm = strings.TrimSpace(s[:open])
	reg = strings.TrimSpace(s[open+1 : len(s)-1])
	if imm == "" {
		imm = "0"
	}
	if reg == "" {
		return "", "", fmt.Errorf("malformed memory operand, missing register: %q", operand)
	}
	return imm, reg, nil
}
