// Package isa holds the static RV32I instruction tables: the
// mnemonic-to-format map, per-mnemonic opcode/funct3/funct7 fields,
// and the register name-to-index map. Everything here is a read-only
// lookup; no state is mutated once the package is initialized.
package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// abiAliases maps RISC-V ABI register names to their numeric index.
var abiAliases = map[string]uint32{
	"zero": 0,
	"ra":   1,
	"sp":   2,
	"gp":   3,
	"tp":   4,
	"t0":   5,
	"t1":   6,
	"t2":   7,
	"s0":   8,
	"fp":   8,
	"s1":   9,
	"a0":   10,
	"a1":   11,
	"a2":   12,
	"a3":   13,
	"a4":   14,
	"a5":   15,
	"a6":   16,
	"a7":   17,
	"s2":   18,
	"s3":   19,
	"s4":   20,
	"s5":   21,
	"s6":   22,
	"s7":   23,
	"s8":   24,
	"s9":   25,
	"s10":  26,
	"s11":  27,
	"t3":   28,
	"t4":   29,
	"t5":   30,
	"t6":   31,
}

// RegisterIndex resolves a register operand (numeric "xN" or an ABI
// alias) to its 0..31 index. The lookup is case-insensitive: both "xN"
// and "XN" are accepted, and ABI aliases are matched in any case.
func RegisterIndex(name string) (uint32, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return 0, fmt.Errorf("unknown register: empty operand")
	}

	if len(n) >= 2 && (n[0] == 'x' || n[0] == 'X') {
		num, err := strconv.ParseUint(n[1:], 10, 32)
		if err == nil {
			if num > 31 {
				return 0, fmt.Errorf("unknown register: %q (x0..x31 only)", name)
			}
			return uint32(num), nil
		}
	}

	if idx, ok := abiAliases[strings.ToLower(n)]; ok {
		return idx, nil
	}

	return 0, fmt.Errorf("unknown register: %q", name)
}

// IsRegisterName reports whether a token looks like a register operand,
// without erroring on malformed numeric indices (used by the lexer/parser
// to classify a bare identifier before full validation runs in pass two).
func IsRegisterName(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return false
	}
	if n[0] == 'x' && len(n) > 1 {
		allDigits := true
		for _, c := range n[1:] {
			if c < '0' || c > '9' {
				allDigits = false
				break
			}
		}
		if allDigits {
			return true
		}
	}
	_, ok := abiAliases[n]
	return ok
}
