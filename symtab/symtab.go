// Package symtab implements the assembler's symbol table: a mapping
// from label identifier to byte address. Pass one records every
// definition; pass two resolves addresses and records reference sites.
package symtab

import "fmt"

// Symbol is a single label binding plus the line numbers of every
// place it was referenced, so diagnostics can point at both the
// offending use and (when helpful) the definition.
type Symbol struct {
	Name       string
	Address    uint32
	Defined    bool
	DefLine    int
	References []int
}

// Table is the symbol table for one assembly unit. Labels are
// case-sensitive and unique; a duplicate definition is a hard error
// reported by the caller, and the first binding wins.
type Table struct {
	symbols map[string]*Symbol
	// order preserves definition order for deterministic reporting
	// (e.g. cross-reference dumps), independent of Go's map iteration.
	order []string
}

// New creates an empty symbol table.
func New() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// Define records a label's address at the given source line. If the
// label is already defined, Define returns false and leaves the first
// binding untouched — the caller reports a duplicate-label diagnostic.
func (t *Table) Define(name string, address uint32, line int) bool {
	if sym, exists := t.symbols[name]; exists && sym.Defined {
		return false
	}
	if sym, exists := t.symbols[name]; exists {
		// Was referenced before being defined; fill in now.
		sym.Address = address
		sym.Defined = true
		sym.DefLine = line
		return true
	}
	t.symbols[name] = &Symbol{Name: name, Address: address, Defined: true, DefLine: line}
	t.order = append(t.order, name)
	return true
}

// Reference records that name was used at the given source line,
// creating a forward-reference placeholder if it hasn't been seen yet.
func (t *Table) Reference(name string, line int) {
	sym, exists := t.symbols[name]
	if !exists {
		sym = &Symbol{Name: name}
		t.symbols[name] = sym
		t.order = append(t.order, name)
	}
	sym.References = append(sym.References, line)
}

// Lookup returns a symbol and whether it exists at all (defined or
// only referenced).
func (t *Table) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Address returns a defined symbol's address, or an error naming the
// symbol if it is undefined.
func (t *Table) Address(name string) (uint32, error) {
	sym, exists := t.symbols[name]
	if !exists || !sym.Defined {
		return 0, fmt.Errorf("undefined label: %q", name)
	}
	return sym.Address, nil
}

// All returns every symbol in definition/reference order.
func (t *Table) All() []*Symbol {
	out := make([]*Symbol, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.symbols[name])
	}
	return out
}

// Undefined returns every symbol that was referenced but never defined.
func (t *Table) Undefined() []*Symbol {
	var out []*Symbol
	for _, name := range t.order {
		sym := t.symbols[name]
		if !sym.Defined {
			out = append(out, sym)
		}
	}
	return out
}

// Unreferenced returns every defined symbol with no recorded reference
// — advisory only (mirrors the teacher's GetUnusedSymbols), used by the
// linter to emit an unused-label warning.
func (t *Table) Unreferenced() []*Symbol {
	var out []*Symbol
	for _, name := range t.order {
		sym := t.symbols[name]
		if sym.Defined && len(sym.References) == 0 {
			out = append(out, sym)
		}
	}
	return out
}
