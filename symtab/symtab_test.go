package symtab

import "testing"

func TestDefineFirstBindingWins(t *testing.T) {
	table := New()
	if !table.Define("loop", 0x10, 3) {
		t.Fatal("first Define should succeed")
	}
	if table.Define("loop", 0x20, 9) {
		t.Fatal("second Define of the same label should fail")
	}

	sym, ok := table.Lookup("loop")
	if !ok {
		t.Fatal("Lookup(loop) should find the symbol")
	}
	if sym.Address != 0x10 || sym.DefLine != 3 {
		t.Errorf("symbol = %+v, want address 0x10 defined at line 3 (first binding)", sym)
	}
}

func TestReferenceBeforeDefine(t *testing.T) {
	table := New()
	table.Reference("later", 1)
	if _, err := table.Address("later"); err == nil {
		t.Fatal("Address should error before the symbol is defined")
	}

	table.Define("later", 0x40, 5)
	addr, err := table.Address("later")
	if err != nil {
		t.Fatalf("Address after Define: %v", err)
	}
	if addr != 0x40 {
		t.Errorf("Address(later) = 0x%X, want 0x40", addr)
	}

	sym, _ := table.Lookup("later")
	if len(sym.References) != 1 || sym.References[0] != 1 {
		t.Errorf("References = %v, want [1]", sym.References)
	}
}

func TestAddressUndefined(t *testing.T) {
	table := New()
	if _, err := table.Address("ghost"); err == nil {
		t.Fatal("Address(undefined) should return an error")
	}
}

func TestUndefinedAndUnreferenced(t *testing.T) {
	table := New()
	table.Define("start", 0, 1)
	table.Reference("missing", 2)

	undef := table.Undefined()
	if len(undef) != 1 || undef[0].Name != "missing" {
		t.Errorf("Undefined() = %v, want [missing]", undef)
	}

	unref := table.Unreferenced()
	if len(unref) != 1 || unref[0].Name != "start" {
		t.Errorf("Unreferenced() = %v, want [start]", unref)
	}
}

func TestAllPreservesOrder(t *testing.T) {
	table := New()
	table.Define("b", 4, 1)
	table.Define("a", 8, 2)

	names := []string{}
	for _, sym := range table.All() {
		names = append(names, sym.Name)
	}
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Errorf("All() order = %v, want [b a] (definition order)", names)
	}
}
