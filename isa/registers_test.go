package isa

import "testing"

func TestRegisterIndexNumeric(t *testing.T) {
	cases := []struct {
		name string
		want uint32
	}{
		{"x0", 0}, {"x1", 1}, {"x31", 31}, {"X15", 15},
	}
	for _, c := range cases {
		got, err := RegisterIndex(c.name)
		if err != nil {
			t.Errorf("RegisterIndex(%q) returned error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("RegisterIndex(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestRegisterIndexABIAliases(t *testing.T) {
	cases := []struct {
		name string
		want uint32
	}{
		{"zero", 0}, {"ra", 1}, {"sp", 2}, {"gp", 3}, {"tp", 4},
		{"t0", 5}, {"t2", 7}, {"s0", 8}, {"fp", 8}, {"s1", 9},
		{"a0", 10}, {"a7", 17}, {"s2", 18}, {"s11", 27}, {"t3", 28}, {"t6", 31},
		{"A0", 10}, {"ZERO", 0},
	}
	for _, c := range cases {
		got, err := RegisterIndex(c.name)
		if err != nil {
			t.Errorf("RegisterIndex(%q) returned error: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("RegisterIndex(%q) = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestRegisterIndexInvalid(t *testing.T) {
	for _, bad := range []string{"x32", "x-1", "r0", "notareg", ""} {
		if _, err := RegisterIndex(bad); err == nil {
			t.Errorf("RegisterIndex(%q) = nil error, want an error", bad)
		}
	}
}

func TestIsRegisterName(t *testing.T) {
	if !IsRegisterName("sp") {
		t.Error("IsRegisterName(sp) = false, want true")
	}
	if !IsRegisterName("x5") {
		t.Error("IsRegisterName(x5) = false, want true")
	}
	if IsRegisterName("main") {
		t.Error("IsRegisterName(main) = true, want false")
	}
}
