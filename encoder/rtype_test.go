package encoder

import (
	"testing"

	"github.com/lookbusy1344/rv32i-asm/symtab"
)

func newTestEncoder() *Encoder {
	return New(symtab.New())
}

func TestEncodeRAdd(t *testing.T) {
	enc := newTestEncoder()
	// add x1, x2, x3 -> funct7=0 rs2=3 rs1=2 funct3=0 rd=1 opcode=0b0110011
	word, err := enc.Encode("add", []string{"x1", "x2", "x3"}, 0, 0)
	if err != nil {
		t.Fatalf("Encode(add): %v", err)
	}
	want := uint32(3)<<20 | uint32(2)<<15 | uint32(1)<<7 | 0b0110011
	if word != want {
		t.Errorf("Encode(add x1,x2,x3) = 0x%08X, want 0x%08X", word, want)
	}
}

func TestEncodeRSub(t *testing.T) {
	enc := newTestEncoder()
	word, err := enc.Encode("sub", []string{"x1", "x2", "x3"}, 0, 0)
	if err != nil {
		t.Fatalf("Encode(sub): %v", err)
	}
	want := uint32(0x20)<<25 | uint32(3)<<20 | uint32(2)<<15 | uint32(1)<<7 | 0b0110011
	if word != want {
		t.Errorf("Encode(sub x1,x2,x3) = 0x%08X, want 0x%08X", word, want)
	}
}

func TestEncodeRArityError(t *testing.T) {
	enc := newTestEncoder()
	if _, err := enc.Encode("add", []string{"x1", "x2"}, 0, 0); err == nil {
		t.Error("add with 2 operands should error")
	}
}

func TestEncodeRUnknownRegister(t *testing.T) {
	enc := newTestEncoder()
	if _, err := enc.Encode("add", []string{"x1", "x2", "notareg"}, 0, 0); err == nil {
		t.Error("add with an invalid register should error")
	}
}
