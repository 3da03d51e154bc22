package encoder

import "testing"

func TestEncodeSysEcall(t *testing.T) {
	enc := newTestEncoder()
	word, err := enc.Encode("ecall", nil, 0, 0)
	if err != nil {
		t.Fatalf("Encode(ecall): %v", err)
	}
	if word != wordECALL {
		t.Errorf("Encode(ecall) = 0x%08X, want 0x%08X", word, wordECALL)
	}
}

func TestEncodeSysEbreak(t *testing.T) {
	enc := newTestEncoder()
	word, err := enc.Encode("ebreak", nil, 0, 0)
	if err != nil {
		t.Fatalf("Encode(ebreak): %v", err)
	}
	if word != wordEBREAK {
		t.Errorf("Encode(ebreak) = 0x%08X, want 0x%08X", word, wordEBREAK)
	}
}

func TestEncodeSysFence(t *testing.T) {
	enc := newTestEncoder()
	word, err := enc.Encode("fence", []string{"rw", "rw"}, 0, 0)
	if err != nil {
		t.Fatalf("Encode(fence): %v", err)
	}
	if word != wordFENCE {
		t.Errorf("Encode(fence) = 0x%08X, want 0x%08X", word, wordFENCE)
	}
	if word == wordECALL {
		t.Error("fence must not collide with ecall's opcode/word")
	}
}

func TestEncodeSysEcallArityError(t *testing.T) {
	enc := newTestEncoder()
	if _, err := enc.Encode("ecall", []string{"x1"}, 0, 0); err == nil {
		t.Error("ecall with an operand should error")
	}
}
