package encoder

import "testing"

func TestEncodeSStoreWord(t *testing.T) {
	enc := newTestEncoder()
	word, err := enc.Encode("sw", []string{"x3", "8(x2)"}, 0, 0)
	if err != nil {
		t.Fatalf("Encode(sw): %v", err)
	}
	hi := uint32(8) >> 5 & 0x7F
	lo := uint32(8) & 0x1F
	want := hi<<25 | uint32(3)<<20 | uint32(2)<<15 | uint32(2)<<12 | lo<<7 | 0b0100011
	if word != want {
		t.Errorf("Encode(sw x3,8(x2)) = 0x%08X, want 0x%08X", word, want)
	}
}

func TestEncodeSNegativeOffset(t *testing.T) {
	enc := newTestEncoder()
	word, err := enc.Encode("sb", []string{"x1", "-4(sp)"}, 0, 0)
	if err != nil {
		t.Fatalf("Encode(sb): %v", err)
	}
	delta := int32(-4)
	u := uint32(delta)
	hi := (u >> 5) & 0x7F
	lo := u & 0x1F
	want := hi<<25 | uint32(1)<<20 | uint32(2)<<15 | uint32(0)<<12 | lo<<7 | 0b0100011
	if word != want {
		t.Errorf("Encode(sb x1,-4(sp)) = 0x%08X, want 0x%08X", word, want)
	}
}

func TestEncodeSOutOfRange(t *testing.T) {
	enc := newTestEncoder()
	if _, err := enc.Encode("sw", []string{"x1", "9000(x2)"}, 0, 0); err == nil {
		t.Error("sw with out-of-range offset should error")
	}
}
