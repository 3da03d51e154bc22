package encoder

import "testing"

func TestEncodeUnknownMnemonic(t *testing.T) {
	enc := newTestEncoder()
	if _, err := enc.Encode("frobnicate", []string{"x1"}, 0, 0); err == nil {
		t.Error("unknown mnemonic should error")
	}
}

func TestHiLoRelocationRoundTrip(t *testing.T) {
	// call target -> auipc ra,%hi20(target) ; jalr ra,%lo12(target)(ra)
	// both instructions share anchor = address of the auipc.
	enc := newTestEncoder()
	enc.symbols.Define("target", 0x12345678, 1)

	hiWord, err := enc.Encode("auipc", []string{"ra", "%hi20(target)"}, 0x1000, 0x1000)
	if err != nil {
		t.Fatalf("Encode(auipc %%hi20): %v", err)
	}
	loWord, err := enc.Encode("jalr", []string{"ra", "%lo12(target)(ra)"}, 0x1004, 0x1000)
	if err != nil {
		t.Fatalf("Encode(jalr %%lo12): %v", err)
	}

	hi20 := (hiWord >> 12) & 0xFFFFF
	lo12 := int32(loWord) >> 20

	offset := int32(0x12345678) - int32(0x1000)
	wantHi20 := uint32((int64(offset)+0x800)>>12) & 0xFFFFF
	wantLo12 := int32(int64(offset) - (int64(wantHi20) << 12))

	if hi20 != wantHi20 {
		t.Errorf("hi20 = 0x%X, want 0x%X", hi20, wantHi20)
	}
	if lo12 != wantLo12 {
		t.Errorf("lo12 = %d, want %d", lo12, wantLo12)
	}

	// Reassembling hi20<<12 + lo12 must recover the PC-relative offset
	// exactly, proving the split is lossless regardless of sign.
	recombined := int32(wantHi20<<12) + wantLo12
	if recombined != offset {
		t.Errorf("hi20/lo12 split is lossy: recombined=%d, want %d", recombined, offset)
	}
}

func TestHiLoRelocationUndefinedLabel(t *testing.T) {
	enc := newTestEncoder()
	if _, err := enc.Encode("auipc", []string{"ra", "%hi20(nowhere)"}, 0, 0); err == nil {
		t.Error("%hi20 of an undefined label should error")
	}
}
