package buf

import "testing"

func TestU16LE(t *testing.T) {
	if got := U16LE([]byte{0x34, 0x12}); got != 0x1234 {
		t.Errorf("U16LE = 0x%04X", got)
	}
	if got := U16LE([]byte{0x34}); got != 0 {
		t.Errorf("U16LE short = 0x%04X, want 0", got)
	}
}

func TestU32LE(t *testing.T) {
	if got := U32LE([]byte{0x78, 0x56, 0x34, 0x12}); got != 0x12345678 {
		t.Errorf("U32LE = 0x%08X", got)
	}
	if got := U32LE([]byte{0x78, 0x56, 0x34}); got != 0 {
		t.Errorf("U32LE short = 0x%08X, want 0", got)
	}
}
