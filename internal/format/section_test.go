package format

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/pkg/types"
)

func dirBuffer(offsets ...uint32) *buf.Cursor {
	b := make([]byte, SectionDirOffset+4*len(offsets))
	for i, off := range offsets {
		binary.LittleEndian.PutUint32(b[SectionDirOffset+4*i:], off)
	}
	return buf.NewCursor(b)
}

func TestReadDirectoryFirstAlwaysKept(t *testing.T) {
	// First value is data even when it looks like a terminator elsewhere.
	got, err := ReadDirectory(dirBuffer(5, 0))
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("ReadDirectory(5,0) = %v, want [5]", got)
	}

	got, err = ReadDirectory(dirBuffer(0, 7, 0))
	if err != nil {
		t.Fatalf("ReadDirectory: %v", err)
	}
	if len(got) != 2 || got[0] != 0 || got[1] != 7 {
		t.Fatalf("ReadDirectory(0,7,0) = %v, want [0 7]", got)
	}
}

func TestReadDirectoryUnterminated(t *testing.T) {
	// No zero sentinel before the buffer ends.
	_, err := ReadDirectory(dirBuffer(1, 2, 3))
	if !errors.Is(err, types.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestSlotBits(t *testing.T) {
	s := Slot(0x2000 | 0b01)
	if !s.Live() {
		t.Error("flags 0b01 must be live")
	}
	if s.Offset() != 0x2000 {
		t.Errorf("Offset = 0x%X", s.Offset())
	}
	for _, flags := range []uint32{0b00, 0b10, 0b11} {
		if Slot(0x2000 | flags).Live() {
			t.Errorf("flags 0b%02b must not be live", flags)
		}
	}
	// The top nibble is not part of the offset.
	if got := Slot(0xF0002004).Offset(); got != 0x2004 {
		t.Errorf("masked Offset = 0x%X, want 0x2004", got)
	}
}

func TestReadSection(t *testing.T) {
	b := make([]byte, DataBase+12+4*SectionSlots)
	binary.LittleEndian.PutUint32(b[DataBase:], SectionMagic)
	binary.LittleEndian.PutUint32(b[DataBase+12:], 0x2000|0b01)
	binary.LittleEndian.PutUint32(b[DataBase+16:], 0x3000|0b10)

	slots, err := ReadSection(buf.NewCursor(b), 0)
	if err != nil {
		t.Fatalf("ReadSection: %v", err)
	}
	if len(slots) != SectionSlots {
		t.Fatalf("got %d slots, want %d", len(slots), SectionSlots)
	}
	if !slots[0].Live() || slots[0].Offset() != 0x2000 {
		t.Errorf("slot 0 = %08X", uint32(slots[0]))
	}
	if slots[1].Live() {
		t.Error("slot 1 with flags 0b10 must not be live")
	}
	if slots[2].Live() {
		t.Error("empty slot must not be live")
	}
}

func TestReadSectionBadMagic(t *testing.T) {
	b := make([]byte, DataBase+12+4*SectionSlots)
	binary.LittleEndian.PutUint32(b[DataBase:], 0xDEADBEEF)

	_, err := ReadSection(buf.NewCursor(b), 0)
	if !errors.Is(err, types.ErrBadMagic) {
		t.Fatalf("expected ErrBadMagic, got %v", err)
	}
}
