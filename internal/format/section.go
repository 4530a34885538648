package format

import (
	"fmt"

	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/pkg/types"
)

// ReadDirectory reads the section directory at SectionDirOffset. The first
// offset is always kept, even when it is zero; any later zero terminates the
// list and is discarded. This first-always / rest-until-zero asymmetry is
// part of the format.
func ReadDirectory(c *buf.Cursor) ([]uint32, error) {
	if err := c.Seek(SectionDirOffset); err != nil {
		return nil, err
	}
	first, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	offsets := []uint32{first}
	for {
		off, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		if off == 0 {
			return offsets, nil
		}
		offsets = append(offsets, off)
	}
}

// Slot is one u32 entry-table header word from a section: an entry offset in
// the upper bits and two status bits in the lower.
type Slot uint32

// Offset returns the entry byte offset relative to DataBase.
func (s Slot) Offset() uint32 { return uint32(s) & SlotOffsetMask }

// Flags returns the two status bits.
func (s Slot) Flags() uint8 { return uint8(s) & SlotFlagsMask }

// Live reports whether the slot references an allocated entry. Dead and free
// slots are expected and common; callers skip them silently.
func (s Slot) Live() bool { return s.Flags() == SlotFlagLive }

// ReadSection seeks to the section header at DataBase+sectionOffset,
// validates the section magic, and returns the fixed array of slot words.
// Slots are returned unfiltered; the caller decides on liveness.
func ReadSection(c *buf.Cursor, sectionOffset uint32) ([]Slot, error) {
	if err := c.Seek(DataBase + int(sectionOffset)); err != nil {
		return nil, fmt.Errorf("format: section at 0x%X: %w", sectionOffset, err)
	}
	magic, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	if magic != SectionMagic {
		return nil, fmt.Errorf("format: section at 0x%X: magic 0x%08X, want 0x%08X: %w",
			sectionOffset, magic, uint32(SectionMagic), types.ErrBadMagic)
	}
	if err := c.Skip(8); err != nil { // two reserved u32
		return nil, err
	}
	slots := make([]Slot, SectionSlots)
	for i := range slots {
		w, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		slots[i] = Slot(w)
	}
	return slots, nil
}
