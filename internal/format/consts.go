// Package format houses the low-level decoders for the Windows CE hive file
// format. The goal is to keep the parsing focused, allocation-light, and
// independent from the public API so higher-level packages can orchestrate
// the data in a more ergonomic form.
package format

const (
	// HeaderSize is the size of the fixed file header in bytes.
	HeaderSize = 0x400

	// HiveMagic is the little-endian encoding of the ASCII signature "EKIM".
	HiveMagic = 0x4D494B45

	// SectionDirOffset is the absolute file offset of the section directory:
	// a sequence of u32 section offsets, first always kept, terminated by the
	// first zero after it.
	SectionDirOffset = 0x1000

	// DataBase is the absolute file offset that all section and entry offsets
	// are relative to.
	DataBase = 0x5000

	// SectionMagic is the u32 signature at the start of every section header.
	SectionMagic = 0x20001004

	// SectionSlots is the fixed number of entry-table headers per section.
	SectionSlots = 0x400

	// Slot header layout: entry offset in bits 2..27, status in the low two.
	SlotOffsetMask = 0x0FFFFFFC
	SlotFlagsMask  = 0b11
	SlotFlagLive   = 0b01

	// Entry size/type word: type tag in the top 4 bits, payload byte length
	// in the low 28.
	EntryTypeShift = 28
	EntrySizeMask  = 0x0FFFFFFF

	// RootsSlots is the fixed slot count of an ET_ROOTS payload.
	RootsSlots = 8

	// ChecksumSize is the byte length of the header MD5 fields.
	ChecksumSize = 16
)

// Reserved header regions consumed (but not interpreted) by ParseHeader.
const (
	headerReservedMid  = 172
	headerReservedTail = 24
)
