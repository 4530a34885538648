package format

import (
	"fmt"

	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/pkg/types"
)

// Header models the fixed 0x400-byte header at the start of every CE hive.
// Only the magic is semantically validated; the remaining fields are
// informational as far as the format's practical invariants are known.
type Header struct {
	HeaderSize      uint32
	FileChecksum    [ChecksumSize]byte
	FileSize        uint32
	FileType        uint32
	BootChecksum    [ChecksumSize]byte
	BaseAddr        uint32
	RecoveryLogSize uint32
	RegHiveFlag     uint32 // 0xFFFFFFFF in observed registry hives
	DBVolFlag       uint32
}

// ParseHeader decodes the file header, advancing the cursor through all of
// its fields in on-disk order. The magic must be "EKIM"; every other field is
// consumed but not checked.
func ParseHeader(c *buf.Cursor) (Header, error) {
	if c.Len() < HeaderSize {
		return Header{}, fmt.Errorf("format: %d-byte buffer too small for %d-byte header: %w",
			c.Len(), HeaderSize, types.ErrOutOfBounds)
	}

	var h Header
	var err error
	if h.HeaderSize, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	if err = c.Skip(4); err != nil { // reserved, observed zero
		return Header{}, err
	}
	magic, err := c.ReadU32()
	if err != nil {
		return Header{}, err
	}
	fileSum, err := c.ReadN(ChecksumSize)
	if err != nil {
		return Header{}, err
	}
	copy(h.FileChecksum[:], fileSum)
	if err = c.Skip(4); err != nil { // reserved, observed zero
		return Header{}, err
	}
	if h.FileSize, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.FileType, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	bootSum, err := c.ReadN(ChecksumSize)
	if err != nil {
		return Header{}, err
	}
	copy(h.BootChecksum[:], bootSum)
	if err = c.Skip(headerReservedMid); err != nil {
		return Header{}, err
	}
	if h.BaseAddr, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.RecoveryLogSize, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.RegHiveFlag, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	if h.DBVolFlag, err = c.ReadU32(); err != nil {
		return Header{}, err
	}
	if err = c.Skip(headerReservedTail); err != nil {
		return Header{}, err
	}

	if magic != HiveMagic {
		return Header{}, fmt.Errorf("format: file magic 0x%08X, want 0x%08X (\"EKIM\"): %w",
			magic, uint32(HiveMagic), types.ErrBadMagic)
	}
	return h, nil
}

// IsRegHive reports whether the header flags mark the file as a registry hive.
func (h Header) IsRegHive() bool { return h.RegHiveFlag != 0 }

// IsDBVolume reports whether the header flags mark the file as a database volume.
func (h Header) IsDBVolume() bool { return h.DBVolFlag != 0 }
