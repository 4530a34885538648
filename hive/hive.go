package hive

import (
	"errors"
	"os"

	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/internal/format"
	"github.com/joshuapare/cehive/internal/reader"
	"github.com/joshuapare/cehive/pkg/types"
)

// Hive is an opened hive file, backed by mmap (unix/darwin) or a plain
// in-memory read (others). The mapping is read-only; this format is decoded,
// never written.
type Hive struct {
	f    *os.File
	data []byte
	size int64
}

// Bytes returns the raw file contents.
func (h *Hive) Bytes() []byte { return h.data }

// Size returns the file size in bytes.
func (h *Hive) Size() int64 { return h.size }

// FlatMap decodes the hive into its flat path → value form.
func (h *Hive) FlatMap() (types.FlatRegistry, error) {
	if h == nil || h.data == nil {
		return nil, errors.New("hive: uninitialized data")
	}
	return Decode(h.data)
}

// Info parses the header and reports its informational fields.
func (h *Hive) Info() (Info, error) {
	if h == nil || h.data == nil {
		return Info{}, errors.New("hive: uninitialized data")
	}
	return Stat(h.data)
}

// Decode runs the full decode pipeline over in-memory hive contents and
// returns the flat registry. On any structural error the whole decode fails;
// the error wraps one of the pkg/types sentinels.
func Decode(data []byte) (types.FlatRegistry, error) {
	table, err := reader.BuildTable(data)
	if err != nil {
		return nil, err
	}
	return reader.Flatten(table)
}

// Info holds the informational header fields. Beyond the magic, none of
// these are validated during decoding; they are surfaced for inspection.
type Info struct {
	HeaderSize      uint32   `json:"header_size"`
	FileSize        uint32   `json:"file_size"`
	FileType        uint32   `json:"file_type"`
	BaseAddr        uint32   `json:"base_addr"`
	RecoveryLogSize uint32   `json:"recovery_log_size"`
	RegHive         bool     `json:"reg_hive"`
	DBVolume        bool     `json:"db_volume"`
	FileChecksum    [16]byte `json:"-"`
	BootChecksum    [16]byte `json:"-"`
}

// Stat validates the header magic and reports the header fields without
// decoding the rest of the file.
func Stat(data []byte) (Info, error) {
	hdr, err := format.ParseHeader(buf.NewCursor(data))
	if err != nil {
		return Info{}, err
	}
	return Info{
		HeaderSize:      hdr.HeaderSize,
		FileSize:        hdr.FileSize,
		FileType:        hdr.FileType,
		BaseAddr:        hdr.BaseAddr,
		RecoveryLogSize: hdr.RecoveryLogSize,
		RegHive:         hdr.IsRegHive(),
		DBVolume:        hdr.IsDBVolume(),
		FileChecksum:    hdr.FileChecksum,
		BootChecksum:    hdr.BootChecksum,
	}, nil
}
