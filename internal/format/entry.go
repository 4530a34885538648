package format

import (
	"fmt"

	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/pkg/types"
)

// Payload is the decoded body of an entry record. The implementations are
// closed: roots lists, keys, and values are the only decodable entry kinds.
type Payload interface{ entryPayload() }

// RootsRecord lists the top-level root key ids. Zero slots are dropped at
// decode time; the surviving ids map positionally onto the fixed root names,
// so their order must be preserved.
type RootsRecord struct {
	IDs []uint32
}

// KeyRecord is a registry key node. The link fields are entry ids into the
// shared entry table (0 = none), never ownership.
type KeyRecord struct {
	Name        string
	NextSibling uint32
	FirstChild  uint32
	FirstValue  uint32
	Flags       uint16
}

// ValueRecord is a named, typed leaf attached to a key. Next links sibling
// values into a singly linked list (0 = end).
type ValueRecord struct {
	Name  string
	Value types.Value
	Next  uint32
}

func (RootsRecord) entryPayload() {}
func (KeyRecord) entryPayload()   {}
func (ValueRecord) entryPayload() {}

// RawEntry is one decoded entry record, keyed by its file-assigned id.
type RawEntry struct {
	ID      uint32
	Type    EntryType
	Payload Payload
}

// DecodeEntry reads the length-prefixed entry record at DataBase+entryOffset:
// a u32 size/type word (type tag in the top 4 bits, payload length in the low
// 28), a reserved u32, the u32 entry id, and the payload itself.
func DecodeEntry(c *buf.Cursor, entryOffset uint32) (RawEntry, error) {
	if err := c.Seek(DataBase + int(entryOffset)); err != nil {
		return RawEntry{}, fmt.Errorf("format: entry at 0x%X: %w", entryOffset, err)
	}
	word, err := c.ReadU32()
	if err != nil {
		return RawEntry{}, err
	}
	typ := EntryType(word >> EntryTypeShift)
	size := word & EntrySizeMask
	if err := c.Skip(4); err != nil { // reserved, observed zero
		return RawEntry{}, err
	}
	id, err := c.ReadU32()
	if err != nil {
		return RawEntry{}, err
	}
	raw, err := c.ReadN(int(size))
	if err != nil {
		return RawEntry{}, fmt.Errorf("format: entry %d payload: %w", id, err)
	}

	p := buf.NewCursor(raw)
	var payload Payload
	switch typ {
	case ETRoots:
		payload, err = decodeRoots(p)
	case ETKey:
		payload, err = decodeKey(p)
	case ETValue:
		payload, err = decodeValue(p)
	case ETDatabase, ETRecord, ETRecMore, ETVolume, ETIndex:
		return RawEntry{}, fmt.Errorf("format: entry %d: no decoder for %s: %w",
			id, typ, types.ErrNotImplemented)
	default:
		return RawEntry{}, fmt.Errorf("format: entry %d: type tag 0x%X: %w",
			id, uint8(typ), types.ErrUnknownEntryType)
	}
	if err != nil {
		return RawEntry{}, fmt.Errorf("format: entry %d (%s): %w", id, typ, err)
	}
	return RawEntry{ID: id, Type: typ, Payload: payload}, nil
}

// decodeRoots reads the fixed 8 root-id slots, dropping zeros.
func decodeRoots(c *buf.Cursor) (Payload, error) {
	ids := make([]uint32, 0, RootsSlots)
	for i := 0; i < RootsSlots; i++ {
		id, err := c.ReadU32()
		if err != nil {
			return nil, err
		}
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return RootsRecord{IDs: ids}, nil
}

// decodeKey reads a key record: three u32 links, a u8 name length in UTF-16
// code units, u16 flags, one reserved byte, then the UTF-16LE name.
func decodeKey(c *buf.Cursor) (Payload, error) {
	k := KeyRecord{}
	var err error
	if k.NextSibling, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if k.FirstChild, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if k.FirstValue, err = c.ReadU32(); err != nil {
		return nil, err
	}
	nameLen, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	if k.Flags, err = c.ReadU16(); err != nil {
		return nil, err
	}
	if err = c.Skip(1); err != nil { // reserved
		return nil, err
	}
	nameRaw, err := c.ReadN(int(nameLen) * 2)
	if err != nil {
		return nil, err
	}
	k.Name = DecodeUTF16LE(nameRaw)
	return k, nil
}
