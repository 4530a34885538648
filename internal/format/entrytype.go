package format

import "fmt"

// EntryType is the 4-bit tag stored in the top bits of an entry record's
// size/type word. The set is closed: anything outside 0x7..0xe is rejected,
// and only ET_ROOTS, ET_KEY, and ET_VALUE have payload decoders.
type EntryType uint8

const (
	ETDatabase EntryType = 0x7
	ETRecord   EntryType = 0x8
	ETRecMore  EntryType = 0x9
	ETVolume   EntryType = 0xa
	ETRoots    EntryType = 0xb
	ETKey      EntryType = 0xc
	ETValue    EntryType = 0xd
	ETIndex    EntryType = 0xe
)

// Known reports whether t is one of the eight recognized entry kinds.
func (t EntryType) Known() bool { return t >= ETDatabase && t <= ETIndex }

// String implements the Stringer interface for EntryType.
func (t EntryType) String() string {
	switch t {
	case ETDatabase:
		return "ET_DATABASE"
	case ETRecord:
		return "ET_RECORD"
	case ETRecMore:
		return "ET_RECMORE"
	case ETVolume:
		return "ET_VOLUME"
	case ETRoots:
		return "ET_ROOTS"
	case ETKey:
		return "ET_KEY"
	case ETValue:
		return "ET_VALUE"
	case ETIndex:
		return "ET_INDEX"
	default:
		return fmt.Sprintf("ET_UNKNOWN_0x%X", uint8(t))
	}
}
