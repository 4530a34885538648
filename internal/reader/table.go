// Package reader assembles decoded entries into the flat registry map. It
// owns the two passes of the pipeline: building the id-indexed entry table
// from every section, then flattening the key/value tree it describes.
package reader

import (
	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/internal/format"
)

// BuildTable decodes every live entry of every section into an id-indexed
// table. Slots whose entry offset falls outside the file are skipped along
// with dead and free slots. Duplicate ids are not rejected: the last entry
// decoded for an id wins, matching the permissiveness of known readers of
// this format.
func BuildTable(data []byte) (map[uint32]format.RawEntry, error) {
	c := buf.NewCursor(data)
	if _, err := format.ParseHeader(c); err != nil {
		return nil, err
	}
	sections, err := format.ReadDirectory(c)
	if err != nil {
		return nil, err
	}

	table := make(map[uint32]format.RawEntry)
	for _, sectionOff := range sections {
		slots, err := format.ReadSection(c, sectionOff)
		if err != nil {
			return nil, err
		}
		for _, slot := range slots {
			if !slot.Live() || int(slot.Offset()) >= len(data) {
				continue
			}
			e, err := format.DecodeEntry(c, slot.Offset())
			if err != nil {
				return nil, err
			}
			table[e.ID] = e
		}
	}
	return table, nil
}
