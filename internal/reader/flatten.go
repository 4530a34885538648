package reader

import (
	"fmt"

	"github.com/joshuapare/cehive/internal/format"
	"github.com/joshuapare/cehive/pkg/types"
)

// rootNames maps surviving roots-list positions onto the fixed top-level key
// names. The order is load-bearing: slot index, not id, selects the name.
var rootNames = [...]string{"HKCR", "HKCU", "HKLM", "HKU"}

// Flatten resolves every ET_ROOTS entry in the table into a single flat
// path → value map. The table must be complete and is not mutated. Any
// duplicate path, unexpected node type mid-walk, or link cycle aborts the
// whole decode with ErrTreeInconsistency.
func Flatten(table map[uint32]format.RawEntry) (types.FlatRegistry, error) {
	f := &flattener{
		table:   table,
		out:     make(types.FlatRegistry),
		onStack: make(map[uint32]bool),
	}
	for id, e := range table {
		if e.Type != format.ETRoots {
			continue
		}
		if err := f.flatten("", id); err != nil {
			return nil, err
		}
	}
	return f.out, nil
}

type flattener struct {
	table map[uint32]format.RawEntry
	out   types.FlatRegistry

	// onStack holds the ids of the walks currently being resolved. A file
	// with self-referential sibling or child links would otherwise recurse
	// forever; revisiting an id on the active stack is a structural error.
	onStack map[uint32]bool
}

// flatten walks the entry graph under id, emitting paths under prefix.
// An id of 0 or one absent from the table contributes nothing: dangling
// references are not an error by themselves.
func (f *flattener) flatten(prefix string, id uint32) error {
	if id == 0 {
		return nil
	}
	e, ok := f.table[id]
	if !ok {
		return nil
	}
	switch p := e.Payload.(type) {
	case format.RootsRecord:
		if f.onStack[id] {
			return f.cycleErr(id)
		}
		f.onStack[id] = true
		defer delete(f.onStack, id)
		return f.flattenRoots(prefix, p)
	case format.KeyRecord:
		return f.walkKeys(prefix, id)
	case format.ValueRecord:
		return f.walkValues(prefix, id)
	default:
		return fmt.Errorf("reader: entry %d: cannot flatten %s: %w",
			id, e.Type, types.ErrNotImplemented)
	}
}

// flattenRoots recurses into each surviving root id under its positional
// name. More surviving roots than documented names means the file does not
// match the format this decoder understands.
func (f *flattener) flattenRoots(prefix string, r format.RootsRecord) error {
	if len(r.IDs) > len(rootNames) {
		return fmt.Errorf("reader: roots entry lists %d roots, at most %d supported: %w",
			len(r.IDs), len(rootNames), types.ErrTreeInconsistency)
	}
	for i, rootID := range r.IDs {
		if err := f.flatten(prefix+"/"+rootNames[i], rootID); err != nil {
			return err
		}
	}
	return nil
}

// walkKeys follows a key sibling chain, flattening each key's children and
// values under prefix/name. The whole chain stays on the stack until the walk
// completes so sibling cycles are caught, not just child cycles.
func (f *flattener) walkKeys(prefix string, first uint32) error {
	var walked []uint32
	defer func() {
		for _, id := range walked {
			delete(f.onStack, id)
		}
	}()

	for id := first; id != 0; {
		e, ok := f.table[id]
		if !ok {
			return nil // dangling sibling link ends the walk
		}
		key, ok := e.Payload.(format.KeyRecord)
		if !ok {
			return fmt.Errorf("reader: entry %d: %s in key sibling chain: %w",
				id, e.Type, types.ErrTreeInconsistency)
		}
		if f.onStack[id] {
			return f.cycleErr(id)
		}
		f.onStack[id] = true
		walked = append(walked, id)

		path := prefix + "/" + key.Name
		if err := f.flatten(path, key.FirstChild); err != nil {
			return err
		}
		if err := f.flatten(path, key.FirstValue); err != nil {
			return err
		}
		id = key.NextSibling
	}
	return nil
}

// walkValues follows a value sibling chain, emitting prefix/name → value for
// each node.
func (f *flattener) walkValues(prefix string, first uint32) error {
	var walked []uint32
	defer func() {
		for _, id := range walked {
			delete(f.onStack, id)
		}
	}()

	for id := first; id != 0; {
		e, ok := f.table[id]
		if !ok {
			return nil
		}
		val, ok := e.Payload.(format.ValueRecord)
		if !ok {
			return fmt.Errorf("reader: entry %d: %s in value sibling chain: %w",
				id, e.Type, types.ErrTreeInconsistency)
		}
		if f.onStack[id] {
			return f.cycleErr(id)
		}
		f.onStack[id] = true
		walked = append(walked, id)

		if err := f.insert(prefix+"/"+val.Name, val.Value); err != nil {
			return err
		}
		id = val.Next
	}
	return nil
}

// insert adds one flat path, rejecting duplicates. Every disjointness rule
// (values within a walk, children vs values of a key, across siblings, across
// roots entries) reduces to this single check because all walks funnel
// through here.
func (f *flattener) insert(path string, v types.Value) error {
	if _, dup := f.out[path]; dup {
		return fmt.Errorf("reader: duplicate path %q: %w", path, types.ErrTreeInconsistency)
	}
	f.out[path] = v
	return nil
}

func (f *flattener) cycleErr(id uint32) error {
	return fmt.Errorf("reader: entry %d revisited during flattening (link cycle): %w",
		id, types.ErrTreeInconsistency)
}
