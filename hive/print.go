package hive

import (
	"fmt"
	"io"
	"sort"

	"github.com/joshuapare/cehive/pkg/types"
)

// Fprint writes the registry as sorted "path value" lines, one per entry.
// Values render per their kind: strings quoted, binaries hex-encoded, dwords
// decimal, string lists as a quoted slice.
func Fprint(w io.Writer, reg types.FlatRegistry) error {
	paths := make([]string, 0, len(reg))
	for p := range reg {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if _, err := fmt.Fprintf(w, "%s %s\n", p, reg[p]); err != nil {
			return err
		}
	}
	return nil
}
