// Package hive decodes Windows CE registry hive files ("EKIM" containers)
// into a flat path → typed-value map.
//
// The decode is a single synchronous pass over an in-memory buffer: the
// fixed header is validated, the section directory is read, every live entry
// of every section is decoded into an id-indexed table, and the table is
// flattened by resolving roots, key, and value links into slash-delimited
// paths. Any structural error aborts the whole decode; there is no partial
// result.
//
// Example:
//
//	h, _ := hive.Open("default.hv")
//	defer h.Close()
//	reg, err := h.FlatMap()
//	if err != nil {
//		log.Fatal(err)
//	}
//	hive.Fprint(os.Stdout, reg)
package hive
