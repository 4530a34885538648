//go:build !linux && !darwin

package hive

import (
	"fmt"
	"io"
	"os"
)

// Open loads the hive into memory on platforms where we don't mmap.
func Open(path string) (*Hive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	sz := st.Size()
	if sz == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("empty hive file: %s", path)
	}

	buf := make([]byte, sz)
	if _, err := io.ReadFull(f, buf); err != nil {
		_ = f.Close()
		return nil, err
	}

	return &Hive{f: f, data: buf, size: sz}, nil
}

func (h *Hive) Close() error {
	var err error
	if h.f != nil {
		err = h.f.Close()
		h.f = nil
	}
	h.data = nil
	return err
}
