//go:build linux || darwin

package hive

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Open mmaps the hive read-only.
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

	data, err := unix.Mmap(int(f.Fd()), 0, int(sz), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("mmap failed: %w", err)
	}

	return &Hive{f: f, data: data, size: sz}, nil
}

func (h *Hive) Close() error {
	var err error
	if h.data != nil {
		_ = unix.Munmap(h.data)
		h.data = nil
	}
	if h.f != nil {
		err = h.f.Close()
		h.f = nil
	}
	return err
}
