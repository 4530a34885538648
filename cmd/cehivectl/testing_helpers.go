package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"
)

// writeTestHive assembles a small hive with two roots and writes it to a
// temp file:
//
//	/HKCR/App/Ver  = DWORD 3
//	/HKCU/Sys/Name = "widget"
func writeTestHive(t *testing.T) string {
	t.Helper()

	const dataBase = 0x5000
	b := make([]byte, dataBase+0x4000)

	binary.LittleEndian.PutUint32(b[0:], 0x400)
	copy(b[8:], "EKIM")
	binary.LittleEndian.PutUint32(b[32:], uint32(len(b)))
	binary.LittleEndian.PutUint32(b[36:], 0x1000)
	binary.LittleEndian.PutUint32(b[236:], 0xFFFFFFFF)

	// One section at relative offset 0, then the zero terminator.
	binary.LittleEndian.PutUint32(b[0x1000:], 0)
	binary.LittleEndian.PutUint32(b[0x1004:], 0)
	binary.LittleEndian.PutUint32(b[dataBase:], 0x20001004)

	roots := make([]byte, 32)
	binary.LittleEndian.PutUint32(roots[0:], 10)
	binary.LittleEndian.PutUint32(roots[4:], 11)

	entries := []struct {
		id      uint32
		typ     uint8
		payload []byte
	}{
		{1, 0xb, roots},
		{10, 0xc, testKeyPayload("App", 0, 0, 20)},
		{11, 0xc, testKeyPayload("Sys", 0, 0, 21)},
		{20, 0xd, testValuePayload("Ver", 4, 0, []byte{3, 0, 0, 0})},
		{21, 0xd, testValuePayload("Name", 1, 0, append(testUTF16("widget"), 0, 0))},
	}

	off := 0x2000
	for i, e := range entries {
		slot := dataBase + 12 + 4*i
		binary.LittleEndian.PutUint32(b[slot:], uint32(off)|0b01)
		rec := dataBase + off
		binary.LittleEndian.PutUint32(b[rec:], uint32(e.typ)<<28|uint32(len(e.payload)))
		binary.LittleEndian.PutUint32(b[rec+8:], e.id)
		copy(b[rec+12:], e.payload)
		off += (12 + len(e.payload) + 3) &^ 3
	}

	path := filepath.Join(t.TempDir(), "test.hv")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("failed to write test hive: %v", err)
	}
	return path
}

func testUTF16(s string) []byte {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func testKeyPayload(name string, nextSibling, firstChild, firstValue uint32) []byte {
	nameRaw := testUTF16(name)
	b := make([]byte, 16+len(nameRaw))
	binary.LittleEndian.PutUint32(b[0:], nextSibling)
	binary.LittleEndian.PutUint32(b[4:], firstChild)
	binary.LittleEndian.PutUint32(b[8:], firstValue)
	b[12] = uint8(len(nameRaw) / 2)
	copy(b[16:], nameRaw)
	return b
}

func testValuePayload(name string, code uint16, next uint32, data []byte) []byte {
	nameRaw := testUTF16(name)
	b := make([]byte, 10+len(nameRaw)+len(data))
	binary.LittleEndian.PutUint32(b[0:], next)
	binary.LittleEndian.PutUint16(b[4:], code)
	binary.LittleEndian.PutUint16(b[6:], uint16(len(data)))
	binary.LittleEndian.PutUint16(b[8:], uint16(len(nameRaw)/2))
	copy(b[10:], nameRaw)
	copy(b[10+len(nameRaw):], data)
	return b
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
