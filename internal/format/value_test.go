package format

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/joshuapare/cehive/pkg/types"
)

func TestInterpretDword(t *testing.T) {
	v, err := interpretValue(uint16(types.KindDword), []byte{0x78, 0x56, 0x34, 0x12})
	if err != nil {
		t.Fatalf("interpretValue: %v", err)
	}
	if v.Kind != types.KindDword || v.Dword != 0x12345678 {
		t.Fatalf("value = %v", v)
	}
}

func TestInterpretDwordShortPayload(t *testing.T) {
	// A short payload spells its value in the bytes it has; it is not
	// zero-filled out to four bytes.
	cases := []struct {
		raw  []byte
		want uint32
	}{
		{[]byte{5, 0}, 5},
		{[]byte{0x34, 0x12, 0x01}, 0x011234},
		{[]byte{7}, 7},
		{nil, 0},
	}
	for _, tc := range cases {
		v, err := interpretValue(uint16(types.KindDword), tc.raw)
		if err != nil {
			t.Fatalf("payload %v: %v", tc.raw, err)
		}
		if v.Dword != tc.want {
			t.Errorf("payload %v: Dword = 0x%X, want 0x%X", tc.raw, v.Dword, tc.want)
		}
	}
}

func TestInterpretBinaryAndZeroAlias(t *testing.T) {
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	for _, code := range []uint16{uint16(types.KindBinary), 0x0} {
		v, err := interpretValue(code, raw)
		if err != nil {
			t.Fatalf("code 0x%X: %v", code, err)
		}
		if v.Kind != types.KindBinary || !bytes.Equal(v.Bytes, raw) {
			t.Fatalf("code 0x%X: value = %v", code, v)
		}
	}
}

func TestInterpretString(t *testing.T) {
	// Code units [h,e,l,l,o,0]: the terminator and anything after it are dropped.
	raw := append(utf16Bytes("hello"), 0, 0)
	raw = append(raw, utf16Bytes("junk")...)

	v, err := interpretValue(uint16(types.KindString), raw)
	if err != nil {
		t.Fatalf("interpretValue: %v", err)
	}
	if v.Str != "hello" {
		t.Fatalf("Str = %q", v.Str)
	}

	// Unterminated strings decode up to input exhaustion.
	v, err = interpretValue(uint16(types.KindString), utf16Bytes("hi"))
	if err != nil {
		t.Fatalf("interpretValue: %v", err)
	}
	if v.Str != "hi" {
		t.Fatalf("Str = %q", v.Str)
	}
}

func TestInterpretStringOddLength(t *testing.T) {
	_, err := interpretValue(uint16(types.KindString), []byte{0x41, 0x00, 0x42})
	if !errors.Is(err, types.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestInterpretStringList(t *testing.T) {
	v, err := interpretValue(uint16(types.KindStringList), utf16Bytes("a\x00b\x00\x00"))
	if err != nil {
		t.Fatalf("interpretValue: %v", err)
	}
	if v.Kind != types.KindStringList || !reflect.DeepEqual(v.Strings, []string{"a", "b"}) {
		t.Fatalf("value = %v", v)
	}
}

func TestInterpretStringListMissingTerminator(t *testing.T) {
	for _, payload := range [][]byte{
		utf16Bytes("a\x00b\x00"), // single trailing NUL
		utf16Bytes("a"),          // no NUL at all
		nil,                      // empty payload
		{0x00},                   // odd length
	} {
		_, err := interpretValue(uint16(types.KindStringList), payload)
		if !errors.Is(err, types.ErrMalformedStringList) {
			t.Errorf("payload %v: expected ErrMalformedStringList, got %v", payload, err)
		}
	}
}

func TestInterpretMUIUnsupported(t *testing.T) {
	_, err := interpretValue(uint16(types.KindMUI), nil)
	if !errors.Is(err, types.ErrNotImplemented) {
		t.Fatalf("expected ErrNotImplemented, got %v", err)
	}
}

func TestInterpretUnknownCode(t *testing.T) {
	_, err := interpretValue(0x9, nil)
	if !errors.Is(err, types.ErrUnknownValueType) {
		t.Fatalf("expected ErrUnknownValueType, got %v", err)
	}
}

func TestDecodeUTF16LE(t *testing.T) {
	if got := DecodeUTF16LE(utf16Bytes("ascii name")); got != "ascii name" {
		t.Errorf("ascii path = %q", got)
	}
	if got := DecodeUTF16LE(utf16Bytes("héllo wörld")); got != "héllo wörld" {
		t.Errorf("non-ascii path = %q", got)
	}
	if got := DecodeUTF16LE(utf16Bytes("𝕊urrogates")); got != "𝕊urrogates" {
		t.Errorf("surrogate path = %q", got)
	}
	if got := DecodeUTF16LE(nil); got != "" {
		t.Errorf("empty = %q", got)
	}
}
