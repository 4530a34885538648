package format

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/joshuapare/cehive/internal/buf"
	"github.com/joshuapare/cehive/pkg/types"
)

// decodeValue reads a value record: a u32 sibling link, u16 type code, u16
// payload length, and a packed u16 whose low byte is the name length in
// UTF-16 code units, followed by the name and the raw payload.
func decodeValue(c *buf.Cursor) (Payload, error) {
	v := ValueRecord{}
	var err error
	if v.Next, err = c.ReadU32(); err != nil {
		return nil, err
	}
	code, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	valueLen, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	packed, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	nameLen := packed & 0xFF // the high byte's purpose is unknown

	nameRaw, err := c.ReadN(int(nameLen) * 2)
	if err != nil {
		return nil, err
	}
	v.Name = DecodeUTF16LE(nameRaw)

	raw, err := c.ReadN(int(valueLen))
	if err != nil {
		return nil, err
	}
	if v.Value, err = interpretValue(code, raw); err != nil {
		return nil, fmt.Errorf("value %q: %w", v.Name, err)
	}
	return v, nil
}

// interpretValue decodes a raw value payload according to its on-disk type
// code. Code 0x0 is treated as BINARY; whether it is truly an alias or a
// distinct "unset" type is unconfirmed against real-world samples.
func interpretValue(code uint16, raw []byte) (types.Value, error) {
	switch types.ValueKind(code) {
	case types.KindDword:
		return types.DwordValue(decodeDword(raw)), nil
	case types.KindBinary, 0x0:
		return types.BinaryValue(bytes.Clone(raw)), nil
	case types.KindString:
		s, err := decodeString(raw)
		if err != nil {
			return types.Value{}, err
		}
		return types.StringValue(s), nil
	case types.KindStringList:
		list, err := decodeStringList(raw)
		if err != nil {
			return types.Value{}, err
		}
		return types.StringListValue(list), nil
	case types.KindMUI:
		return types.Value{}, fmt.Errorf("MUI value: %w", types.ErrNotImplemented)
	default:
		return types.Value{}, fmt.Errorf("value type code 0x%X: %w", code, types.ErrUnknownValueType)
	}
}

// decodeDword assembles however many payload bytes are present, little-endian.
// Well-formed hives store exactly 4, but a short payload decodes to the value
// its bytes spell rather than being zero-filled or rejected.
func decodeDword(raw []byte) uint32 {
	var v uint32
	for i := len(raw) - 1; i >= 0; i-- {
		v = v<<8 | uint32(raw[i])
	}
	return v
}

// decodeString collects UTF-16 code units until the first NUL unit or input
// exhaustion. Code units after the first NUL are discarded.
func decodeString(raw []byte) (string, error) {
	c := buf.NewCursor(raw)
	end := 0
	for c.Remaining() != 0 {
		unit, err := c.ReadU16()
		if err != nil {
			return "", err // odd trailing byte
		}
		if unit == 0 {
			break
		}
		end = c.Pos()
	}
	return DecodeUTF16LE(raw[:end]), nil
}

// decodeStringList decodes the whole payload as UTF-16 text and splits it on
// NUL. The text must end with two consecutive NULs: one terminating the last
// element and one terminating the list.
func decodeStringList(raw []byte) ([]string, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("string list payload has odd length %d: %w",
			len(raw), types.ErrMalformedStringList)
	}
	s := DecodeUTF16LE(raw)
	if !strings.HasSuffix(s, "\x00\x00") {
		return nil, fmt.Errorf("string list %q: %w", s, types.ErrMalformedStringList)
	}
	return strings.Split(s[:len(s)-2], "\x00"), nil
}
