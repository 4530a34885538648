package types

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind enumerates the CE registry value types. The numbers align with
// the on-disk type codes.
type ValueKind uint16

const (
	KindString     ValueKind = 1
	KindBinary     ValueKind = 3
	KindDword      ValueKind = 4
	KindStringList ValueKind = 7
	// KindMUI is recognized on disk but never decoded.
	KindMUI ValueKind = 21
)

// String implements the Stringer interface for ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "STRING"
	case KindBinary:
		return "BINARY"
	case KindDword:
		return "DWORD"
	case KindStringList:
		return "STRINGLIST"
	case KindMUI:
		return "MUI"
	default:
		return fmt.Sprintf("UNKNOWN_TYPE_0x%X", uint16(k))
	}
}

// Value is the decoded payload of a registry value. Kind selects which of
// the data fields is populated; the others hold their zero value.
type Value struct {
	Kind    ValueKind
	Str     string
	Bytes   []byte
	Dword   uint32
	Strings []string
}

// StringValue wraps a decoded UTF-16 string.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BinaryValue wraps a raw byte payload.
func BinaryValue(b []byte) Value { return Value{Kind: KindBinary, Bytes: b} }

// DwordValue wraps a 32-bit integer.
func DwordValue(v uint32) Value { return Value{Kind: KindDword, Dword: v} }

// StringListValue wraps an ordered NUL-separated string list.
func StringListValue(ss []string) Value { return Value{Kind: KindStringList, Strings: ss} }

// String renders the value for human-readable dumps.
func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.Str)
	case KindBinary:
		return "0x" + hex.EncodeToString(v.Bytes)
	case KindDword:
		return strconv.FormatUint(uint64(v.Dword), 10)
	case KindStringList:
		return fmt.Sprintf("%q", v.Strings)
	default:
		return fmt.Sprintf("<%s>", v.Kind)
	}
}

// MarshalJSON emits {"type": ..., "data": ...} with the data shaped per kind
// (binary payloads are hex-encoded).
func (v Value) MarshalJSON() ([]byte, error) {
	var data any
	switch v.Kind {
	case KindString:
		data = v.Str
	case KindBinary:
		data = hex.EncodeToString(v.Bytes)
	case KindDword:
		data = v.Dword
	case KindStringList:
		data = v.Strings
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		Data any    `json:"data"`
	}{Type: v.Kind.String(), Data: data})
}

// FlatRegistry maps slash-delimited registry paths to decoded values. It is
// the sole artifact of a successful decode.
type FlatRegistry map[string]Value
