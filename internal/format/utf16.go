package format

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const utf16ASCIIThreshold = 0x80

// DecodeUTF16LE converts UTF-16LE bytes to a UTF-8 string. The all-ASCII fast
// path (by far the most common case for registry names) avoids the decoder
// machinery entirely; everything else goes through x/text, which handles
// surrogate pairs. A trailing odd byte is ignored; call sites that must
// reject odd lengths check before decoding.
func DecodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	allASCII := len(data)%2 == 0
	if allASCII {
		for i := 0; i < len(data); i += 2 {
			if data[i+1] != 0 || data[i] >= utf16ASCIIThreshold {
				allASCII = false
				break
			}
		}
	}
	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		// The UTF-16 decoder substitutes U+FFFD rather than failing; if it
		// ever does fail, surface the raw bytes instead of dropping the name.
		return string(data)
	}
	return string(out)
}
