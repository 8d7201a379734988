package runeio

import (
	"io"
	"unicode/utf8"
)

// WriteANSIString writes s into w, translating C1 controls into their 7-bit
// forms: NEL becomes "\r\n", and any other C1 control becomes ESC followed
// by its final byte (e.g. CSI "\x9b" becomes "\x1b[").
// All other runes are written as utf8.
func WriteANSIString(w io.Writer, s string) (n int, err error) {
	var buf []byte
	for _, r := range s {
		switch {
		case r == 0x85:
			buf = append(buf, '\r', '\n')
		case 0x80 <= r && r <= 0x9f:
			buf = append(buf, 0x1b, byte(r^0xc0))
		default:
			buf = utf8.AppendRune(buf, r)
		}
	}
	return w.Write(buf)
}
