package memmap

import (
	"golang.org/x/exp/constraints"
)

const hexDigits = `0123456789ABCDEF`

// Hex formats v as exactly width upper case hex digits, zero padded.
// Digits beyond width are dropped from the high end.
func Hex[T constraints.Unsigned](v T, width int) string {
	if width <= 0 {
		return ``
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf)
}
