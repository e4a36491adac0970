package domain

import (
	"fmt"
	"strings"
)

// BitString is an ordered sequence of bits rendered as '0' and '1'
// characters, most significant bit first.
type BitString string

// BitStringFromBytes renders b as eight bits per byte, big-endian.
func BitStringFromBytes(b []byte) BitString {
	var sb strings.Builder
	sb.Grow(len(b) * 8)
	for _, c := range b {
		fmt.Fprintf(&sb, "%08b", c)
	}
	return BitString(sb.String())
}

// Len returns the number of bits.
func (b BitString) Len() int { return len(b) }

// Append returns b followed by other.
func (b BitString) Append(other BitString) BitString { return b + other }

// Prefix returns the first n bits, or all of b when it is shorter.
func (b BitString) Prefix(n int) BitString {
	if n < 0 {
		n = 0
	}
	if n >= len(b) {
		return b
	}
	return b[:n]
}

// TruncateToByte drops trailing bits beyond the last full byte.
func (b BitString) TruncateToByte() BitString {
	return b[:len(b)-len(b)%8]
}

// Bytes groups the bits into bytes, big-endian. A trailing partial byte
// is ignored; callers truncate first.
func (b BitString) Bytes() []byte {
	out := make([]byte, len(b)/8)
	for i := range out {
		var v byte
		for _, c := range b[i*8 : i*8+8] {
			v <<= 1
			if c == '1' {
				v |= 1
			}
		}
		out[i] = v
	}
	return out
}
