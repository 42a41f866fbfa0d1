package framebuf

import "golang.org/x/exp/constraints"

// All multi-byte wire fields are big-endian; these helpers are the single
// place the byte order lives.

// encodeBigEndian writes v into dst most-significant byte first, using
// exactly len(dst) bytes. Signed values narrow two's-complement, matching
// the fixed-width primitive encodings.
func encodeBigEndian[T constraints.Integer](dst []byte, v T) {
	u := uint64(int64(v))
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(u)
		u >>= 8
	}
}

// decodeBigEndian reads len(src) bytes as an unsigned big-endian integer.
func decodeBigEndian(src []byte) uint64 {
	var u uint64
	for _, b := range src {
		u = u<<8 | uint64(b)
	}
	return u
}
