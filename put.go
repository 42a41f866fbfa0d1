package framebuf

import "golang.org/x/exp/constraints"

// Primitive puts. Every put targets the top buffer of the context stack and
// advances its cursor by the encoded width; multi-byte integers encode
// big-endian. None of the primitive kinds self-describes its length: strings
// and raw bytes go on the wire as-is, with framing (frame.go) supplying
// length prefixes where the protocol needs them.

// PutByte writes a single raw byte.
func (c *Codec) PutByte(v byte) error {
	buf, err := c.top()
	if err != nil {
		return err
	}
	return buf.writeBytes([]byte{v})
}

// PutInt16 writes v as 2 bytes, big-endian.
func (c *Codec) PutInt16(v int16) error {
	return putFixed(c, v, 2)
}

// PutInt32 writes v as 4 bytes, big-endian.
func (c *Codec) PutInt32(v int32) error {
	return putFixed(c, v, 4)
}

// PutInt64 writes v as 8 bytes, big-endian.
func (c *Codec) PutInt64(v int64) error {
	return putFixed(c, v, 8)
}

// PutUint32 writes v as 4 bytes, big-endian. Length prefixes and checksums
// are unsigned on the wire.
func (c *Codec) PutUint32(v uint32) error {
	return putFixed(c, v, 4)
}

// PutString writes the UTF-8 bytes of s with no length prefix.
func (c *Codec) PutString(s string) error {
	buf, err := c.top()
	if err != nil {
		return err
	}
	return buf.writeString(s)
}

// PutBytes writes p as-is.
func (c *Codec) PutBytes(p []byte) error {
	buf, err := c.top()
	if err != nil {
		return err
	}
	return buf.writeBytes(p)
}

// putFixed encodes any integer kind at a caller-chosen width. The width
// check happens in the buffer; an oversized write surfaces ErrBufferOverflow
// with the cursor unmoved.
func putFixed[T constraints.Integer](c *Codec, v T, width int) error {
	buf, err := c.top()
	if err != nil {
		return err
	}
	region, err := buf.reserve(width)
	if err != nil {
		return err
	}
	encodeBigEndian(region, v)
	return nil
}

// Put dispatches on the value's kind over the closed primitive set: byte,
// int16, int32, int64, string, raw bytes, ordered collections, plus any type
// implementing Encodable. Collections encode as the concatenation of their
// elements' encodings in iteration order. Values outside the set fail with
// ErrUnsupportedKind.
func (c *Codec) Put(v any) error {
	switch x := v.(type) {
	case byte:
		return c.PutByte(x)
	case int16:
		return c.PutInt16(x)
	case int32:
		return c.PutInt32(x)
	case int64:
		return c.PutInt64(x)
	case uint32:
		return c.PutUint32(x)
	case string:
		return c.PutString(x)
	case []byte:
		return c.PutBytes(x)
	case Encodable:
		return x.EncodeTo(c)
	case []any:
		for _, el := range x {
			if err := c.Put(el); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnsupportedKind
	}
}
