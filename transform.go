package framebuf

import "github.com/zeebo/xxh3"

// Transform is a pure function over the payload bytes written inside a
// PutTransformed scope. It runs once, after all body writes, and its result
// permanently overwrites the placeholder; it must not mutate the payload or
// depend on anything but it. For a 4-byte placeholder the result must be an
// integer of any kind; other placeholder sizes take anything the generic
// Put accepts.
type Transform func(payload []byte) any

// PutTransformed handles payloads whose final on-wire header is a function
// of the bytes written after it, the checksum-over-content shape. It
// reserves size placeholder bytes, runs body (which writes the trailing
// content), applies transform to that content, and writes the result back at
// the placeholder offset: as a fixed-width big-endian 32-bit integer when
// size == 4, otherwise through the generic Put. The parent cursor advances
// by placeholder plus content.
func (c *Codec) PutTransformed(size int, transform Transform, body func() error) error {
	parent, err := c.top()
	if err != nil {
		return err
	}

	scratch := parent.slice()
	if _, err := scratch.reserve(size); err != nil {
		return err
	}
	if err := c.WithBuffer(scratch, body); err != nil {
		return err
	}

	written := scratch.Position()
	content := scratch.b[size:written]
	result := transform(content)

	// Rewind to the placeholder and write the transformed value over it.
	scratch.Rewind()
	err = c.WithBuffer(scratch, func() error {
		if size == 4 {
			u, ok := toUint32(result)
			if !ok {
				return ErrUnsupportedKind
			}
			return c.PutUint32(u)
		}
		return c.Put(result)
	})
	if err != nil {
		return err
	}

	return parent.SetPosition(parent.Position() + written)
}

// toUint32 narrows the transform result for the fixed-width 4-byte patch.
// Any integer kind is accepted; everything else fails the patch.
func toUint32(v any) (uint32, bool) {
	switch x := v.(type) {
	case uint32:
		return x, true
	case int32:
		return uint32(x), true
	case uint64:
		return uint32(x), true
	case int64:
		return uint32(x), true
	case int:
		return uint32(x), true
	case uint:
		return uint32(x), true
	case int16:
		return uint32(x), true
	case uint16:
		return uint32(x), true
	case int8:
		return uint32(x), true
	case uint8:
		return uint32(x), true
	default:
		return 0, false
	}
}

// ChecksumXXH3 is the canonical 4-byte transform: the low 32 bits of the
// XXH3 hash of the payload.
func ChecksumXXH3(payload []byte) any {
	return uint32(xxh3.Hash(payload))
}
