package framebuf

// Framing: length-prefixed sub-regions with deferred size patch-back. The
// frame scope is a scratch buffer aliasing the parent's remaining region, so
// nested puts land directly in the parent's backing array and no copy or
// measuring pre-pass is needed. The prefix placeholder is reserved first,
// the body writes the payload, and the placeholder is patched to the payload
// length the moment the scope closes.

// PrefixKind selects the width and numeric kind of a typed frame's length
// prefix.
type PrefixKind int

const (
	PrefixByte  PrefixKind = iota // 1-byte prefix
	PrefixInt16                   // 2-byte prefix
	PrefixInt32                   // 4-byte prefix
	PrefixInt64                   // 8-byte prefix
)

// Width returns the prefix's byte width on the wire.
func (k PrefixKind) Width() (int, error) {
	switch k {
	case PrefixByte:
		return 1, nil
	case PrefixInt16:
		return 2, nil
	case PrefixInt32:
		return 4, nil
	case PrefixInt64:
		return 8, nil
	default:
		return 0, ErrInvalidPrefixKind
	}
}

// PutFrame writes a generic frame: a 4-byte big-endian length prefix
// followed by whatever body puts, with the prefix patched to the payload
// length (excluding the prefix itself) after body returns. The parent
// cursor advances past the whole frame.
//
// The frame's scratch region is the parent's remaining capacity; a body
// that outgrows it fails with ErrBufferOverflow, which propagates and
// abandons the frame with the parent cursor unmoved.
func (c *Codec) PutFrame(body func() error) error {
	return c.PutTypedFrame(PrefixInt32, body)
}

// PutTypedFrame is PutFrame with a caller-chosen prefix width. The patched
// value is written - prefixWidth, the exact payload byte length measured
// when the scope closes.
func (c *Codec) PutTypedFrame(kind PrefixKind, body func() error) error {
	width, err := kind.Width()
	if err != nil {
		return err
	}
	parent, err := c.top()
	if err != nil {
		return err
	}

	scratch := parent.slice()
	prefix, err := scratch.reserve(width)
	if err != nil {
		return err
	}
	if err := c.WithBuffer(scratch, body); err != nil {
		return err
	}

	written := scratch.Position()
	payload := written - width
	if !fitsPrefix(payload, width) {
		return ErrFrameTooLarge
	}
	encodeBigEndian(prefix, payload)
	return parent.SetPosition(parent.Position() + written)
}

// fitsPrefix reports whether a payload length is representable by a signed
// prefix of the given byte width. Patching a longer payload would truncate
// the prefix and break the frame invariant.
func fitsPrefix(payload, width int) bool {
	if width >= 8 {
		return true
	}
	return payload <= 1<<(8*width-1)-1
}
