package framebuf

// FrameSize peeks whether the top buffer currently holds one complete
// length-prefixed record. It returns ErrFrameAbsent when no readable bytes
// remain at all, and otherwise reads the 4-byte big-endian length header and
// checks that the full payload is readable behind it.
//
// On success the cursor has advanced past the header, positioned at the
// payload. On the incomplete branch, whether the header arrived truncated or
// the payload is still short, the cursor is rewound to where it was: a
// caller that gets ErrFrameIncomplete can fill the buffer further and probe
// again without losing the header bytes. Consuming the header on the
// incomplete branch would silently drop 4 bytes from a buffer that is about
// to be refilled and probed again.
func (c *Codec) FrameSize() (int, error) {
	buf, err := c.top()
	if err != nil {
		return 0, err
	}
	if buf.Remaining() == 0 {
		return 0, ErrFrameAbsent
	}

	mark := buf.Position()
	header, err := buf.readBytes(4)
	if err != nil {
		// Fewer than 4 readable bytes: the header itself is partial.
		return 0, ErrFrameIncomplete
	}
	length := int(int32(decodeBigEndian(header)))
	if length < 0 || length > buf.Remaining() {
		buf.pos = mark
		return 0, ErrFrameIncomplete
	}
	return length, nil
}
