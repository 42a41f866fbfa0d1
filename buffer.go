package framebuf

// Buffer is a fixed-capacity byte region with a read/write cursor and a
// limit. Capacity is fixed at allocation; a Buffer never grows. The cursor
// invariant 0 <= pos <= limit <= cap holds across every operation.
//
// A freshly allocated Buffer is in fill mode: pos = 0, limit = capacity.
// After filling, Flip switches it to drain mode so the written region
// becomes the readable region. Buffers are not safe for concurrent use; one
// buffer maps to one in-flight message scope.
type Buffer struct {
	b     []byte
	pos   int
	limit int
}

// NewBuffer allocates a Buffer with the given fixed capacity.
func NewBuffer(capacity int) (*Buffer, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Buffer{b: make([]byte, capacity), limit: capacity}, nil
}

// WrapBuffer adopts a caller-owned slice as the buffer's backing region.
// The buffer starts in fill mode over the full slice. The slice is aliased,
// not copied.
func WrapBuffer(p []byte) *Buffer {
	return &Buffer{b: p, limit: len(p)}
}

// Capacity returns the fixed size of the backing region.
func (b *Buffer) Capacity() int { return len(b.b) }

// Position returns the cursor: the next read or write offset.
func (b *Buffer) Position() int { return b.pos }

// Limit returns the end of the valid region.
func (b *Buffer) Limit() int { return b.limit }

// Remaining returns the bytes left between the cursor and the limit.
func (b *Buffer) Remaining() int { return b.limit - b.pos }

// SetPosition moves the cursor. The new position must stay within
// [0, limit].
func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > b.limit {
		return ErrBufferOverflow
	}
	b.pos = pos
	return nil
}

// Flip switches the buffer from fill mode to drain mode: the limit becomes
// the current cursor and the cursor rewinds to zero, so the region just
// written is exactly the region now readable.
func (b *Buffer) Flip() {
	b.limit = b.pos
	b.pos = 0
}

// Rewind resets the cursor to zero without touching the limit.
func (b *Buffer) Rewind() { b.pos = 0 }

// Clear resets the buffer to fill mode over its full capacity. The contents
// are not zeroed.
func (b *Buffer) Clear() {
	b.pos = 0
	b.limit = len(b.b)
}

// Compact moves any unread bytes to the start of the region and leaves the
// buffer in fill mode positioned after them. Used when a partial frame must
// survive the next fill from the socket.
func (b *Buffer) Compact() {
	n := copy(b.b, b.b[b.pos:b.limit])
	b.pos = n
	b.limit = len(b.b)
}

// Bytes returns the readable region [pos, limit) as a view into the backing
// slice. Mutating the view mutates the buffer.
func (b *Buffer) Bytes() []byte { return b.b[b.pos:b.limit] }

// writeBytes copies p at the cursor and advances it, failing without partial
// effect when p does not fit before the limit.
func (b *Buffer) writeBytes(p []byte) error {
	if len(p) > b.Remaining() {
		return ErrBufferOverflow
	}
	copy(b.b[b.pos:], p)
	b.pos += len(p)
	return nil
}

// writeString is writeBytes for a string, avoiding a []byte conversion.
func (b *Buffer) writeString(s string) error {
	if len(s) > b.Remaining() {
		return ErrBufferOverflow
	}
	copy(b.b[b.pos:], s)
	b.pos += len(s)
	return nil
}

// reserve advances the cursor over n bytes and returns the skipped region as
// a view, for placeholder-and-patch encoding. The region is zeroed.
func (b *Buffer) reserve(n int) ([]byte, error) {
	if n > b.Remaining() {
		return nil, ErrBufferOverflow
	}
	region := b.b[b.pos : b.pos+n]
	clear(region)
	b.pos += n
	return region, nil
}

// readBytes returns the next n bytes as a view and advances the cursor.
func (b *Buffer) readBytes(n int) ([]byte, error) {
	if n > b.Remaining() {
		return nil, ErrBufferUnderflow
	}
	region := b.b[b.pos : b.pos+n]
	b.pos += n
	return region, nil
}

// slice returns a scratch Buffer aliasing the region [pos, limit) of b.
// The scratch starts in fill mode over exactly the parent's remaining
// capacity; writes through it land in the parent's backing array.
func (b *Buffer) slice() *Buffer {
	return WrapBuffer(b.b[b.pos:b.limit])
}
