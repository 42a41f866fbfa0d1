package framebuf

import "errors"

var (
	// ErrBufferOverflow indicates a put would advance the cursor past the
	// buffer's limit. This is a sizing bug in the caller or a framing body.
	ErrBufferOverflow = errors.New("framebuf: buffer overflow")

	// ErrBufferUnderflow indicates a get requested more bytes than remain
	// readable in the buffer.
	ErrBufferUnderflow = errors.New("framebuf: buffer underflow")

	// ErrEmptyContext indicates a codec operation ran with no buffer scoped.
	// Correct usage makes this unreachable: every put/get/frame happens
	// inside a WithBuffer extent.
	ErrEmptyContext = errors.New("framebuf: no buffer scoped")

	// ErrConnectionClosed indicates the socket reported end-of-stream during
	// a read. Non-retryable; reconnection is the caller's decision.
	ErrConnectionClosed = errors.New("framebuf: connection closed")

	// ErrIncompleteRead indicates the read-attempt budget was exhausted
	// before the buffer was filled.
	ErrIncompleteRead = errors.New("framebuf: incomplete read")

	// ErrFrameAbsent indicates the buffer holds no readable bytes at all, so
	// there is no frame, complete or partial, to probe.
	ErrFrameAbsent = errors.New("framebuf: no frame available")

	// ErrFrameIncomplete indicates the buffer holds a length header but fewer
	// payload bytes than the header declares.
	ErrFrameIncomplete = errors.New("framebuf: incomplete frame")

	// ErrInvalidPrefixKind indicates a typed frame was opened with a prefix
	// kind outside the closed set.
	ErrInvalidPrefixKind = errors.New("framebuf: invalid prefix kind")

	// ErrFrameTooLarge indicates a typed frame's payload length does not fit
	// the chosen prefix kind's representable range, so patching the prefix
	// would truncate it.
	ErrFrameTooLarge = errors.New("framebuf: payload length exceeds prefix range")

	// ErrInvalidRead indicates the socket returned an out-of-range count
	// from Read.
	ErrInvalidRead = errors.New("framebuf: reader returned invalid count from Read")

	// ErrUnsupportedKind is returned by the polymorphic Put for a value whose
	// type is outside the closed primitive kind set and does not implement
	// Encodable.
	ErrUnsupportedKind = errors.New("framebuf: unsupported value kind")

	// ErrInvalidCapacity indicates a buffer or pool was requested with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("framebuf: invalid capacity")
)
