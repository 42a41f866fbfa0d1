package framebuf

// Encodable is the capability a user type implements to participate in the
// polymorphic Put. EncodeTo writes the value's wire form through the codec's
// current top buffer.
type Encodable interface {
	EncodeTo(c *Codec) error
}

// Codec carries the buffer context stack for one logical encode/decode call
// chain. Every put, get, frame and stream operation implicitly targets the
// top of the stack; callers scope a buffer with WithBuffer rather than
// threading buffer handles through signatures.
//
// A Codec is single-threaded state: one instance per in-flight call chain
// (typically one per connection request cycle). Sharing an instance across
// goroutines without external synchronization is undefined.
type Codec struct {
	stack        []*Buffer
	readAttempts int
}

// DefaultReadAttempts bounds the fill-from-socket retry loop.
const DefaultReadAttempts = 5

// Option configures a Codec at construction.
type Option func(*Codec)

// WithReadAttempts sets the attempt budget for ReadFull. Values below one
// are ignored.
func WithReadAttempts(n int) Option {
	return func(c *Codec) {
		if n >= 1 {
			c.readAttempts = n
		}
	}
}

// NewCodec creates a Codec with an empty context stack.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{readAttempts: DefaultReadAttempts}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithBuffer pushes buf as the top buffer for the dynamic extent of body,
// then restores the prior top unconditionally, error or not. Nesting is the
// expected shape: frame scopes push scratch buffers on the same stack.
func (c *Codec) WithBuffer(buf *Buffer, body func() error) error {
	c.stack = append(c.stack, buf)
	defer func() {
		c.stack = c.stack[:len(c.stack)-1]
	}()
	return body()
}

// top returns the innermost scoped buffer.
func (c *Codec) top() (*Buffer, error) {
	if len(c.stack) == 0 {
		return nil, ErrEmptyContext
	}
	return c.stack[len(c.stack)-1], nil
}

// Depth reports how many buffers are currently scoped. Mostly useful to
// assert balanced scoping in tests.
func (c *Codec) Depth() int { return len(c.stack) }
