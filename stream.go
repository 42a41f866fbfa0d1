package framebuf

import "io"

// Stream I/O: bounded-retry fill-from-socket and drain-to-socket against the
// top buffer. The socket is any io.Reader/io.Writer; deadlines and
// cancellation belong to the socket itself (net.Conn read deadlines), not to
// this loop, which is bounded by attempt count only.

// ReadOnce issues a single read from r into the top buffer's remaining
// region and advances the cursor by the bytes received. End-of-stream maps
// to ErrConnectionClosed, never a size.
func (c *Codec) ReadOnce(r io.Reader) (int, error) {
	buf, err := c.top()
	if err != nil {
		return 0, err
	}
	remaining := buf.Remaining()
	if remaining == 0 {
		return 0, nil
	}
	n, err := r.Read(buf.b[buf.pos:buf.limit])
	if n < 0 || n > remaining {
		return 0, ErrInvalidRead
	}
	buf.pos += n
	if err == io.EOF {
		return n, ErrConnectionClosed
	}
	return n, err
}

// ReadFull repeatedly calls ReadOnce while the top buffer still has
// remaining capacity, up to the codec's attempt budget (WithReadAttempts,
// default 5). It returns the total bytes read across attempts and fails
// with ErrIncompleteRead when the budget is exhausted with capacity still
// remaining. ErrConnectionClosed and socket errors propagate immediately.
func (c *Codec) ReadFull(r io.Reader) (int, error) {
	buf, err := c.top()
	if err != nil {
		return 0, err
	}
	total := 0
	for attempt := 0; attempt < c.readAttempts; attempt++ {
		if buf.Remaining() == 0 {
			return total, nil
		}
		n, err := c.ReadOnce(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	if buf.Remaining() > 0 {
		return total, ErrIncompleteRead
	}
	return total, nil
}

// WriteAll issues a single write of the top buffer's readable region to w
// and advances the cursor by the bytes accepted. It does not loop: a short
// write leaves the unsent tail readable, and detecting and retrying it is
// the caller's responsibility.
func (c *Codec) WriteAll(w io.Writer) (int, error) {
	buf, err := c.top()
	if err != nil {
		return 0, err
	}
	if buf.Remaining() == 0 {
		return 0, nil
	}
	n, err := w.Write(buf.Bytes())
	buf.pos += n
	return n, err
}
