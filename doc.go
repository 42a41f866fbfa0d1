// Package framebuf is a binary-framing and buffer-scoping layer for
// fixed-layout, length-prefixed messages over a byte-oriented stream socket.
//
// The pieces, leaves first: Buffer is a fixed-capacity byte region with a
// cursor and a limit; Codec carries a stack of buffers so that nested
// encode/decode scopes implicitly target the innermost one; the primitive
// puts and gets encode byte, int16/32/64 (big-endian), UTF-8 strings, raw
// bytes and ordered collections; PutFrame and PutTypedFrame build
// length-prefixed sub-regions with the prefix patched after the body runs;
// PutTransformed covers checksum-over-content headers; ReadOnce, ReadFull
// and WriteAll move a buffer against a socket with a bounded attempt
// budget; FrameSize probes whether a complete record has arrived.
//
// A typical request cycle:
//
//	c := framebuf.NewCodec()
//	buf, _ := framebuf.NewBuffer(4096)
//	err := c.WithBuffer(buf, func() error {
//		return c.PutFrame(func() error {
//			if err := c.PutInt16(apiKey); err != nil {
//				return err
//			}
//			return c.PutBytes(payload)
//		})
//	})
//	buf.Flip()
//	err = c.WithBuffer(buf, func() error {
//		_, err := c.WriteAll(conn)
//		return err
//	})
//
// Codec instances and Buffers are single-threaded state: one codec per
// logical call chain, one buffer per in-flight message scope. The optional
// BufferPool and PoolSet are the only concurrency-safe types in the package.
package framebuf
