package framebuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// tagged is a tiny Encodable used to exercise the polymorphic Put.
type tagged struct {
	tag  byte
	body string
}

func (t tagged) EncodeTo(c *Codec) error {
	if err := c.PutByte(t.tag); err != nil {
		return err
	}
	return c.PutString(t.body)
}

type CodecTestSuite struct {
	suite.Suite
	codec *Codec
	buf   *Buffer
}

func (s *CodecTestSuite) SetupTest() {
	s.codec = NewCodec()
	var err error
	s.buf, err = NewBuffer(64)
	s.Require().NoError(err)
}

// encode runs body with the suite buffer scoped and returns the written bytes.
func (s *CodecTestSuite) encode(body func() error) []byte {
	s.Require().NoError(s.codec.WithBuffer(s.buf, body))
	return s.buf.b[:s.buf.pos]
}

func (s *CodecTestSuite) TestContextScoping() {
	s.T().Run("TopWithoutScopeFails", func(t *testing.T) {
		c := NewCodec()
		err := c.PutByte(0x01)
		assert.ErrorIs(t, err, ErrEmptyContext)
		_, err = c.GetByte()
		assert.ErrorIs(t, err, ErrEmptyContext)
	})

	s.T().Run("RestoresPriorTopOnError", func(t *testing.T) {
		c := NewCodec()
		outer, _ := NewBuffer(8)
		inner, _ := NewBuffer(8)

		err := c.WithBuffer(outer, func() error {
			return c.WithBuffer(inner, func() error {
				return ErrBufferOverflow
			})
		})
		assert.ErrorIs(t, err, ErrBufferOverflow)
		assert.Zero(t, c.Depth(), "stack must unwind fully even on error")
	})

	s.T().Run("NestedScopesTargetInnermost", func(t *testing.T) {
		c := NewCodec()
		outer, _ := NewBuffer(8)
		inner, _ := NewBuffer(8)

		err := c.WithBuffer(outer, func() error {
			if err := c.PutByte(0xAA); err != nil {
				return err
			}
			return c.WithBuffer(inner, func() error {
				return c.PutByte(0xBB)
			})
		})
		require.NoError(t, err)
		assert.Equal(t, []byte{0xAA}, outer.b[:outer.pos])
		assert.Equal(t, []byte{0xBB}, inner.b[:inner.pos])
	})
}

func (s *CodecTestSuite) TestPrimitiveEncodings() {
	got := s.encode(func() error {
		if err := s.codec.PutByte(0xAA); err != nil {
			return err
		}
		if err := s.codec.PutInt16(0x0102); err != nil {
			return err
		}
		if err := s.codec.PutInt32(0x01020304); err != nil {
			return err
		}
		if err := s.codec.PutInt64(0x0102030405060708); err != nil {
			return err
		}
		if err := s.codec.PutString("ok"); err != nil {
			return err
		}
		return s.codec.PutBytes([]byte{0xFE, 0xFF})
	})

	expected := []byte{
		0xAA,       // byte
		0x01, 0x02, // int16, big-endian
		0x01, 0x02, 0x03, 0x04, // int32
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // int64
		'o', 'k', // string, no length prefix
		0xFE, 0xFF, // raw bytes
	}
	s.Assert().Equal(expected, got)
}

func (s *CodecTestSuite) TestNegativeValuesRoundTrip() {
	got := s.encode(func() error {
		if err := s.codec.PutInt16(-2); err != nil {
			return err
		}
		if err := s.codec.PutInt32(-1); err != nil {
			return err
		}
		return s.codec.PutInt64(-9_000_000_000)
	})
	s.Assert().Equal([]byte{0xFF, 0xFE}, got[:2], "two's complement, big-endian")

	s.buf.Flip()
	s.Require().NoError(s.codec.WithBuffer(s.buf, func() error {
		v16, err := s.codec.GetInt16()
		s.Assert().Equal(int16(-2), v16)
		if err != nil {
			return err
		}
		v32, err := s.codec.GetInt32()
		s.Assert().Equal(int32(-1), v32)
		if err != nil {
			return err
		}
		v64, err := s.codec.GetInt64()
		s.Assert().Equal(int64(-9_000_000_000), v64)
		return err
	}))
}

func (s *CodecTestSuite) TestRoundTripIdentity() {
	s.encode(func() error {
		if err := s.codec.PutByte(0x7F); err != nil {
			return err
		}
		if err := s.codec.PutInt16(0x7FFF); err != nil {
			return err
		}
		if err := s.codec.PutInt32(-0x80000000); err != nil {
			return err
		}
		if err := s.codec.PutInt64(0x7FFFFFFFFFFFFFFF); err != nil {
			return err
		}
		if err := s.codec.PutString("héllo"); err != nil {
			return err
		}
		return s.codec.PutBytes([]byte{1, 2, 3})
	})

	s.buf.Flip()
	err := s.codec.WithBuffer(s.buf, func() error {
		b, err := s.codec.GetByte()
		s.Require().NoError(err)
		s.Assert().Equal(byte(0x7F), b)

		v16, err := s.codec.GetInt16()
		s.Require().NoError(err)
		s.Assert().Equal(int16(0x7FFF), v16)

		v32, err := s.codec.GetInt32()
		s.Require().NoError(err)
		s.Assert().Equal(int32(-0x80000000), v32)

		v64, err := s.codec.GetInt64()
		s.Require().NoError(err)
		s.Assert().Equal(int64(0x7FFFFFFFFFFFFFFF), v64)

		str, err := s.codec.GetString(len("héllo"))
		s.Require().NoError(err)
		s.Assert().Equal("héllo", str)

		raw, err := s.codec.GetBytes(3)
		s.Require().NoError(err)
		s.Assert().Equal([]byte{1, 2, 3}, raw)

		s.Assert().Zero(s.buf.Remaining())
		return nil
	})
	s.Require().NoError(err)
}

func (s *CodecTestSuite) TestPolymorphicPut() {
	s.T().Run("CollectionIsConcatenation", func(t *testing.T) {
		c := NewCodec()

		one, _ := NewBuffer(32)
		require.NoError(t, c.WithBuffer(one, func() error {
			return c.Put([]any{int16(7), "ab", byte(9)})
		}))

		parts, _ := NewBuffer(32)
		require.NoError(t, c.WithBuffer(parts, func() error {
			if err := c.Put(int16(7)); err != nil {
				return err
			}
			if err := c.Put("ab"); err != nil {
				return err
			}
			return c.Put(byte(9))
		}))

		assert.Equal(t, parts.b[:parts.pos], one.b[:one.pos])
	})

	s.T().Run("EncodableDispatch", func(t *testing.T) {
		c := NewCodec()
		buf, _ := NewBuffer(16)
		require.NoError(t, c.WithBuffer(buf, func() error {
			return c.Put(tagged{tag: 0x05, body: "hi"})
		}))
		assert.Equal(t, []byte{0x05, 'h', 'i'}, buf.b[:buf.pos])
	})

	s.T().Run("UnsupportedKind", func(t *testing.T) {
		c := NewCodec()
		buf, _ := NewBuffer(16)
		err := c.WithBuffer(buf, func() error {
			return c.Put(3.14)
		})
		assert.ErrorIs(t, err, ErrUnsupportedKind)
	})
}

func (s *CodecTestSuite) TestBoundsErrors() {
	s.T().Run("OverflowLeavesCursorUnmoved", func(t *testing.T) {
		c := NewCodec()
		buf, _ := NewBuffer(3)
		err := c.WithBuffer(buf, func() error {
			return c.PutInt32(1)
		})
		assert.ErrorIs(t, err, ErrBufferOverflow)
		assert.Zero(t, buf.Position())
	})

	s.T().Run("UnderflowLeavesCursorUnmoved", func(t *testing.T) {
		c := NewCodec()
		buf := WrapBuffer([]byte{0x01, 0x02})
		err := c.WithBuffer(buf, func() error {
			_, err := c.GetInt32()
			return err
		})
		assert.ErrorIs(t, err, ErrBufferUnderflow)
		assert.Zero(t, buf.Position())
	})
}

func TestCodec(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}
