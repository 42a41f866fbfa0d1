package framebuf

// Primitive gets, symmetric with put.go. Strings and byte arrays take their
// length out-of-band, typically from a preceding frame prefix; only framing
// carries lengths on the wire. Every get advances the top buffer's cursor by
// the decoded width and fails with ErrBufferUnderflow when fewer bytes
// remain.

// GetByte reads a single raw byte.
func (c *Codec) GetByte() (byte, error) {
	region, err := c.getFixed(1)
	if err != nil {
		return 0, err
	}
	return region[0], nil
}

// GetInt16 reads 2 bytes, big-endian.
func (c *Codec) GetInt16() (int16, error) {
	region, err := c.getFixed(2)
	if err != nil {
		return 0, err
	}
	return int16(decodeBigEndian(region)), nil
}

// GetInt32 reads 4 bytes, big-endian.
func (c *Codec) GetInt32() (int32, error) {
	region, err := c.getFixed(4)
	if err != nil {
		return 0, err
	}
	return int32(decodeBigEndian(region)), nil
}

// GetInt64 reads 8 bytes, big-endian.
func (c *Codec) GetInt64() (int64, error) {
	region, err := c.getFixed(8)
	if err != nil {
		return 0, err
	}
	return int64(decodeBigEndian(region)), nil
}

// GetUint32 reads 4 bytes, big-endian.
func (c *Codec) GetUint32() (uint32, error) {
	region, err := c.getFixed(4)
	if err != nil {
		return 0, err
	}
	return uint32(decodeBigEndian(region)), nil
}

// GetBytes reads exactly n bytes into a fresh slice. The caller supplies n
// from context, usually a frame prefix read just before.
func (c *Codec) GetBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrBufferUnderflow
	}
	region, err := c.getFixed(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, region)
	return out, nil
}

// GetString reads exactly n bytes as a UTF-8 string.
func (c *Codec) GetString(n int) (string, error) {
	if n < 0 {
		return "", ErrBufferUnderflow
	}
	region, err := c.getFixed(n)
	if err != nil {
		return "", err
	}
	return string(region), nil
}

// getFixed returns the next width bytes of the top buffer as a view.
func (c *Codec) getFixed(width int) ([]byte, error) {
	buf, err := c.top()
	if err != nil {
		return nil, err
	}
	return buf.readBytes(width)
}
