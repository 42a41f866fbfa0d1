package framebuf

import (
	"context"

	"github.com/jackc/puddle/v2"
	"github.com/puzpuzpuz/xsync/v4"
)

// Buffer lifetime is caller-managed: allocate, use for one message scope,
// discard. For callers cycling many message scopes the pool below bounds
// allocation churn without changing that model; an acquired buffer is still
// exclusively owned until released.

// BufferPool hands out fixed-capacity Buffers, bounded at maxSize live
// buffers, blocking in Acquire when all are in use.
type BufferPool struct {
	pool     *puddle.Pool[*Buffer]
	capacity int
}

// NewBufferPool creates a pool of buffers with the given capacity, holding
// at most maxSize of them alive at once.
func NewBufferPool(capacity int, maxSize int32) (*BufferPool, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	p, err := puddle.NewPool(&puddle.Config[*Buffer]{
		Constructor: func(ctx context.Context) (*Buffer, error) {
			return NewBuffer(capacity)
		},
		Destructor: func(*Buffer) {},
		MaxSize:    maxSize,
	})
	if err != nil {
		return nil, err
	}
	return &BufferPool{pool: p, capacity: capacity}, nil
}

// Capacity returns the fixed capacity of every buffer in the pool.
func (p *BufferPool) Capacity() int { return p.capacity }

// Acquire returns a pooled buffer reset to fill mode, blocking until one is
// free or ctx is done.
func (p *BufferPool) Acquire(ctx context.Context) (*PooledBuffer, error) {
	res, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	res.Value().Clear()
	return &PooledBuffer{res: res}, nil
}

// Close destroys all idle buffers and waits for acquired ones to be
// released.
func (p *BufferPool) Close() { p.pool.Close() }

// PooledBuffer is an exclusive lease on a pooled Buffer.
type PooledBuffer struct {
	res *puddle.Resource[*Buffer]
}

// Buffer returns the leased buffer. Using it after Release is a bug.
func (pb *PooledBuffer) Buffer() *Buffer { return pb.res.Value() }

// Release returns the buffer to its pool.
func (pb *PooledBuffer) Release() { pb.res.Release() }

// PoolSet is a concurrent registry of BufferPools keyed by capacity, so call
// sites that size buffers per message type share pools without coordinating.
type PoolSet struct {
	pools   *xsync.Map[int, *BufferPool]
	maxSize int32
}

// NewPoolSet creates a registry whose per-capacity pools hold at most
// maxSize buffers each.
func NewPoolSet(maxSize int32) *PoolSet {
	return &PoolSet{pools: xsync.NewMap[int, *BufferPool](), maxSize: maxSize}
}

// Acquire leases a buffer of the given capacity, creating that capacity's
// pool on first use.
func (s *PoolSet) Acquire(ctx context.Context, capacity int) (*PooledBuffer, error) {
	pool, ok := s.pools.Load(capacity)
	if !ok {
		fresh, err := NewBufferPool(capacity, s.maxSize)
		if err != nil {
			return nil, err
		}
		actual, loaded := s.pools.LoadOrStore(capacity, fresh)
		if loaded {
			// Another goroutine won the race; drop ours.
			fresh.Close()
		}
		pool = actual
	}
	return pool.Acquire(ctx)
}

// Close closes every pool in the registry.
func (s *PoolSet) Close() {
	s.pools.Range(func(capacity int, pool *BufferPool) bool {
		pool.Close()
		s.pools.Delete(capacity)
		return true
	})
}
