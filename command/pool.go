package command

import (
	"sync"
	"sync/atomic"
)

// PoolStats reports how many buffers were handed out and returned.
type PoolStats struct {
	Acquired uint64
	Released uint64
}

// Pool manages reusable command buffers.
// After warmup, allocations are minimized by reusing buffers.
//
// Usage:
//
//	buf := pool.Get("my pass")
//	defer pool.Release(buf)
//	// record into buf...
//
// Pool is safe for concurrent use.
type Pool struct {
	pool     sync.Pool
	acquired atomic.Uint64
	released atomic.Uint64
}

// NewPool creates a new buffer pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return NewBuffer("")
			},
		},
	}
}

// Get retrieves an empty buffer from the pool and names it.
func (p *Pool) Get(name string) *Buffer {
	buf := p.pool.Get().(*Buffer)
	buf.Clear()
	buf.name = name
	p.acquired.Add(1)
	return buf
}

// Release returns a buffer to the pool. The buffer must not be used
// afterwards. Releasing nil is a no-op.
func (p *Pool) Release(buf *Buffer) {
	if buf == nil {
		return
	}
	buf.Clear()
	buf.name = ""
	p.released.Add(1)
	p.pool.Put(buf)
}

// Stats returns the acquire and release counters.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Acquired: p.acquired.Load(),
		Released: p.released.Load(),
	}
}

// Outstanding returns the number of buffers acquired but not yet released.
func (p *Pool) Outstanding() int64 {
	s := p.Stats()
	return int64(s.Acquired) - int64(s.Released)
}

// Warmup pre-allocates buffers to avoid allocation during a frame.
// Warmup does not affect Stats.
func (p *Pool) Warmup(count int) {
	bufs := make([]*Buffer, count)
	for i := range bufs {
		bufs[i] = p.pool.Get().(*Buffer)
	}
	for _, b := range bufs {
		p.pool.Put(b)
	}
}

// DefaultPool is the global buffer pool used when a pass is not given one.
var DefaultPool = NewPool()

// Get retrieves a buffer from the default pool.
func Get(name string) *Buffer {
	return DefaultPool.Get(name)
}

// Release returns a buffer to the default pool.
func Release(buf *Buffer) {
	DefaultPool.Release(buf)
}
