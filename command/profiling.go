package command

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ProfilingSampler attributes recorded commands to a label.
// Samplers are shared per name; use GetSampler to obtain one.
type ProfilingSampler struct {
	name     string
	scopes   atomic.Uint64
	recordNs atomic.Int64
}

// Name returns the sampler's label.
func (s *ProfilingSampler) Name() string {
	return s.name
}

// Scopes returns how many scopes have been recorded with this sampler.
func (s *ProfilingSampler) Scopes() uint64 {
	return s.scopes.Load()
}

// RecordTime returns the accumulated CPU time spent recording inside
// this sampler's scopes.
func (s *ProfilingSampler) RecordTime() time.Duration {
	return time.Duration(s.recordNs.Load())
}

// Reset zeroes the sampler's counters.
func (s *ProfilingSampler) Reset() {
	s.scopes.Store(0)
	s.recordNs.Store(0)
}

// Sampler registry - protected by mutex for thread-safe access.
var (
	samplersMu sync.Mutex
	samplers   = make(map[string]*ProfilingSampler)
)

// GetSampler returns the sampler registered under name, creating it on
// first use. The same *ProfilingSampler is returned for equal names.
func GetSampler(name string) *ProfilingSampler {
	samplersMu.Lock()
	defer samplersMu.Unlock()

	s, ok := samplers[name]
	if !ok {
		s = &ProfilingSampler{name: name}
		samplers[name] = s
	}
	return s
}

// Samplers returns a sorted list of registered sampler names.
func Samplers() []string {
	samplersMu.Lock()
	defer samplersMu.Unlock()

	names := make([]string, 0, len(samplers))
	for name := range samplers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProfilingScope brackets the commands recorded between its creation and
// End with a named sample.
//
//	scope := command.NewProfilingScope(buf, sampler)
//	defer scope.End()
type ProfilingScope struct {
	buf     *Buffer
	sampler *ProfilingSampler
	start   time.Time
	ended   bool
}

// NewProfilingScope records BeginSample into buf and returns the open scope.
// A nil sampler produces a scope that records nothing.
func NewProfilingScope(buf *Buffer, sampler *ProfilingSampler) *ProfilingScope {
	s := &ProfilingScope{buf: buf, sampler: sampler}
	if sampler == nil {
		s.ended = true
		return s
	}
	buf.BeginSample(sampler.name)
	s.start = time.Now()
	return s
}

// End records EndSample into the buffer. Calling End more than once is a
// no-op.
func (s *ProfilingScope) End() {
	if s.ended {
		return
	}
	s.ended = true
	s.buf.EndSample(s.sampler.name)
	s.sampler.scopes.Add(1)
	s.sampler.recordNs.Add(int64(time.Since(s.start)))
}

// Record runs fn inside a profiling scope on buf. The scope is closed
// even if fn panics.
func Record(buf *Buffer, sampler *ProfilingSampler, fn func()) {
	scope := NewProfilingScope(buf, sampler)
	defer scope.End()
	fn()
}
