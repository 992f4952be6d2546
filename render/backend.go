// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/toon/rendererlist"
)

// Backend receives the commands a Context replays on Submit.
//
// # Implementation Contract
//
// Each backend must:
//  1. Accept Begin once per submission, before any other call
//  2. Handle every method, even if as a no-op
//  3. Treat renderer lists as read-only
type Backend interface {
	// Begin prepares the backend for a submission to target.
	Begin(target RenderTarget) error

	// End finalizes the submission.
	End() error

	// BeginSample opens a named profiling sample.
	BeginSample(name string)

	// EndSample closes the named profiling sample.
	EndSample(name string)

	// Clear clears the colour and/or depth attachments.
	Clear(color, depth bool, value gputypes.Color)

	// DrawRendererList draws every item of list in order.
	DrawRendererList(list *rendererlist.List)
}

// BackendFactory is a function that creates a new backend instance.
type BackendFactory func() Backend

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register registers a backend factory with the given name.
//
// Register panics if factory is nil or a backend with the same name is
// already registered.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("render: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("render: Register called twice for " + name)
	}
	backends[name] = factory
}

// NewBackend creates a new backend instance by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("render: unknown backend %q (forgotten import?)", name)
	}
	return factory(), nil
}

// MustBackend creates a new backend instance by name, panicking on error.
func MustBackend(name string) Backend {
	b, err := NewBackend(name)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns a sorted list of registered backend names.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

func init() {
	Register("trace", func() Backend { return NewTraceBackend() })
	Register("raster", func() Backend { return NewRasterBackend() })
}
