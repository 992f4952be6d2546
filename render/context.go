// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/toon"
	"github.com/gogpu/toon/command"
	"github.com/gogpu/toon/rendererlist"
)

// ErrUnbalancedSample is returned by Submit when the pending commands open
// and close profiling samples out of order.
var ErrUnbalancedSample = errors.New("render: unbalanced profiling sample")

// ContextStats counts the work a Context has seen since creation.
type ContextStats struct {
	ListsCreated    int
	BuffersExecuted int
	Submits         int
	Draws           int
}

// Context is the graphics-submission context for one target.
//
// Passes create renderer lists through it and hand it command buffers.
// ExecuteCommandBuffer copies the buffer's commands, so the buffer may be
// released immediately. Submit replays every pending command through the
// backend and clears the queue.
//
// Context is not safe for concurrent use.
type Context struct {
	target  RenderTarget
	backend Backend
	pending []command.Command
	stats   ContextStats
}

// NewContext creates a context that submits to target through backend.
func NewContext(target RenderTarget, backend Backend) *Context {
	return &Context{
		target:  target,
		backend: backend,
		pending: make([]command.Command, 0, 32),
	}
}

// Target returns the context's render target.
func (c *Context) Target() RenderTarget {
	return c.target
}

// Backend returns the context's backend.
func (c *Context) Backend() Backend {
	return c.backend
}

// CreateRendererList materializes desc against the frame's culling results.
// An invalid descriptor yields an empty list.
func (c *Context) CreateRendererList(desc *rendererlist.Desc) *rendererlist.List {
	list := rendererlist.Build(desc)
	c.stats.ListsCreated++
	toon.Logger().Debug("render: renderer list created", slog.Int("items", list.Len()))
	return list
}

// ExecuteCommandBuffer schedules a copy of buf's commands for the next
// Submit.
func (c *Context) ExecuteCommandBuffer(buf *command.Buffer) {
	if buf == nil {
		return
	}
	c.pending = append(c.pending, buf.Commands()...)
	c.stats.BuffersExecuted++
}

// Pending returns the number of commands waiting for Submit.
func (c *Context) Pending() int {
	return len(c.pending)
}

// Stats returns the context's counters.
func (c *Context) Stats() ContextStats {
	return c.stats
}

// Submit replays pending commands through the backend and clears the
// queue. The queue is cleared even when Submit fails.
func (c *Context) Submit() error {
	defer func() {
		clear(c.pending)
		c.pending = c.pending[:0]
	}()

	if err := checkSamples(c.pending); err != nil {
		toon.Logger().Warn("render: submit rejected", slog.String("err", err.Error()))
		return err
	}
	if err := c.backend.Begin(c.target); err != nil {
		return fmt.Errorf("render: backend begin: %w", err)
	}

	for _, cmd := range c.pending {
		switch cmd := cmd.(type) {
		case command.BeginSampleCommand:
			c.backend.BeginSample(cmd.Name)
		case command.EndSampleCommand:
			c.backend.EndSample(cmd.Name)
		case command.ClearRenderTargetCommand:
			c.backend.Clear(cmd.Color, cmd.Depth, cmd.Value)
		case command.DrawRendererListCommand:
			c.backend.DrawRendererList(cmd.List)
			c.stats.Draws += cmd.List.Len()
		}
	}

	if err := c.backend.End(); err != nil {
		return fmt.Errorf("render: backend end: %w", err)
	}
	c.stats.Submits++
	return nil
}

// checkSamples verifies that sample begin/end commands nest properly.
func checkSamples(cmds []command.Command) error {
	var open []string
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case command.BeginSampleCommand:
			open = append(open, cmd.Name)
		case command.EndSampleCommand:
			if len(open) == 0 || open[len(open)-1] != cmd.Name {
				return fmt.Errorf("%w: end %q", ErrUnbalancedSample, cmd.Name)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("%w: %q never ended", ErrUnbalancedSample, open[len(open)-1])
	}
	return nil
}
