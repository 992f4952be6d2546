// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the render context passes submit to and the
// backends that play submitted commands back onto a target.
//
// # Key Principle
//
// Passes never touch a target directly. They describe renderer lists, record
// command buffers and hand them to a Context. The Context copies the
// commands and, on Submit, replays them through a Backend in recording
// order.
//
// # Core Types
//
//   - Context: materializes renderer lists, buffers executed commands, submits
//   - Backend: receives replayed commands (trace, raster)
//   - RenderTarget: describes the output attachments
//
// # Backends
//
// Backends are registered by name following the database/sql driver
// pattern. Two are built in:
//
//   - "trace": records every replayed command as an Event
//   - "raster": paints outline rectangles into a *PixmapTarget
//
// # Usage
//
//	target := render.NewPixmapTarget(800, 600)
//	ctx := render.NewContext(target, render.MustBackend("raster"))
//
//	pass.Execute(ctx, data)
//	if err := ctx.Submit(); err != nil {
//	    log.Printf("submit failed: %v", err)
//	}
package render
