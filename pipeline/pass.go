package pipeline

import (
	"github.com/gogpu/toon/command"
	"github.com/gogpu/toon/cull"
	"github.com/gogpu/toon/rendererlist"
)

// RenderingData is the per-frame input shared by every pass.
// Passes must treat it as read-only.
type RenderingData struct {
	// Frame is the host's frame counter.
	Frame uint64

	Camera      *cull.Camera
	CullResults *cull.Results
}

// Context is the graphics-submission context a pass records into.
//
// CreateRendererList materializes a descriptor into a concrete list.
// ExecuteCommandBuffer schedules a copy of buf's commands; buf may be
// reused or released as soon as the call returns. Submit flushes every
// scheduled command to the target.
type Context interface {
	CreateRendererList(desc *rendererlist.Desc) *rendererlist.List
	ExecuteCommandBuffer(buf *command.Buffer)
	Submit() error
}

// Pass is a unit of rendering work scheduled at a PassEvent.
type Pass interface {
	// Name identifies the pass in logs and traces.
	Name() string

	// Event returns the pass's insertion point.
	Event() PassEvent

	// Execute records the pass's commands for one frame.
	Execute(ctx Context, data *RenderingData)
}

// PassQueue accepts passes for the current frame.
type PassQueue interface {
	EnqueuePass(p Pass)
}

// Feature is a long-lived pipeline extension that contributes passes.
//
// Create is called once per pipeline build. AddRenderPasses is called once
// per frame and must not be called before Create.
type Feature interface {
	Name() string
	Create()
	AddRenderPasses(q PassQueue, data *RenderingData)
}
