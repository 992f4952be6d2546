package outline

import (
	"github.com/gogpu/toon/command"
	"github.com/gogpu/toon/pipeline"
	"github.com/gogpu/toon/rendererlist"
)

// Tag is the shader tag selecting materials drawn by the outline pass.
const Tag rendererlist.ShaderTagID = "Outline"

// bufferName is the debug name of the pass's command buffer.
const bufferName = "outline pass"

// PassOption configures a Pass during creation.
type PassOption func(*Pass)

// WithPool sets the pool the pass acquires its command buffer from.
// The default is command.DefaultPool.
func WithPool(pool *command.Pool) PassOption {
	return func(p *Pass) {
		if pool != nil {
			p.pool = pool
		}
	}
}

// Pass draws outline-tagged objects.
//
// A Pass keeps no per-frame state: the renderer list and command buffer
// are created and released within each Execute call.
type Pass struct {
	event   pipeline.PassEvent
	pool    *command.Pool
	sampler *command.ProfilingSampler
}

// NewPass creates an outline pass scheduled at event.
func NewPass(event pipeline.PassEvent, opts ...PassOption) *Pass {
	p := &Pass{
		event:   event,
		pool:    command.DefaultPool,
		sampler: command.GetSampler(string(Tag)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements pipeline.Pass.
func (p *Pass) Name() string { return string(Tag) }

// Event implements pipeline.Pass.
func (p *Pass) Event() pipeline.PassEvent { return p.event }

// Execute implements pipeline.Pass. Missing culling results or camera
// yield an empty list; the profiling scope is still recorded.
func (p *Pass) Execute(ctx pipeline.Context, data *pipeline.RenderingData) {
	desc := rendererlist.NewDesc(Tag, data.CullResults, data.Camera)
	desc.QueueRange = rendererlist.QueueAll
	desc.ExcludeMotionVectors = true

	list := ctx.CreateRendererList(desc)

	buf := p.pool.Get(bufferName)
	defer p.pool.Release(buf)

	command.Record(buf, p.sampler, func() {
		buf.DrawRendererList(list)
	})

	ctx.ExecuteCommandBuffer(buf)
}

var _ pipeline.Pass = (*Pass)(nil)
