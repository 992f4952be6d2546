package pipeline

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/toon/command"
	"github.com/gogpu/toon/rendererlist"
)

// Shader tags drawn by the built-in passes.
const (
	TagUniversalForward rendererlist.ShaderTagID = "UniversalForward"
	TagSRPDefaultUnlit  rendererlist.ShaderTagID = "SRPDefaultUnlit"
)

// DrawObjectsPass draws every visible object with a material pass matching
// one of its tags, restricted to a render queue range.
type DrawObjectsPass struct {
	name    string
	event   PassEvent
	tags    []rendererlist.ShaderTagID
	queue   rendererlist.QueueRange
	sorting rendererlist.SortingCriteria
	sampler *command.ProfilingSampler
	pool    *command.Pool
}

// NewDrawObjectsPass creates a pass named name. If no tags are given the
// pass draws TagUniversalForward and TagSRPDefaultUnlit. A nil pool selects
// command.DefaultPool.
func NewDrawObjectsPass(name string, event PassEvent, queue rendererlist.QueueRange,
	sorting rendererlist.SortingCriteria, pool *command.Pool, tags ...rendererlist.ShaderTagID) *DrawObjectsPass {
	if len(tags) == 0 {
		tags = []rendererlist.ShaderTagID{TagUniversalForward, TagSRPDefaultUnlit}
	}
	if pool == nil {
		pool = command.DefaultPool
	}
	return &DrawObjectsPass{
		name:    name,
		event:   event,
		tags:    tags,
		queue:   queue,
		sorting: sorting,
		sampler: command.GetSampler(name),
		pool:    pool,
	}
}

// NewOpaquePass returns the built-in front-to-back opaque pass.
func NewOpaquePass(pool *command.Pool) *DrawObjectsPass {
	return NewDrawObjectsPass("Opaques", BeforeRenderingOpaques,
		rendererlist.QueueOpaque, rendererlist.SortCommonOpaque, pool)
}

// NewTransparentPass returns the built-in back-to-front transparent pass.
func NewTransparentPass(pool *command.Pool) *DrawObjectsPass {
	return NewDrawObjectsPass("Transparents", BeforeRenderingTransparents,
		rendererlist.QueueTransparent, rendererlist.SortCommonTransparent, pool)
}

// Name implements Pass.
func (p *DrawObjectsPass) Name() string { return p.name }

// Event implements Pass.
func (p *DrawObjectsPass) Event() PassEvent { return p.event }

// Execute implements Pass.
func (p *DrawObjectsPass) Execute(ctx Context, data *RenderingData) {
	desc := rendererlist.NewDesc(p.tags[0], data.CullResults, data.Camera)
	desc.Tags = p.tags
	desc.QueueRange = p.queue
	desc.Sorting = p.sorting

	list := ctx.CreateRendererList(desc)

	buf := p.pool.Get(p.name)
	defer p.pool.Release(buf)

	command.Record(buf, p.sampler, func() {
		buf.DrawRendererList(list)
	})

	ctx.ExecuteCommandBuffer(buf)
}

// clearPass clears the colour and depth attachments at the start of a frame.
type clearPass struct {
	color gputypes.Color
	pool  *command.Pool
}

func (p *clearPass) Name() string     { return "Clear" }
func (p *clearPass) Event() PassEvent { return BeforeRendering }

func (p *clearPass) Execute(ctx Context, _ *RenderingData) {
	buf := p.pool.Get("clear")
	defer p.pool.Release(buf)

	buf.ClearRenderTarget(true, true, p.color)
	ctx.ExecuteCommandBuffer(buf)
}
