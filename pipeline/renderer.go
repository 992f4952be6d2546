package pipeline

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/toon"
	"github.com/gogpu/toon/command"
)

// ErrNotSetup is returned by RenderFrame when Setup has not been called.
var ErrNotSetup = errors.New("pipeline: renderer used before Setup")

// RendererOption configures a Renderer during creation.
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	defaultPasses bool
	clearColor    gputypes.Color
	pool          *command.Pool
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		clearColor: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
		pool:       command.DefaultPool,
	}
}

// WithDefaultPasses enables the built-in clear, opaque and transparent
// passes.
func WithDefaultPasses() RendererOption {
	return func(o *rendererOptions) {
		o.defaultPasses = true
	}
}

// WithClearColor sets the colour used by the built-in clear pass.
func WithClearColor(c gputypes.Color) RendererOption {
	return func(o *rendererOptions) {
		o.clearColor = c
	}
}

// WithPool sets the command buffer pool used by the built-in passes.
func WithPool(pool *command.Pool) RendererOption {
	return func(o *rendererOptions) {
		if pool != nil {
			o.pool = pool
		}
	}
}

// Renderer schedules passes within a frame.
//
// Features are registered with AddFeature and created by Setup. Each call
// to RenderFrame collects the frame's passes, orders them by PassEvent
// (passes sharing an event keep their enqueue order) and executes them.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	features []Feature
	builtin  []Pass
	queue    []Pass
	ready    bool
	frames   uint64
}

// NewRenderer creates a renderer with no features.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{}
	if o.defaultPasses {
		r.builtin = []Pass{
			&clearPass{color: o.clearColor, pool: o.pool},
			NewOpaquePass(o.pool),
			NewTransparentPass(o.pool),
		}
	}
	return r
}

// AddFeature registers f. Features added after Setup are created by the
// next call to Setup.
func (r *Renderer) AddFeature(f Feature) {
	r.features = append(r.features, f)
	r.ready = false
}

// Features returns the registered features.
func (r *Renderer) Features() []Feature {
	return r.features
}

// Setup builds the pipeline by calling Create on every feature.
func (r *Renderer) Setup() {
	for _, f := range r.features {
		f.Create()
		toon.Logger().Info("pipeline: feature created", slog.String("feature", f.Name()))
	}
	r.ready = true
}

// EnqueuePass implements PassQueue.
func (r *Renderer) EnqueuePass(p Pass) {
	if p == nil {
		return
	}
	r.queue = append(r.queue, p)
}

// Passes returns the passes of the most recent frame in execution order.
func (r *Renderer) Passes() []Pass {
	return slices.Clone(r.queue)
}

// Frames returns the number of frames rendered.
func (r *Renderer) Frames() uint64 {
	return r.frames
}

// RenderFrame runs one frame: collects passes from the built-ins and every
// feature, executes them in event order against ctx and submits ctx.
func (r *Renderer) RenderFrame(ctx Context, data *RenderingData) error {
	if !r.ready {
		return ErrNotSetup
	}
	if data == nil {
		data = &RenderingData{Frame: r.frames}
	}

	clear(r.queue)
	r.queue = r.queue[:0]
	for _, p := range r.builtin {
		r.EnqueuePass(p)
	}
	for _, f := range r.features {
		f.AddRenderPasses(r, data)
	}
	slices.SortStableFunc(r.queue, func(a, b Pass) int {
		return cmp.Compare(a.Event(), b.Event())
	})

	log := toon.Logger()
	for _, p := range r.queue {
		log.Debug("pipeline: execute pass",
			slog.Uint64("frame", data.Frame),
			slog.String("pass", p.Name()),
			slog.String("event", p.Event().String()))
		p.Execute(ctx, data)
	}

	r.frames++
	if err := ctx.Submit(); err != nil {
		return fmt.Errorf("pipeline: frame %d: %w", data.Frame, err)
	}
	return nil
}
