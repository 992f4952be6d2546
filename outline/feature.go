package outline

import (
	"log/slog"

	"github.com/gogpu/toon"
	"github.com/gogpu/toon/pipeline"
)

// Settings is the user-facing configuration of the outline feature.
type Settings struct {
	// Event is the pass's insertion point.
	Event pipeline.PassEvent `toml:"event" yaml:"event"`
}

// Feature contributes the outline pass to a pipeline.
type Feature struct {
	settings Settings
	passOpts []PassOption
	pass     *Pass
}

// NewFeature creates a feature with the given settings. The options are
// applied to every pass Create builds.
func NewFeature(settings Settings, opts ...PassOption) *Feature {
	return &Feature{settings: settings, passOpts: opts}
}

// Configure replaces the insertion point. It takes effect on the next
// Create.
func (f *Feature) Configure(event pipeline.PassEvent) {
	f.settings.Event = event
}

// Settings returns the feature's settings.
func (f *Feature) Settings() Settings {
	return f.settings
}

// Name implements pipeline.Feature.
func (f *Feature) Name() string { return "ToonOutline" }

// Create implements pipeline.Feature. It builds a new pass with the
// configured event, replacing any previously built pass.
func (f *Feature) Create() {
	f.pass = NewPass(f.settings.Event, f.passOpts...)
	toon.Logger().Info("outline: pass created", slog.String("event", f.settings.Event.String()))
}

// Pass returns the pass built by Create, or nil before Create.
func (f *Feature) Pass() *Pass {
	return f.pass
}

// AddRenderPasses implements pipeline.Feature. It panics if Create has not
// been called.
func (f *Feature) AddRenderPasses(q pipeline.PassQueue, _ *pipeline.RenderingData) {
	if f.pass == nil {
		panic("outline: AddRenderPasses called before Create")
	}
	q.EnqueuePass(f.pass)
}

var _ pipeline.Feature = (*Feature)(nil)
