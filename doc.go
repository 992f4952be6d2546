// Package toon provides a toon-style outline pass for frame-based render
// pipelines built on the GoGPU ecosystem.
//
// # Overview
//
// The pipeline is organised around passes that a host scheduler executes in
// the order of their insertion point (see pipeline.PassEvent). Features are
// long-lived descriptors that construct passes once per pipeline build and
// enqueue them every frame. The outline feature adds a single pass that
// draws every visible object whose material carries the "Outline" shader
// tag.
//
// # Quick Start
//
//	feature := outline.NewFeature(outline.Settings{
//	    Event: pipeline.BeforeRenderingTransparents,
//	})
//
//	r := pipeline.NewRenderer(pipeline.WithDefaultPasses())
//	r.AddFeature(feature)
//	r.Setup()
//
//	target := render.NewPixmapTarget(800, 600)
//	ctx := render.NewContext(target, render.MustBackend("raster"))
//	err := r.RenderFrame(ctx, &pipeline.RenderingData{
//	    Camera:      camera,
//	    CullResults: visible,
//	})
//
// # Architecture
//
// The module is organised into:
//   - pipeline: insertion points, pass and feature contracts, frame scheduler
//   - cull: visibility snapshot types supplied by the host
//   - rendererlist: filter descriptors and materialized draw lists
//   - command: command buffers, buffer pool, profiling scopes
//   - render: render context, playback backends, render targets
//   - outline: the outline feature and pass
//   - config: settings files (TOML, YAML)
//
// # Logging
//
// The module is silent by default. Call SetLogger to route diagnostics
// through a *slog.Logger.
package toon

// Version is the current version of the module.
const Version = "0.1.0"
