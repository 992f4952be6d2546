// Package outline adds a toon outline pass to a pipeline.Renderer.
//
// The Feature holds the pass's insertion point. Create builds the Pass once
// per pipeline, and AddRenderPasses enqueues it every frame. The Pass draws
// every visible object whose material provides a shader pass tagged
// "Outline", across all render queues, skipping objects that render
// per-object motion vectors, inside a profiling scope named "Outline".
//
// Example:
//
//	r := pipeline.NewRenderer(pipeline.WithDefaultPasses())
//	r.AddFeature(outline.NewFeature(outline.Settings{
//	    Event: pipeline.AfterRenderingOpaques,
//	}))
//	r.Setup()
package outline
