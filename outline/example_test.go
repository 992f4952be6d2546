package outline_test

import (
	"fmt"
	"image"

	"github.com/gogpu/toon/cull"
	"github.com/gogpu/toon/outline"
	"github.com/gogpu/toon/pipeline"
	"github.com/gogpu/toon/render"
	"github.com/gogpu/toon/rendererlist"
)

// ExampleNewFeature shows the outline pass drawing only the objects whose
// material carries the Outline tag, right after the opaque pass.
func ExampleNewFeature() {
	toonMat := &cull.Material{Name: "toon", Passes: []string{"UniversalForward", "Outline"}}
	litMat := &cull.Material{Name: "lit", Passes: []string{"UniversalForward"}}
	scene := cull.NewResults(
		&cull.Object{ID: 1, Bounds: image.Rect(2, 2, 10, 10), RenderQueue: rendererlist.RenderQueueGeometry, Materials: []*cull.Material{toonMat}},
		&cull.Object{ID: 2, Bounds: image.Rect(12, 2, 20, 10), RenderQueue: rendererlist.RenderQueueGeometry, Materials: []*cull.Material{litMat}},
	)

	r := pipeline.NewRenderer(pipeline.WithDefaultPasses())
	r.AddFeature(outline.NewFeature(outline.Settings{Event: pipeline.AfterRenderingOpaques}))
	r.Setup()

	trace := render.NewTraceBackend()
	ctx := render.NewContext(render.NewPixmapTarget(32, 16), trace)
	data := &pipeline.RenderingData{
		Camera:      &cull.Camera{Forward: cull.Vec3{Z: 1}, Width: 32, Height: 16},
		CullResults: scene,
	}
	if err := r.RenderFrame(ctx, data); err != nil {
		fmt.Println("render failed:", err)
		return
	}

	for _, d := range trace.Draws() {
		fmt.Println(d.Name, d.Objects)
	}
	// Output:
	// Opaques [1 2]
	// Outline [1]
	// Transparents []
}

// ExampleFeature_Configure moves the pass to a later insertion point.
func ExampleFeature_Configure() {
	f := outline.NewFeature(outline.Settings{Event: pipeline.AfterRenderingOpaques})
	f.Configure(pipeline.AfterRenderingTransparents)
	f.Create()
	fmt.Println(f.Pass().Name(), f.Pass().Event())
	// Output: Outline AfterRenderingTransparents
}
