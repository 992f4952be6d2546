// Command toondemo renders a small scene through the outline pipeline.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/colornames"

	"github.com/gogpu/toon"
	"github.com/gogpu/toon/config"
	"github.com/gogpu/toon/cull"
	"github.com/gogpu/toon/outline"
	"github.com/gogpu/toon/pipeline"
	"github.com/gogpu/toon/render"
	"github.com/gogpu/toon/rendererlist"
)

func main() {
	var (
		configPath = flag.String("config", "", "settings file (.toml, .yaml)")
		event      = flag.String("event", "", "outline insertion point, overrides the config file")
		frames     = flag.Int("frames", 3, "number of frames to render")
		backend    = flag.String("backend", "raster", "playback backend (raster, trace)")
		output     = flag.String("output", "toon.png", "output file for the raster backend")
		width      = flag.Int("width", 320, "target width")
		height     = flag.Int("height", 240, "target height")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	toon.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	settings := config.Default()
	if *configPath != "" {
		s, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		settings = s
	}
	if *event != "" {
		ev, err := pipeline.ParsePassEvent(*event)
		if err != nil {
			log.Fatalf("Invalid -event: %v", err)
		}
		settings.Outline.Event = ev
	}

	b, err := render.NewBackend(*backend)
	if err != nil {
		log.Fatalf("Invalid -backend: %v (available: %v)", err, render.Backends())
	}

	r := pipeline.NewRenderer(pipeline.WithDefaultPasses())
	r.AddFeature(outline.NewFeature(settings.Outline))
	r.Setup()

	target := render.NewPixmapTarget(*width, *height)
	ctx := render.NewContext(target, b)
	camera := &cull.Camera{Name: "main", Forward: cull.Vec3{Z: 1}, Width: *width, Height: *height}

	for i := range *frames {
		data := &pipeline.RenderingData{
			Frame:       uint64(i),
			Camera:      camera,
			CullResults: buildScene(i, *width, *height),
		}
		if err := r.RenderFrame(ctx, data); err != nil {
			log.Fatalf("Frame %d failed: %v", i, err)
		}
	}

	stats := ctx.Stats()
	log.Printf("Rendered %d frames: %d lists, %d draws, outline at %v\n",
		r.Frames(), stats.ListsCreated, stats.Draws, settings.Outline.Event)

	if tb, ok := b.(*render.TraceBackend); ok {
		for _, e := range tb.Draws() {
			log.Printf("  %-12s objects=%v", e.Name, e.Objects)
		}
		return
	}

	if err := savePNG(*output, target.Image()); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%dx%d)\n", *output, *width, *height)
}

// buildScene returns a row of boxes that drifts one step per frame.
// Every other box carries an outline-tagged material and the last one is
// transparent. The middle box renders motion vectors after the first frame,
// so the outline pass skips it from then on.
func buildScene(frame, w, h int) *cull.Results {
	toonMat := &cull.Material{
		Name:         "toon",
		Passes:       []string{"UniversalForward", "Outline"},
		BaseColor:    colornames.Lightsteelblue,
		OutlineColor: colornames.Black,
		OutlineWidth: 3,
	}
	litMat := &cull.Material{
		Name:      "lit",
		Passes:    []string{"UniversalForward"},
		BaseColor: colornames.Salmon,
	}
	glassMat := &cull.Material{
		Name:         "glass",
		Passes:       []string{"UniversalForward", "Outline"},
		BaseColor:    color.RGBA{R: 60, G: 100, B: 128, A: 128}, // premultiplied
		OutlineColor: colornames.Navy,
		OutlineWidth: 2,
	}

	const count, moving = 5, 2
	size := min(w/(count+1), h/2)
	objs := make([]*cull.Object, 0, count)
	for i := range count {
		x := (i*w)/count + frame*4 + size/4
		y := h/2 - size/2 + (i%2)*size/4
		mat, queue := litMat, rendererlist.RenderQueueGeometry
		switch {
		case i == count-1:
			mat, queue = glassMat, rendererlist.RenderQueueTransparent
		case i%2 == 0:
			mat = toonMat
		}
		objs = append(objs, &cull.Object{
			ID:            uint32(i + 1),
			Name:          mat.Name,
			Position:      cull.Vec3{X: float32(x), Z: float32(10 + i)},
			Bounds:        image.Rect(x, y, x+size, y+size),
			RenderQueue:   queue,
			MotionVectors: i == moving && frame > 0,
			Materials:     []*cull.Material{mat},
		})
	}
	return cull.NewResults(objs...)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
