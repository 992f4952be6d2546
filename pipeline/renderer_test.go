package pipeline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/toon/command"
	"github.com/gogpu/toon/cull"
	"github.com/gogpu/toon/rendererlist"
)

// fakeContext records the order of executed buffers by name.
type fakeContext struct {
	buffers   []string
	submits   int
	submitErr error
}

func (c *fakeContext) CreateRendererList(desc *rendererlist.Desc) *rendererlist.List {
	return rendererlist.Build(desc)
}

func (c *fakeContext) ExecuteCommandBuffer(buf *command.Buffer) {
	c.buffers = append(c.buffers, buf.Name())
}

func (c *fakeContext) Submit() error {
	c.submits++
	return c.submitErr
}

// namedPass executes a single empty buffer named after itself.
type namedPass struct {
	name  string
	event PassEvent
}

func (p *namedPass) Name() string     { return p.name }
func (p *namedPass) Event() PassEvent { return p.event }
func (p *namedPass) Execute(ctx Context, _ *RenderingData) {
	ctx.ExecuteCommandBuffer(command.NewBuffer(p.name))
}

type fakeFeature struct {
	name    string
	passes  []*namedPass
	created int
	added   int
}

func (f *fakeFeature) Name() string { return f.name }
func (f *fakeFeature) Create()      { f.created++ }
func (f *fakeFeature) AddRenderPasses(q PassQueue, _ *RenderingData) {
	f.added++
	for _, p := range f.passes {
		q.EnqueuePass(p)
	}
}

func TestRendererNotSetup(t *testing.T) {
	r := NewRenderer()
	if err := r.RenderFrame(&fakeContext{}, nil); !errors.Is(err, ErrNotSetup) {
		t.Errorf("RenderFrame() before Setup = %v, want ErrNotSetup", err)
	}

	r.Setup()
	r.AddFeature(&fakeFeature{name: "late"})
	if err := r.RenderFrame(&fakeContext{}, nil); !errors.Is(err, ErrNotSetup) {
		t.Errorf("RenderFrame() after AddFeature = %v, want ErrNotSetup", err)
	}
}

func TestRendererSetupCreatesFeatures(t *testing.T) {
	a, b := &fakeFeature{name: "a"}, &fakeFeature{name: "b"}
	r := NewRenderer()
	r.AddFeature(a)
	r.AddFeature(b)
	r.Setup()

	if a.created != 1 || b.created != 1 {
		t.Errorf("Create calls = %d/%d, want 1/1", a.created, b.created)
	}
	if len(r.Features()) != 2 {
		t.Errorf("Features() = %d, want 2", len(r.Features()))
	}
}

func TestRendererOrdersByEvent(t *testing.T) {
	f1 := &fakeFeature{name: "f1", passes: []*namedPass{
		{"late", AfterRenderingTransparents},
		{"early-a", BeforeRenderingOpaques},
	}}
	f2 := &fakeFeature{name: "f2", passes: []*namedPass{
		{"early-b", BeforeRenderingOpaques},
		{"shadow", BeforeRenderingShadows},
	}}

	r := NewRenderer()
	r.AddFeature(f1)
	r.AddFeature(f2)
	r.Setup()

	ctx := &fakeContext{}
	if err := r.RenderFrame(ctx, &RenderingData{}); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}

	want := []string{"shadow", "early-a", "early-b", "late"}
	if diff := cmp.Diff(want, ctx.buffers); diff != "" {
		t.Errorf("execution order mismatch (-want +got):\n%s", diff)
	}
	var names []string
	for _, p := range r.Passes() {
		names = append(names, p.Name())
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Passes() mismatch (-want +got):\n%s", diff)
	}
	if ctx.submits != 1 {
		t.Errorf("Submit calls = %d, want 1", ctx.submits)
	}
}

func TestRendererResetsQueueEachFrame(t *testing.T) {
	f := &fakeFeature{name: "f", passes: []*namedPass{{"p", AfterRenderingOpaques}}}
	r := NewRenderer()
	r.AddFeature(f)
	r.Setup()

	ctx := &fakeContext{}
	for range 3 {
		if err := r.RenderFrame(ctx, nil); err != nil {
			t.Fatalf("RenderFrame() = %v", err)
		}
	}
	if len(r.Passes()) != 1 {
		t.Errorf("Passes() = %d after 3 frames, want 1", len(r.Passes()))
	}
	if f.added != 3 || len(ctx.buffers) != 3 || ctx.submits != 3 {
		t.Errorf("added=%d buffers=%d submits=%d, want 3 each", f.added, len(ctx.buffers), ctx.submits)
	}
	if r.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", r.Frames())
	}
}

func TestRendererDefaultPasses(t *testing.T) {
	f := &fakeFeature{name: "f", passes: []*namedPass{
		{"custom-transparent", BeforeRenderingTransparents},
		{"custom-first", BeforeRendering},
	}}
	r := NewRenderer(WithDefaultPasses(), WithPool(command.NewPool()))
	r.AddFeature(f)
	r.Setup()

	ctx := &fakeContext{}
	if err := r.RenderFrame(ctx, &RenderingData{}); err != nil {
		t.Fatalf("RenderFrame() = %v", err)
	}
	want := []string{"clear", "custom-first", "Opaques", "Transparents", "custom-transparent"}
	if diff := cmp.Diff(want, ctx.buffers); diff != "" {
		t.Errorf("execution order mismatch (-want +got):\n%s", diff)
	}
}

func TestRendererSubmitError(t *testing.T) {
	r := NewRenderer()
	r.Setup()
	boom := errors.New("boom")
	if err := r.RenderFrame(&fakeContext{submitErr: boom}, &RenderingData{Frame: 7}); !errors.Is(err, boom) {
		t.Errorf("RenderFrame() = %v, want wrapped boom", err)
	}
}

func TestRendererIgnoresNilPass(t *testing.T) {
	r := NewRenderer()
	r.EnqueuePass(nil)
	if len(r.Passes()) != 0 {
		t.Error("EnqueuePass(nil) should be ignored")
	}
}

func TestDrawObjectsPass(t *testing.T) {
	lit := &cull.Material{Name: "lit", Passes: []string{"UniversalForward"}}
	unlit := &cull.Material{Name: "unlit", Passes: []string{"SRPDefaultUnlit"}}
	outline := &cull.Material{Name: "outline", Passes: []string{"Outline"}}

	res := cull.NewResults(
		&cull.Object{ID: 1, Position: cull.Vec3{Z: 9}, RenderQueue: rendererlist.RenderQueueGeometry, Materials: []*cull.Material{lit}},
		&cull.Object{ID: 2, Position: cull.Vec3{Z: 1}, RenderQueue: rendererlist.RenderQueueGeometry, Materials: []*cull.Material{unlit}},
		&cull.Object{ID: 3, Position: cull.Vec3{Z: 5}, RenderQueue: rendererlist.RenderQueueTransparent, Materials: []*cull.Material{lit}},
		&cull.Object{ID: 4, Position: cull.Vec3{Z: 8}, RenderQueue: rendererlist.RenderQueueTransparent, Materials: []*cull.Material{lit}},
		&cull.Object{ID: 5, Position: cull.Vec3{Z: 2}, RenderQueue: rendererlist.RenderQueueGeometry, Materials: []*cull.Material{outline}},
	)
	data := &RenderingData{Camera: &cull.Camera{Forward: cull.Vec3{Z: 1}}, CullResults: res}

	tests := []struct {
		pass *DrawObjectsPass
		want []uint32
	}{
		{NewOpaquePass(command.NewPool()), []uint32{2, 1}},
		{NewTransparentPass(command.NewPool()), []uint32{4, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.pass.Name(), func(t *testing.T) {
			ctx := &listContext{}
			tt.pass.Execute(ctx, data)
			var got []uint32
			for _, it := range ctx.lists[0].Items() {
				got = append(got, it.Object.ID)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("draw order mismatch (-want +got):\n%s", diff)
			}
			if ctx.cmds != 3 {
				t.Errorf("recorded %d commands, want 3", ctx.cmds)
			}
		})
	}
}

type listContext struct {
	lists []*rendererlist.List
	cmds  int
}

func (c *listContext) CreateRendererList(desc *rendererlist.Desc) *rendererlist.List {
	l := rendererlist.Build(desc)
	c.lists = append(c.lists, l)
	return l
}

func (c *listContext) ExecuteCommandBuffer(buf *command.Buffer) { c.cmds += buf.Len() }
func (c *listContext) Submit() error                            { return nil }
