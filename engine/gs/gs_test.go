package gs

import (
	"errors"
	"testing"

	"github.com/Ang-Andrew/emotion-cube/engine/model"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer/mesh_provider"
	"github.com/Ang-Andrew/emotion-cube/engine/renderer/pipeline"
)

// fakeRenderer records renderer calls so the raster stage can be exercised
// without a GPU device.
type fakeRenderer struct {
	pipelines map[string]pipeline.Pipeline

	beginErr error

	initCalls  int
	writeCalls int
	lastData   []byte

	draws     []string
	ends      int
	presents  int
	aborts    int
	resizes   [][2]int
	released  bool
	drawError error
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) Resize(width, height int) {
	f.resizes = append(f.resizes, [2]int{width, height})
}

func (f *fakeRenderer) InitMeshBuffers(provider mesh_provider.MeshProvider, vertexData []byte, vertexCount int) error {
	f.initCalls++
	f.lastData = vertexData
	provider.SetVertexCount(vertexCount)
	return nil
}

func (f *fakeRenderer) WriteVertexBuffer(provider mesh_provider.MeshProvider, vertexData []byte) {
	f.writeCalls++
	f.lastData = vertexData
}

func (f *fakeRenderer) BeginFrame() error {
	return f.beginErr
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider mesh_provider.MeshProvider) error {
	if f.drawError != nil {
		return f.drawError
	}
	f.draws = append(f.draws, pipelineKey)
	return nil
}

func (f *fakeRenderer) EndFrame() {
	f.ends++
}

func (f *fakeRenderer) Present() {
	f.presents++
}

func (f *fakeRenderer) AbortFrame() {
	f.aborts++
}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {}

func (f *fakeRenderer) Release() {
	f.released = true
}

func shadedCube(t *testing.T) model.DisplayList {
	t.Helper()
	dl := make(model.DisplayList, 36)
	for i := range dl {
		dl[i] = model.GsVertex{Pos: [4]float32{0, 0, 0.5, 1}, Color: [4]float32{1, 1, 1, 1}}
	}
	return dl
}

func TestNewRasterizerRegistersPassthroughPipeline(t *testing.T) {
	fake := newFakeRenderer()
	if _, err := NewRasterizer(fake); err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	if fake.pipelines[PipelineKey] == nil {
		t.Fatalf("pipeline %q was not registered", PipelineKey)
	}
}

func TestRenderDrawsFullDisplayList(t *testing.T) {
	fake := newFakeRenderer()
	g, err := NewRasterizer(fake)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	dl := shadedCube(t)
	if err := g.Render(dl); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if len(fake.lastData) != dl.Len()*model.GsVertexSize {
		t.Fatalf("uploaded %d bytes, want %d", len(fake.lastData), dl.Len()*model.GsVertexSize)
	}
	if len(fake.draws) != 1 || fake.draws[0] != PipelineKey {
		t.Fatalf("unexpected draw calls: %v", fake.draws)
	}
	if fake.ends != 1 || fake.presents != 1 {
		t.Fatalf("frame was not ended and presented exactly once: ends=%d presents=%d", fake.ends, fake.presents)
	}
}

func TestRenderReusesBufferAcrossFrames(t *testing.T) {
	fake := newFakeRenderer()
	g, err := NewRasterizer(fake)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	dl := shadedCube(t)
	for i := 0; i < 3; i++ {
		if err := g.Render(dl); err != nil {
			t.Fatalf("Render %d: %v", i, err)
		}
	}

	// First frame allocates, subsequent frames stream into the same buffer.
	if fake.initCalls != 1 {
		t.Fatalf("expected 1 buffer allocation, got %d", fake.initCalls)
	}
	if fake.writeCalls != 2 {
		t.Fatalf("expected 2 streamed writes, got %d", fake.writeCalls)
	}
}

func TestRenderSurfaceLoss(t *testing.T) {
	fake := newFakeRenderer()
	g, err := NewRasterizer(fake)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	fake.beginErr = errors.New("surface outdated")
	err = g.Render(shadedCube(t))
	if !errors.Is(err, ErrSurfaceLost) {
		t.Fatalf("expected ErrSurfaceLost, got %v", err)
	}
	if fake.presents != 0 {
		t.Fatalf("a lost frame must not be presented, got %d presents", fake.presents)
	}
}

func TestRenderDrawFailureAbortsFrame(t *testing.T) {
	fake := newFakeRenderer()
	g, err := NewRasterizer(fake)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	fake.drawError = errors.New("pipeline missing")
	err = g.Render(shadedCube(t))
	if err == nil {
		t.Fatal("expected draw error")
	}
	// A frame that could not encode its draw is dropped whole: nothing is
	// submitted or presented, and the acquired surface is released so the
	// next frame can begin.
	if fake.ends != 0 || fake.presents != 0 {
		t.Fatalf("failed draw reached the display: ends=%d presents=%d", fake.ends, fake.presents)
	}
	if fake.aborts != 1 {
		t.Fatalf("expected 1 aborted frame, got %d", fake.aborts)
	}

	fake.drawError = nil
	if err := g.Render(shadedCube(t)); err != nil {
		t.Fatalf("Render after aborted frame: %v", err)
	}
	if fake.presents != 1 {
		t.Fatalf("recovered frame was not presented, got %d presents", fake.presents)
	}
}

func TestResizeDelegatesToRenderer(t *testing.T) {
	fake := newFakeRenderer()
	g, err := NewRasterizer(fake)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	g.Resize(1280, 896)
	if len(fake.resizes) != 1 || fake.resizes[0] != ([2]int{1280, 896}) {
		t.Fatalf("unexpected resize calls: %v", fake.resizes)
	}
}

func TestReleaseFreesRenderer(t *testing.T) {
	fake := newFakeRenderer()
	g, err := NewRasterizer(fake)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}

	g.Release()
	if !fake.released {
		t.Fatal("renderer was not released")
	}
}
