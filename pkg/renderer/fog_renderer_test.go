package renderer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
	"github.com/foglab/go-volumetric-raymarcher/pkg/medium"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scatter"
)

// stubScene is a minimal Scene for renderer tests. Step counts are kept
// low to keep the tests fast.
type stubScene struct {
	bounds core.AABB
	field  core.DensityField
	config scatter.Config
	camera CameraConfig
}

func (s stubScene) GetBounds() core.AABB             { return s.bounds }
func (s stubScene) GetMedium() core.DensityField     { return s.field }
func (s stubScene) GetScatterConfig() scatter.Config { return s.config }
func (s stubScene) GetCameraConfig() CameraConfig    { return s.camera }

func newStubScene() stubScene {
	config := scatter.DefaultConfig()
	config.ViewSteps = 16
	config.LightSteps = 2

	return stubScene{
		bounds: core.NewAABB(core.NewVec3(-10, -10, -10), core.NewVec3(10, 10, 10)),
		field:  medium.Uniform{Value: 0.5},
		config: config,
		camera: CameraConfig{
			Eye:       core.NewVec3(0, 0, -30),
			Direction: core.NewVec3(0, 0, 1),
			Up:        core.NewVec3(0, 1, 0),
		},
	}
}

func renderStub(t *testing.T, s stubScene, width, height int) (*FrameRenderer, core.FrameState) {
	t.Helper()
	fr, err := NewFrameRenderer(s, width, height, DefaultRenderOptions(), nil)
	if err != nil {
		t.Fatalf("NewFrameRenderer() error: %v", err)
	}
	camera := NewCamera(s.GetCameraConfig())
	return fr, camera.FrameState(uint32(width), uint32(height), 0, 0)
}

func TestNewFrameRendererValidation(t *testing.T) {
	s := newStubScene()

	if _, err := NewFrameRenderer(nil, 64, 64, DefaultRenderOptions(), nil); !errors.Is(err, ErrNoScene) {
		t.Errorf("nil scene error = %v, want ErrNoScene", err)
	}
	if _, err := NewFrameRenderer(s, 0, 64, DefaultRenderOptions(), nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero width error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := NewFrameRenderer(s, 64, -1, DefaultRenderOptions(), nil); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative height error = %v, want ErrInvalidDimensions", err)
	}
}

func TestRenderFrameDimensionsAndAlpha(t *testing.T) {
	const width, height = 40, 30
	fr, fs := renderStub(t, newStubScene(), width, height)

	img, stats := fr.RenderFrame(fs)

	if img.Bounds().Dx() != width || img.Bounds().Dy() != height {
		t.Fatalf("image bounds = %v, want %dx%d", img.Bounds(), width, height)
	}
	if stats.TotalPixels != width*height {
		t.Errorf("TotalPixels = %d, want %d", stats.TotalPixels, width*height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestRenderFrameDeterministic(t *testing.T) {
	fr, fs := renderStub(t, newStubScene(), 32, 24)

	first, _ := fr.RenderFrame(fs)
	second, _ := fr.RenderFrame(fs)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("identical frame states produced different images")
	}
}

func TestRenderFrameMissIsSky(t *testing.T) {
	s := newStubScene()
	// Medium box entirely behind the camera, sun behind the camera too,
	// so every ray misses and sees the base sky color with no sun disc.
	s.bounds = core.NewAABB(core.NewVec3(-1, -1, -50), core.NewVec3(1, 1, -45))
	s.config.SunDirection = core.NewVec3(0, 0, -1)
	s.config.SkyColor = core.NewVec3(0.25, 1.0, 0.0625)

	fr, fs := renderStub(t, s, 16, 16)
	img, _ := fr.RenderFrame(fs)

	// Gamma 2.0 on (0.25, 1.0, 0.0625) gives (0.5, 1.0, 0.25).
	wantR, wantG, wantB := uint8(127), uint8(255), uint8(63)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := img.RGBAAt(x, y)
			if c.R != wantR || c.G != wantG || c.B != wantB {
				t.Fatalf("pixel (%d,%d) = %v, want sky (%d,%d,%d)", x, y, c, wantR, wantG, wantB)
			}
		}
	}
}

func TestRenderFrameWorkerCounts(t *testing.T) {
	s := newStubScene()
	options := RenderOptions{TileSize: 8, NumWorkers: 3}

	fr, err := NewFrameRenderer(s, 32, 16, options, nil)
	if err != nil {
		t.Fatal(err)
	}
	camera := NewCamera(s.GetCameraConfig())

	_, stats := fr.RenderFrame(camera.FrameState(32, 16, 0, 0))

	if stats.Workers != 3 {
		t.Errorf("Workers = %d, want 3", stats.Workers)
	}
	if stats.TileCount != 8 {
		t.Errorf("TileCount = %d, want 8 for 32x16 at tile size 8", stats.TileCount)
	}
	if stats.RenderTime <= 0 {
		t.Errorf("RenderTime = %v, want positive", stats.RenderTime)
	}
}

func TestRenderStatsPixelsPerSecond(t *testing.T) {
	var zero RenderStats
	if got := zero.PixelsPerSecond(); got != 0 {
		t.Errorf("zero stats PixelsPerSecond() = %v, want 0", got)
	}
}
