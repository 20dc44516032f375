package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestListIncludesPresets(t *testing.T) {
	names := List()

	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}

	for _, want := range []string{"default", "turbulence"} {
		if !found[want] {
			t.Errorf("List() = %v, missing preset %q", names, want)
		}
	}
}

func TestNewUnknownScene(t *testing.T) {
	_, err := New("nope")
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("New(nope) error = %v, want ErrUnknownScene", err)
	}
}

func TestPresetsAreWellFormed(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name)
			if err != nil {
				t.Fatalf("New(%q) error: %v", name, err)
			}

			if !s.GetBounds().IsValid() {
				t.Errorf("scene %q has invalid bounds %+v", name, s.GetBounds())
			}
			if s.GetMedium() == nil {
				t.Errorf("scene %q has no medium", name)
			}
			if s.GetCameraConfig().Direction.LengthSquared() == 0 {
				t.Errorf("scene %q has zero camera direction", name)
			}

			config := s.GetScatterConfig()
			if config.ViewSteps <= 0 || config.LightSteps <= 0 {
				t.Errorf("scene %q has non-positive step counts: view=%d light=%d",
					name, config.ViewSteps, config.LightSteps)
			}
		})
	}
}

func TestLoadSceneFile(t *testing.T) {
	data := `{
		"name": "mist",
		"bounds": {"min": [-5, -5, -5], "max": [5, 5, 5]},
		"medium": {"kind": "uniform", "value": 0.25},
		"scatter": {
			"rayleigh_intensity": 0.2,
			"view_steps": 64
		},
		"camera": {
			"eye": [0, 0, -10],
			"direction": [0, 0, 1]
		}
	}`
	path := filepath.Join(t.TempDir(), "mist.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if s.Name != "mist" {
		t.Errorf("Name = %q, want mist", s.Name)
	}
	if got := s.Medium.Density(s.Bounds.Center()); got != 0.25 {
		t.Errorf("uniform density = %v, want 0.25", got)
	}
	if s.Scatter.RayleighIntensity != 0.2 {
		t.Errorf("RayleighIntensity = %v, want 0.2", s.Scatter.RayleighIntensity)
	}
	if s.Scatter.ViewSteps != 64 {
		t.Errorf("ViewSteps = %v, want 64", s.Scatter.ViewSteps)
	}

	// Omitted keys keep their defaults.
	if s.Scatter.LightSteps != 8 {
		t.Errorf("LightSteps = %v, want default 8", s.Scatter.LightSteps)
	}
	if s.Camera.Up.Y != 1 {
		t.Errorf("Up = %+v, want default +Y", s.Camera.Up)
	}
}

func TestLoadRejectsBadScenes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "unknown medium kind",
			data: `{"bounds": {"min": [0,0,0], "max": [1,1,1]}, "medium": {"kind": "plasma"}}`,
		},
		{
			name: "inverted bounds",
			data: `{"bounds": {"min": [1,1,1], "max": [0,0,0]}, "medium": {"kind": "uniform", "value": 1}}`,
		},
		{
			name: "malformed json",
			data: `{"bounds": `,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scene.json")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Load() succeeded on missing file, want error")
	}
}
