package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
	"github.com/foglab/go-volumetric-raymarcher/pkg/medium"
	"github.com/foglab/go-volumetric-raymarcher/pkg/renderer"
	"github.com/foglab/go-volumetric-raymarcher/pkg/scatter"
)

// fileScene is the on-disk JSON layout. Scatter fields are pointers so
// that omitted keys keep their defaults.
type fileScene struct {
	Name   string `json:"name"`
	Bounds struct {
		Min [3]float64 `json:"min"`
		Max [3]float64 `json:"max"`
	} `json:"bounds"`
	Medium struct {
		Kind        string  `json:"kind"`
		InnerRadius float64 `json:"inner_radius"`
		ScaleRadius float64 `json:"scale_radius"`
		Falloff     float64 `json:"falloff"`
		Amplitude   float64 `json:"amplitude"`
		Frequency   float64 `json:"frequency"`
		Value       float64 `json:"value"`
	} `json:"medium"`
	Scatter struct {
		Wavelengths       *[3]float64 `json:"wavelengths"`
		RayleighIntensity *float64    `json:"rayleigh_intensity"`
		MieIntensity      *float64    `json:"mie_intensity"`
		MieAnisotropy     *float64    `json:"mie_anisotropy"`
		SunDirection      *[3]float64 `json:"sun_direction"`
		SkyColor          *[3]float64 `json:"sky_color"`
		SunSharpness      *float64    `json:"sun_sharpness"`
		LightSteps        *int        `json:"light_steps"`
		ViewSteps         *int        `json:"view_steps"`
	} `json:"scatter"`
	Camera struct {
		Eye       [3]float64 `json:"eye"`
		Direction [3]float64 `json:"direction"`
		Up        [3]float64 `json:"up"`
	} `json:"camera"`
}

// Load reads a scene description from a JSON file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: failed to read %q: %w", path, err)
	}

	var fs fileScene
	if err := json.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("scene: failed to parse %q: %w", path, err)
	}

	field, err := buildMedium(fs)
	if err != nil {
		return nil, err
	}

	bounds := core.NewAABB(vec3From(fs.Bounds.Min), vec3From(fs.Bounds.Max))
	if !bounds.IsValid() {
		return nil, fmt.Errorf("scene: bounds in %q are inverted or degenerate", path)
	}

	up := vec3From(fs.Camera.Up)
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}

	return &Scene{
		Name:    fs.Name,
		Bounds:  bounds,
		Medium:  field,
		Scatter: buildScatter(fs),
		Camera: renderer.CameraConfig{
			Eye:       vec3From(fs.Camera.Eye),
			Direction: vec3From(fs.Camera.Direction),
			Up:        up,
		},
	}, nil
}

func buildMedium(fs fileScene) (core.DensityField, error) {
	switch fs.Medium.Kind {
	case "shell":
		return medium.RadialShell{
			InnerRadius: fs.Medium.InnerRadius,
			ScaleRadius: fs.Medium.ScaleRadius,
			Falloff:     fs.Medium.Falloff,
		}, nil
	case "bands":
		return medium.SineBands{
			Amplitude: fs.Medium.Amplitude,
			Frequency: fs.Medium.Frequency,
		}, nil
	case "uniform":
		return medium.Uniform{Value: fs.Medium.Value}, nil
	default:
		return nil, fmt.Errorf("scene: unknown medium kind %q", fs.Medium.Kind)
	}
}

func buildScatter(fs fileScene) scatter.Config {
	config := scatter.DefaultConfig()

	if fs.Scatter.Wavelengths != nil {
		config.Wavelengths = vec3From(*fs.Scatter.Wavelengths)
	}
	if fs.Scatter.RayleighIntensity != nil {
		config.RayleighIntensity = *fs.Scatter.RayleighIntensity
	}
	if fs.Scatter.MieIntensity != nil {
		config.MieIntensity = *fs.Scatter.MieIntensity
	}
	if fs.Scatter.MieAnisotropy != nil {
		config.MieAnisotropy = *fs.Scatter.MieAnisotropy
	}
	if fs.Scatter.SunDirection != nil {
		config.SunDirection = vec3From(*fs.Scatter.SunDirection).Normalize()
	}
	if fs.Scatter.SkyColor != nil {
		config.SkyColor = vec3From(*fs.Scatter.SkyColor)
	}
	if fs.Scatter.SunSharpness != nil {
		config.SunSharpness = *fs.Scatter.SunSharpness
	}
	if fs.Scatter.LightSteps != nil {
		config.LightSteps = *fs.Scatter.LightSteps
	}
	if fs.Scatter.ViewSteps != nil {
		config.ViewSteps = *fs.Scatter.ViewSteps
	}

	return config
}

func vec3From(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
