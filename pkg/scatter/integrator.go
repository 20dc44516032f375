package scatter

import (
	"math"

	"github.com/foglab/go-volumetric-raymarcher/pkg/core"
)

// segmentEpsilon nudges attenuation marches slightly past the box exit so
// the final sample is not taken exactly on the boundary.
const segmentEpsilon = 1e-3

// Integrator evaluates the scattering kernel for rays against a fixed
// bounding volume, density field and configuration. It carries no mutable
// state, so a single Integrator is safe to share across goroutines.
type Integrator struct {
	bounds   core.AABB
	field    core.DensityField
	config   Config
	rayleigh core.Vec3 // cached per-channel coefficients
}

// NewIntegrator creates an integrator for the given medium.
func NewIntegrator(bounds core.AABB, field core.DensityField, config Config) *Integrator {
	return &Integrator{
		bounds:   bounds,
		field:    field,
		config:   config,
		rayleigh: config.RayleighCoefficients(),
	}
}

// Config returns the scattering configuration in use.
func (in *Integrator) Config() Config {
	return in.config
}

// Bounds returns the medium bounding volume.
func (in *Integrator) Bounds() core.AABB {
	return in.bounds
}

// OpticalDepth marches the segment p0 -> p1 in a fixed number of coarse
// steps, accumulating density * step length, and scales the sum by the
// 4π-weighted Rayleigh coefficients. The result is a per-channel optical
// depth; callers obtain transmittance as exp(-depth).
func (in *Integrator) OpticalDepth(p0, p1 core.Vec3) core.Vec3 {
	steps := in.config.LightSteps
	segment := p1.Subtract(p0)
	stepSize := segment.Length() / float64(steps)
	step := segment.Multiply(1.0 / float64(steps))

	sum := 0.0
	p := p0
	for i := 0; i < steps; i++ {
		sum += in.field.Density(p) * stepSize
		p = p.Add(step)
	}

	return in.rayleigh.Multiply(4 * math.Pi * sum)
}

// InScatter marches the primary view segment p0 -> p1, already clipped to
// the bounding volume. At each sample it attenuates the incoming sunlight
// by the transmittance toward the light and back toward the camera, both
// found by re-intersecting the bounding volume from the sample point.
// Step count is fixed: per-invocation cost stays uniform regardless of
// medium content.
func (in *Integrator) InScatter(p0, p1 core.Vec3) core.Vec3 {
	segment := p1.Subtract(p0)
	length := segment.Length()
	if length == 0 {
		return core.Vec3{}
	}

	steps := in.config.ViewSteps
	viewDir := segment.Multiply(1.0 / length)
	stepSize := length / float64(steps)
	sunDir := in.config.SunDirection
	backDir := viewDir.Negate()

	var accum core.Vec3
	p := p0
	for i := 0; i < steps; i++ {
		density := in.field.Density(p)

		_, lightFar := in.bounds.Intersect(core.NewRay(p, sunDir))
		_, viewFar := in.bounds.Intersect(core.NewRay(p, backDir))

		depth := in.OpticalDepth(p, p.Add(sunDir.Multiply(lightFar+segmentEpsilon)))
		depth = depth.Add(in.OpticalDepth(p, p.Add(backDir.Multiply(viewFar+segmentEpsilon))))
		transmittance := depth.Negate().Exp()

		accum = accum.Add(transmittance.Multiply(density * stepSize))
		p = p.Add(viewDir.Multiply(stepSize))
	}

	light := accum.MultiplyVec(in.rayleigh)

	cosTheta := viewDir.Dot(sunDir)
	phase := RayleighPhase(cosTheta)
	if in.config.MieIntensity > 0 {
		phase += in.config.MieIntensity * HenyeyGreenstein(cosTheta, in.config.MieAnisotropy)
	}
	return light.Multiply(phase)
}

// Sky returns the procedural background color for a view direction: the
// base sky color blended toward white by a sharp sun highlight.
func (in *Integrator) Sky(dir core.Vec3) core.Vec3 {
	cos := dir.Dot(in.config.SunDirection)
	highlight := math.Pow(max(0, min(1, cos)), in.config.SunSharpness)
	return core.Lerp(in.config.SkyColor, core.NewVec3(1, 1, 1), highlight)
}

// Composite blends the sky with the accumulated in-scattered light. The
// blend factor 1 - exp(-|scattered|) saturates smoothly: negligible
// scattering leaves pure sky, strong scattering tends to the full
// atmosphere color.
func (in *Integrator) Composite(dir, scattered core.Vec3) core.Vec3 {
	blend := 1 - math.Exp(-scattered.Length())
	return core.Lerp(in.Sky(dir), scattered, blend)
}

// Trace evaluates the whole per-pixel kernel for one ray: intersect the
// bounding volume, march the clipped segment, and composite against the
// sky. A ray that misses the volume returns the sky color unmodified.
func (in *Integrator) Trace(ray core.Ray) core.Vec3 {
	tNear, tFar := in.bounds.Intersect(ray)
	if tNear == core.BoxMiss && tFar == core.BoxMiss {
		return in.Sky(ray.Direction)
	}

	// Start at the ray origin when it is already inside the volume.
	if tNear < 0 {
		tNear = 0
	}

	scattered := in.InScatter(ray.At(tNear), ray.At(tFar))
	return in.Composite(ray.Direction, scattered)
}
