package scatter

import "math"

// RayleighPhase is the stylized Rayleigh phase term 3/4 + cos²θ, where θ
// is the angle between the view and light directions.
func RayleighPhase(cosTheta float64) float64 {
	return 0.75 + cosTheta*cosTheta
}

// HenyeyGreenstein is the Mie phase approximation with anisotropy g in
// (-1, 1); negative g favors back-scattering.
func HenyeyGreenstein(cosTheta, g float64) float64 {
	g2 := g * g
	denom := 1 + g2 - 2*g*cosTheta
	return (1 - g2) / (4 * math.Pi * denom * math.Sqrt(denom))
}
