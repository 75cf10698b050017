package Advection2D

import "math"

// Log-law profile constants. These are fixed model constants in grid
// coordinates - they do not scale with the domain extents or resolution.
const (
	uStar     = 0.2  // Friction velocity
	vonKarman = 0.41 // von Karman constant
	z0        = 1.0  // Reference length
)

// LogLawVelocity models the streamwise advection velocity as a logarithmic
// profile in y with a hard floor: zero at and below y = 1, which also keeps
// the log off non-positive input.
type LogLawVelocity struct{}

func (lv LogLawVelocity) StreamwiseVelocity(y float64) (Vx float64) {
	if y > 1 {
		Vx = (uStar / vonKarman) * math.Log(y/z0)
	}
	return
}

// ProxyVelocity is the single representative velocity used for CFL sizing,
// the profile evaluated at the domain's upper y bound without the floor.
// Known approximation: this is not the true maximum of StreamwiseVelocity
// over the evaluation points, and for ymax <= 1 it is not even positive;
// it is kept as-is for fidelity with the original time step derivation.
func (lv LogLawVelocity) ProxyVelocity(ymax float64) float64 {
	return (uStar / vonKarman) * math.Log(ymax/z0)
}
