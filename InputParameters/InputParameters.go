package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. All eighteen options are
// fixed for the duration of a run; there is no dynamic reconfiguration.
// Note that velx is reported for diagnostics only - the streamwise velocity
// used during stepping comes from the log-law profile, not this constant.
type AdvectionParameters struct {
	Title     string  `json:"Title" yaml:"Title"`
	NX        int     `json:"NX" yaml:"NX"` // Number of x cells, not counting ghost cells
	NY        int     `json:"NY" yaml:"NY"` // Number of y cells, not counting ghost cells
	Xmin      float64 `json:"xmin" yaml:"xmin"`
	Xmax      float64 `json:"xmax" yaml:"xmax"`
	Ymin      float64 `json:"ymin" yaml:"ymin"`
	Ymax      float64 `json:"ymax" yaml:"ymax"`
	X0        float64 `json:"x0" yaml:"x0"` // Centre of the Gaussian initial conditions
	Y0        float64 `json:"y0" yaml:"y0"`
	SigmaX    float64 `json:"sigmax" yaml:"sigmax"` // Width of the Gaussian initial conditions
	SigmaY    float64 `json:"sigmay" yaml:"sigmay"`
	BvalLeft  float64 `json:"bval_left" yaml:"bval_left"` // Dirichlet boundary values
	BvalRight float64 `json:"bval_right" yaml:"bval_right"`
	BvalLower float64 `json:"bval_lower" yaml:"bval_lower"`
	BvalUpper float64 `json:"bval_upper" yaml:"bval_upper"`
	CFL       float64 `json:"CFL" yaml:"CFL"`
	Nsteps    int     `json:"nsteps" yaml:"nsteps"`
	Velx      float64 `json:"velx" yaml:"velx"`
	Vely      float64 `json:"vely" yaml:"vely"`
}

// NewAdvectionParameters returns the historical default case: a 1000x1000
// grid over [0,30]x[0,30] advecting a Gaussian for 800 steps.
func NewAdvectionParameters() *AdvectionParameters {
	return &AdvectionParameters{
		Title:  "2D Advection",
		NX:     1000,
		NY:     1000,
		Xmin:   0.0,
		Xmax:   30.0,
		Ymin:   0.0,
		Ymax:   30.0,
		X0:     3.0,
		Y0:     15.0,
		SigmaX: 1.0,
		SigmaY: 5.0,
		CFL:    0.9,
		Nsteps: 800,
		Velx:   1.0,
		Vely:   0.0,
	}
}

func (ip *AdvectionParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Validate checks the positivity invariants the solver assumes. Stability
// and divide-by-zero conditions beyond these are deliberately not checked.
func (ip *AdvectionParameters) Validate() error {
	if ip.NX <= 0 || ip.NY <= 0 {
		return fmt.Errorf("grid resolution must be positive, have NX[%d], NY[%d]", ip.NX, ip.NY)
	}
	if ip.Xmax <= ip.Xmin || ip.Ymax <= ip.Ymin {
		return fmt.Errorf("domain extents must have positive width, have x[%g,%g], y[%g,%g]",
			ip.Xmin, ip.Xmax, ip.Ymin, ip.Ymax)
	}
	if ip.SigmaX == 0 || ip.SigmaY == 0 {
		return fmt.Errorf("gaussian widths must be nonzero, have sigmax[%g], sigmay[%g]", ip.SigmaX, ip.SigmaY)
	}
	if ip.CFL <= 0 {
		return fmt.Errorf("CFL number must be positive, have [%g]", ip.CFL)
	}
	if ip.Nsteps < 0 {
		return fmt.Errorf("number of time steps must be non-negative, have [%d]", ip.Nsteps)
	}
	return nil
}

func (ip *AdvectionParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d x %d]\t\t= Grid resolution\n", ip.NX, ip.NY)
	fmt.Printf("[%g,%g] x [%g,%g]\t= Domain\n", ip.Xmin, ip.Xmax, ip.Ymin, ip.Ymax)
	fmt.Printf("(%g,%g)\t\t\t= Gaussian centre\n", ip.X0, ip.Y0)
	fmt.Printf("(%g,%g)\t\t\t= Gaussian width\n", ip.SigmaX, ip.SigmaY)
	fmt.Printf("[%g %g %g %g]\t\t= BCs (left right lower upper)\n",
		ip.BvalLeft, ip.BvalRight, ip.BvalLower, ip.BvalUpper)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("[%d]\t\t\t= Time steps\n", ip.Nsteps)
	fmt.Printf("(%g,%g)\t\t\t= Velocity (velx vely)\n", ip.Velx, ip.Vely)
}
