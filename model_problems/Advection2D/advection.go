package Advection2D

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/advect2d/InputParameters"
	"github.com/notargets/advect2d/utils"
)

/*
Solves the 2D scalar advection equation:

	du/dt + Vx(y) * du/dx + vely * du/dy = 0

on a structured, cell-centered rectangular grid with one ghost cell per
boundary per axis. Vx is the log-law streamwise profile, vely a constant.
Spatial derivatives are backward differences in both directions, applied
unconditionally - there is no dynamic upwind switching on the velocity sign.
Time integration is explicit Euler with a constant CFL-derived step.
*/
type Advection2D struct {
	// Input parameters
	IP         *InputParameters.AdvectionParameters
	DX, DY, DT float64
	X, Y       *mat.VecDense // Cell-centered axis coordinates, length N+2
	Field      *utils.Field
	Velocity   LogLawVelocity
	StepCount  int
	// Partitions of the row, column and interior-row index spaces - each
	// grid loop is an unordered parallel map over one of these
	RowParts, ColParts, IntParts *utils.PartitionMap
	PlotOnce                     sync.Once
	chart                        *chart2d.Chart2D
	colorMap                     *utils2.ColorMap
}

func NewAdvection2D(ip *InputParameters.AdvectionParameters, ProcLimit ...int) (c *Advection2D) {
	if err := ip.Validate(); err != nil {
		panic(err)
	}
	var (
		NX, NY = ip.NX, ip.NY
		dx     = (ip.Xmax - ip.Xmin) / float64(NX)
		dy     = (ip.Ymax - ip.Ymin) / float64(NY)
		NP     = runtime.GOMAXPROCS(0)
	)
	if len(ProcLimit) != 0 && ProcLimit[0] != 0 {
		NP = ProcLimit[0]
	}
	c = &Advection2D{
		IP:       ip,
		DX:       dx,
		DY:       dy,
		X:        utils.NewVecCellCentered(NX, ip.Xmin, ip.Xmax),
		Y:        utils.NewVecCellCentered(NY, ip.Ymin, ip.Ymax),
		Field:    utils.NewField(NX, NY),
		RowParts: utils.NewPartitionMap(NP, NX+2),
		ColParts: utils.NewPartitionMap(NP, NY+2),
		IntParts: utils.NewPartitionMap(NP, NX),
	}
	// Time step from the CFL condition. The streamwise velocity used for
	// stability sizing is a single proxy evaluated at ymax, not the true
	// per-point maximum of the profile over the domain - preserved from the
	// original formulation, see the known approximation note on ProxyVelocity.
	c.DT = ip.CFL / (math.Abs(c.Velocity.ProxyVelocity(ip.Ymax))/dx + math.Abs(ip.Vely)/dy)
	c.InitializeSolution()
	return
}

// InitializeSolution fills u with the Gaussian profile centered at (x0,y0),
// every grid point including ghost cells. Points are independent, so the
// rows are filled as an unordered parallel map.
func (c *Advection2D) InitializeSolution() {
	var (
		ip               = c.IP
		sigmax2, sigmay2 = ip.SigmaX * ip.SigmaX, ip.SigmaY * ip.SigmaY
		_, nc            = c.Field.Dims()
	)
	c.RowParts.RunParallel(func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			for j := 0; j < nc; j++ {
				x2 := (c.X.AtVec(i) - ip.X0) * (c.X.AtVec(i) - ip.X0)
				y2 := (c.Y.AtVec(j) - ip.Y0) * (c.Y.AtVec(j) - ip.Y0)
				c.Field.U.Set(i, j, math.Exp(-(x2/(2*sigmax2) + y2/(2*sigmay2))))
			}
		}
	})
}

// ApplyBoundaries overwrites the ghost rows and columns with the Dirichlet
// boundary values. The left/right pass runs before the lower/upper pass, so
// the four corner ghost cells end up holding the lower/upper values. The
// interior update never touches ghost cells, which makes this idempotent
// within a step; it must run before the derivative pass reads edge neighbors.
func (c *Advection2D) ApplyBoundaries() {
	var (
		ip     = c.IP
		NX, NY = c.Field.NX, c.Field.NY
	)
	c.ColParts.RunParallel(func(jMin, jMax int) {
		for j := jMin; j < jMax; j++ {
			c.Field.U.Set(0, j, ip.BvalLeft)
			c.Field.U.Set(NX+1, j, ip.BvalRight)
		}
	})
	c.RowParts.RunParallel(func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			c.Field.U.Set(i, 0, ip.BvalLower)
			c.Field.U.Set(i, NY+1, ip.BvalUpper)
		}
	})
}

// CalculateDudt computes the rate of change of u over the interior points
// with backward differences, reading only the pre-update solution. The
// streamwise velocity is evaluated at the raw index-scaled coordinate j*dy,
// which sits half a cell above the cell center y[j] - preserved as-is from
// the original formulation.
func (c *Advection2D) CalculateDudt() {
	var (
		vely   = c.IP.Vely
		NY     = c.Field.NY
		u      = c.Field.U
		dudt   = c.Field.Dudt
		dx, dy = c.DX, c.DY
	)
	c.IntParts.RunParallel(func(kMin, kMax int) {
		for i := kMin + 1; i < kMax+1; i++ {
			for j := 1; j < NY+1; j++ {
				Vx := c.Velocity.StreamwiseVelocity(float64(j) * dy)
				dudt.Set(i, j,
					-(Vx*(u.At(i, j)-u.At(i-1, j))/dx + vely*(u.At(i, j)-u.At(i, j-1))/dy))
			}
		}
	})
}

// UpdateSolution advances u from t to t+dt over the interior points
func (c *Advection2D) UpdateSolution() {
	var (
		NY   = c.Field.NY
		u    = c.Field.U
		dudt = c.Field.Dudt
		dt   = c.DT
	)
	c.IntParts.RunParallel(func(kMin, kMax int) {
		for i := kMin + 1; i < kMax+1; i++ {
			for j := 1; j < NY+1; j++ {
				u.Set(i, j, u.At(i, j)+dudt.At(i, j)*dt)
			}
		}
	})
}

// Step performs one full update cycle: boundary conditions, the complete
// derivative pass, then the explicit Euler update. RunParallel joins all
// goroutines before returning, so the whole dudt array is computed from the
// unmodified u before any element of u changes - fusing the two passes would
// make the result depend on traversal order.
func (c *Advection2D) Step() {
	c.ApplyBoundaries()
	c.CalculateDudt()
	c.UpdateSolution()
	c.StepCount++
}

func (c *Advection2D) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		logFrequency = 50
		Nsteps       = c.IP.Nsteps
	)
	c.PrintInitialization()
	elapsed := time.Duration(0)
	var start time.Time
	for m := 0; m < Nsteps; m++ {
		start = time.Now()
		c.Step()
		elapsed += time.Now().Sub(start)
		c.Plot(showGraph, graphDelay)
		if m%logFrequency == 0 || m == Nsteps-1 {
			c.PrintUpdate(m)
		}
	}
	c.PrintFinal(elapsed)
}

func (c *Advection2D) PrintInitialization() {
	var (
		ip = c.IP
	)
	fmt.Printf("Grid spacing dx     = %g\n", c.DX)
	fmt.Printf("Grid spacing dy     = %g\n", c.DY)
	fmt.Printf("CFL number          = %g\n", ip.CFL)
	fmt.Printf("Time step           = %g\n", c.DT)
	fmt.Printf("No. of time steps   = %d\n", ip.Nsteps)
	fmt.Printf("End time            = %g\n", c.DT*float64(ip.Nsteps))
	fmt.Printf("Distance advected x = %g\n", ip.Velx*c.DT*float64(ip.Nsteps))
	fmt.Printf("Distance advected y = %g\n", ip.Vely*c.DT*float64(ip.Nsteps))
	fmt.Printf("Using %d go routines in parallel\n\n", c.RowParts.ParallelDegree)
}

func (c *Advection2D) PrintUpdate(steps int) {
	if c.Field.HasNaN() {
		// Diagnostic only - instability is reported, never corrected
		fmt.Printf("step %d: solution has diverged (NaN present)\n", steps)
		return
	}
	uMin, uMax := c.Field.MinMax()
	fmt.Printf("step = %5d, umin = %8.4f, umax = %8.4f\n", steps, uMin, uMax)
}

func (c *Advection2D) PrintFinal(elapsed time.Duration) {
	rate := 0.
	if c.StepCount != 0 {
		rate = float64(elapsed.Microseconds()) / float64(c.StepCount)
	}
	fmt.Printf("\nTotal time: %8.5f seconds, time/step: %8.5f microseconds\n",
		float64(elapsed)/1e9, rate)
}
