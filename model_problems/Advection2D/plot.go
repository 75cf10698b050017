package Advection2D

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"gonum.org/v1/gonum/floats"
)

// Plot charts the vertically averaged profile of u against x while stepping
func (c *Advection2D) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		NX, NY     = c.Field.NX, c.Field.NY
		pMin, pMax = float32(0), float32(1)
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024,
			float32(c.X.AtVec(0)), float32(c.X.AtVec(NX+1)), pMin, pMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
	})

	yAvg := make([]float64, NX+2)
	for i := range yAvg {
		yAvg[i] = floats.Sum(c.Field.U.RawRowView(i)) / float64(NY)
	}
	if err := c.chart.AddSeries("yAvg", c.X.RawVector().Data, yAvg,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
