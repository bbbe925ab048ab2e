package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// ZDT2 has a non-convex Pareto front
type ZDT2 struct {
	numVars int
}

func NewZDT2(numVars int) *ZDT2 {
	return &ZDT2{numVars: numVars}
}

func (p *ZDT2) Name() string {
	return "ZDT2"
}

func (p *ZDT2) NumObjectives() int {
	return 2
}

func (p *ZDT2) Evaluate(x *mat.Dense) *mat.Dense {
	_, k := x.Dims()
	f := mat.NewDense(2, k, nil)
	for c := 0; c < k; c++ {
		x1 := x.At(0, c)
		g := 1.0
		for i := 1; i < p.numVars; i++ {
			g += 9.0 * x.At(i, c) / float64(p.numVars-1)
		}
		// Note: ZDT2 uses (1 - (x1/g)^2) instead of sqrt
		f.Set(0, c, x1)
		f.Set(1, c, g*(1.0-math.Pow(x1/g, 2)))
	}
	return f
}

func (p *ZDT2) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - x*x,
		}
	}
	return points
}
