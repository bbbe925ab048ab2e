package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// ZDT1 has a convex Pareto front
type ZDT1 struct {
	numVars int
}

func NewZDT1(numVars int) *ZDT1 {
	return &ZDT1{numVars: numVars}
}

func (p *ZDT1) Name() string {
	return "ZDT1"
}

func (p *ZDT1) NumObjectives() int {
	return 2
}

func (p *ZDT1) Evaluate(x *mat.Dense) *mat.Dense {
	_, k := x.Dims()
	f := mat.NewDense(2, k, nil)
	for c := 0; c < k; c++ {
		x1 := x.At(0, c)
		g := 1.0
		for i := 1; i < p.numVars; i++ {
			g += 9.0 * x.At(i, c) / float64(p.numVars-1)
		}
		f.Set(0, c, x1)
		f.Set(1, c, g*(1.0-math.Sqrt(x1/g)))
	}
	return f
}

func (p *ZDT1) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		points[i] = framework.ObjectiveSpacePoint{
			x, 1.0 - math.Sqrt(x),
		}
	}
	return points
}
