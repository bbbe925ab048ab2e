package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// ZDT3 has a disconnected Pareto front
type ZDT3 struct {
	numVars int
}

func NewZDT3(numVars int) *ZDT3 {
	return &ZDT3{numVars: numVars}
}

func (p *ZDT3) Name() string {
	return "ZDT3"
}

func (p *ZDT3) NumObjectives() int {
	return 2
}

func (p *ZDT3) Evaluate(x *mat.Dense) *mat.Dense {
	_, k := x.Dims()
	f := mat.NewDense(2, k, nil)
	for c := 0; c < k; c++ {
		x1 := x.At(0, c)
		g := 1.0
		for i := 1; i < p.numVars; i++ {
			g += 9.0 * x.At(i, c) / float64(p.numVars-1)
		}
		// The sin term disconnects the front
		h := 1.0 - math.Sqrt(x1/g) - (x1/g)*math.Sin(10*math.Pi*x1)
		f.Set(0, c, x1)
		f.Set(1, c, g*h)
	}
	return f
}

func (p *ZDT3) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *ZDT3) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// Generate enough points to properly show the disconnected nature
	points := make([]framework.ObjectiveSpacePoint, numPoints)
	for i := 0; i < numPoints; i++ {
		x := float64(i) / float64(numPoints-1)
		f2 := 1.0 - math.Sqrt(x) - x*math.Sin(10*math.Pi*x)
		points[i] = framework.ObjectiveSpacePoint{x, f2}
	}
	return points
}
