package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// DTLZ1 is scalable to any number of objectives
// It has a linear Pareto front and many local fronts
type DTLZ1 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ1(numVars, numObjectives int) *DTLZ1 {
	// Recommended: numVars = numObjectives + k - 1, where k = 5 for DTLZ1
	return &DTLZ1{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ1) Name() string {
	return "DTLZ1"
}

func (p *DTLZ1) NumObjectives() int {
	return p.numObjectives
}

func (p *DTLZ1) g(x []float64) float64 {
	k := p.numVars - p.numObjectives + 1
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2) - math.Cos(20*math.Pi*(x[i]-0.5))
	}
	return 100 * (float64(k) + sum)
}

func (p *DTLZ1) Evaluate(x *mat.Dense) *mat.Dense {
	_, k := x.Dims()
	f := mat.NewDense(p.numObjectives, k, nil)
	col := make([]float64, p.numVars)
	for c := 0; c < k; c++ {
		mat.Col(col, c, x)
		g := p.g(col)
		for obj := 0; obj < p.numObjectives; obj++ {
			v := 0.5 * (1 + g)
			for i := 0; i < p.numObjectives-obj-1; i++ {
				v *= col[i]
			}
			if obj > 0 {
				v *= 1 - col[p.numObjectives-obj-1]
			}
			f.Set(obj, c, v)
		}
	}
	return f
}

func (p *DTLZ1) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *DTLZ1) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The true Pareto front satisfies sum(f_i) = 0.5.
	// For 2 objectives it's a line from (0, 0.5) to (0.5, 0).
	if p.numObjectives == 2 {
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			t := float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{
				0.5 * t,
				0.5 * (1 - t),
			}
		}
		return points
	}
	// For higher dimensions, return nil as it's complex to generate
	return nil
}
