package benchmarks

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// DTLZ2 has a spherical Pareto front
// It's easier than DTLZ1 as it has no local fronts
type DTLZ2 struct {
	numVars       int
	numObjectives int
}

func NewDTLZ2(numVars, numObjectives int) *DTLZ2 {
	// Recommended: numVars = numObjectives + k - 1, where k = 10 for DTLZ2
	return &DTLZ2{
		numVars:       numVars,
		numObjectives: numObjectives,
	}
}

func (p *DTLZ2) Name() string {
	return "DTLZ2"
}

func (p *DTLZ2) NumObjectives() int {
	return p.numObjectives
}

func (p *DTLZ2) g(x []float64) float64 {
	sum := 0.0
	for i := p.numObjectives - 1; i < p.numVars; i++ {
		sum += math.Pow(x[i]-0.5, 2)
	}
	return sum
}

func (p *DTLZ2) Evaluate(x *mat.Dense) *mat.Dense {
	_, k := x.Dims()
	f := mat.NewDense(p.numObjectives, k, nil)
	col := make([]float64, p.numVars)
	for c := 0; c < k; c++ {
		mat.Col(col, c, x)
		g := p.g(col)
		for obj := 0; obj < p.numObjectives; obj++ {
			v := 1 + g
			for i := 0; i < p.numObjectives-obj-1; i++ {
				v *= math.Cos(col[i] * math.Pi / 2)
			}
			// Last term is sin for all objectives except the first
			if obj > 0 {
				v *= math.Sin(col[p.numObjectives-obj-1] * math.Pi / 2)
			}
			f.Set(obj, c, v)
		}
	}
	return f
}

func (p *DTLZ2) Bounds() []framework.Bounds {
	return unitBounds(p.numVars)
}

func (p *DTLZ2) TrueParetoFront(numPoints int) []framework.ObjectiveSpacePoint {
	// The true Pareto front is on a unit sphere: sum(f_i^2) = 1.
	// For 2 objectives, it's a quarter circle.
	if p.numObjectives == 2 {
		points := make([]framework.ObjectiveSpacePoint, numPoints)
		for i := 0; i < numPoints; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(numPoints-1)
			points[i] = framework.ObjectiveSpacePoint{
				math.Cos(theta),
				math.Sin(theta),
			}
		}
		return points
	}
	if p.numObjectives == 3 {
		// Simple uniform distribution on the sphere surface
		sqrtN := int(math.Sqrt(float64(numPoints)))
		points := make([]framework.ObjectiveSpacePoint, 0, sqrtN*sqrtN)
		for i := 0; i < sqrtN; i++ {
			theta := (math.Pi / 2) * float64(i) / float64(sqrtN-1)
			for j := 0; j < sqrtN; j++ {
				phi := (math.Pi / 2) * float64(j) / float64(sqrtN-1)
				points = append(points, framework.ObjectiveSpacePoint{
					math.Cos(theta) * math.Cos(phi),
					math.Sin(theta) * math.Cos(phi),
					math.Sin(phi),
				})
			}
		}
		return points
	}
	return nil
}
