package algorithms

import (
	"gonum.org/v1/gonum/mat"
)

// Population pairs the decision matrix X (n variables × μ candidates, values
// in [0,1] after repair) with the objective matrix F (m objectives × μ
// candidates). Columns are aligned: column i of X produced column i of F.
// The width μ is fixed for the run; only the selection merge step holds a
// wider transient pool, and that pool has its own type.
type Population struct {
	X *mat.Dense
	F *mat.Dense
}

// Size returns the number of candidates μ.
func (p Population) Size() int {
	if p.X == nil {
		return 0
	}
	_, mu := p.X.Dims()
	return mu
}

// Clone returns a deep copy so observers and callers cannot alias the live
// population owned by the driver.
func (p Population) Clone() Population {
	return Population{
		X: mat.DenseCopyOf(p.X),
		F: mat.DenseCopyOf(p.F),
	}
}

// candidate is one member of the transient selection pool: a single decision
// column and its objective column.
type candidate struct {
	x []float64
	f []float64
}

// poolObjectives assembles the m×len(pool) objective matrix of a candidate
// pool for nondominated sorting and crowding distance.
func poolObjectives(pool []candidate) *mat.Dense {
	m := len(pool[0].f)
	fm := mat.NewDense(m, len(pool), nil)
	for j, c := range pool {
		for i, v := range c.f {
			fm.Set(i, j, v)
		}
	}
	return fm
}

// populationFromPool rebuilds the fixed-width matrices from selected
// candidates.
func populationFromPool(pool []candidate) Population {
	n := len(pool[0].x)
	m := len(pool[0].f)
	x := mat.NewDense(n, len(pool), nil)
	f := mat.NewDense(m, len(pool), nil)
	for j, c := range pool {
		for i, v := range c.x {
			x.Set(i, j, v)
		}
		for i, v := range c.f {
			f.Set(i, j, v)
		}
	}
	return Population{X: x, F: f}
}

// column extracts column j of a matrix as a fresh slice.
func column(a *mat.Dense, j int) []float64 {
	r, _ := a.Dims()
	out := make([]float64, r)
	mat.Col(out, j, a)
	return out
}
