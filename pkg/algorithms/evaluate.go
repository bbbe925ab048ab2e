package algorithms

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// Unnormalize maps a normalized [0,1] decision matrix into the caller's real
// variable ranges, column-broadcast per variable: x = L + u*(H−L). A nil
// bounds slice means the normalized space is the real space and the matrix is
// returned unchanged.
func Unnormalize(x *mat.Dense, bounds []framework.Bounds) *mat.Dense {
	if bounds == nil {
		return x
	}
	n, k := x.Dims()
	out := mat.NewDense(n, k, nil)
	for r := 0; r < n; r++ {
		b := bounds[r]
		for c := 0; c < k; c++ {
			out.Set(r, c, b.L+x.At(r, c)*(b.H-b.L))
		}
	}
	return out
}

// Evaluate unnormalizes the candidate matrix and invokes the external
// objective function. The result's shape is validated eagerly here rather
// than letting a mismatch surface as an index panic deep inside selection:
// the callable must return one column per candidate and at least two
// objective rows.
func Evaluate(fobj framework.ObjectiveFunc, x *mat.Dense, bounds []framework.Bounds) (*mat.Dense, error) {
	n, k := x.Dims()
	if bounds != nil && len(bounds) != n {
		return nil, fmt.Errorf("bounds cover %d variables, decision matrix has %d rows", len(bounds), n)
	}

	f := fobj(Unnormalize(x, bounds))
	if f == nil {
		return nil, fmt.Errorf("objective function returned nil for %d candidates", k)
	}
	m, kf := f.Dims()
	if kf != k {
		return nil, fmt.Errorf("objective function returned %d columns for %d candidates", kf, k)
	}
	if m < 2 {
		return nil, fmt.Errorf("objective function returned %d objective(s), need at least 2", m)
	}
	return f, nil
}
