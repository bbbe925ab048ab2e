package algorithms

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// Mutate builds one trial vector per candidate using differential mutation:
// u_i = xb + F*(x2 − x3), where (xb, x2, x3) are three distinct members drawn
// uniformly from the population excluding candidate i itself. The draw is a
// partial Fisher–Yates shuffle of the non-self index table, so all three are
// distinct for any μ ≥ 4. Trial vectors may leave [0,1]; repair happens after
// recombination.
func Mutate(rng *rand.Rand, xp *mat.Dense, scale float64) *mat.Dense {
	n, mu := xp.Dims()
	xm := mat.NewDense(n, mu, nil)
	others := make([]int, mu-1)

	for i := 0; i < mu; i++ {
		k := 0
		for j := 0; j < mu; j++ {
			if j != i {
				others[k] = j
				k++
			}
		}
		for j := 0; j < 3; j++ {
			p := j + rng.Intn(len(others)-j)
			others[j], others[p] = others[p], others[j]
		}
		xb, x2, x3 := others[0], others[1], others[2]

		for r := 0; r < n; r++ {
			xm.Set(r, i, xp.At(r, xb)+scale*(xp.At(r, x2)-xp.At(r, x3)))
		}
	}
	return xm
}

// Recombine blends trial vectors with their parents using binomial crossover:
// each coordinate comes from the trial matrix when a uniform draw is at most
// CR, from the parent otherwise. Every offspring column is forced to take at
// least one coordinate from the trial matrix, so offspring never duplicate
// their parents exactly.
func Recombine(rng *rand.Rand, xp, xm *mat.Dense, cr float64) *mat.Dense {
	n, mu := xp.Dims()
	xo := mat.DenseCopyOf(xp)

	for i := 0; i < mu; i++ {
		tookTrial := false
		for r := 0; r < n; r++ {
			if rng.Float64() <= cr {
				xo.Set(r, i, xm.At(r, i))
				tookTrial = true
			}
		}
		if !tookTrial {
			r := rng.Intn(n)
			xo.Set(r, i, xm.At(r, i))
		}
	}
	return xo
}

// Repair clips every coordinate back into the normalized feasible hypercube
// [0,1]. It is pure and idempotent; the input matrix is not modified.
func Repair(x *mat.Dense) *mat.Dense {
	out := mat.DenseCopyOf(x)
	r, c := out.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := out.At(i, j)
			if v < 0 {
				out.Set(i, j, 0)
			} else if v > 1 {
				out.Set(i, j, 1)
			}
		}
	}
	return out
}
