package algorithms

import (
	"strings"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// popFromObjectives builds a population whose decision columns are labeled
// with a constant per column, so survivors can be traced back.
func popFromObjectives(f *mat.Dense, label float64) Population {
	_, mu := f.Dims()
	x := mat.NewDense(2, mu, nil)
	for j := 0; j < mu; j++ {
		x.Set(0, j, label)
		x.Set(1, j, float64(j))
	}
	return Population{X: x, F: mat.DenseCopyOf(f)}
}

func TestSelect_ParentsDominateOffspring(t *testing.T) {
	pf := objectives(
		[]float64{1, 4},
		[]float64{2, 3},
		[]float64{3, 2},
		[]float64{4, 1},
	)
	// Each offspring is strictly worse than its parent in both objectives.
	of := objectives(
		[]float64{2, 5},
		[]float64{3, 4},
		[]float64{4, 3},
		[]float64{5, 2},
	)
	parents := popFromObjectives(pf, 0)
	offspring := popFromObjectives(of, 1)

	next, err := Select(parents, offspring, 4)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !mat.Equal(next.F, pf) {
		t.Errorf("dominated offspring must all be discarded:\ngot %v\nwant %v",
			mat.Formatted(next.F), mat.Formatted(pf))
	}
}

func TestSelect_OffspringDominateParents(t *testing.T) {
	pf := objectives(
		[]float64{2, 5},
		[]float64{3, 4},
		[]float64{4, 3},
		[]float64{5, 2},
	)
	of := objectives(
		[]float64{1, 4},
		[]float64{2, 3},
		[]float64{3, 2},
		[]float64{4, 1},
	)
	parents := popFromObjectives(pf, 0)
	offspring := popFromObjectives(of, 1)

	next, err := Select(parents, offspring, 4)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !mat.Equal(next.F, of) {
		t.Errorf("dominated parents must all be discarded:\ngot %v\nwant %v",
			mat.Formatted(next.F), mat.Formatted(of))
	}
}

// A mutually nondominating pair keeps both members, growing the pool to 2μ
// before truncation brings it back to exactly μ.
func TestSelect_MutualNondominanceKeepsBoth(t *testing.T) {
	pf := objectives(
		[]float64{1, 4},
		[]float64{2, 3},
		[]float64{3, 2},
		[]float64{4, 1},
	)
	// Each offspring trades off against its parent: better f1, worse f2.
	of := objectives(
		[]float64{0.5, 4.5},
		[]float64{1.5, 3.5},
		[]float64{2.5, 2.5},
		[]float64{3.5, 1.5},
	)
	parents := popFromObjectives(pf, 0)
	offspring := popFromObjectives(of, 1)

	next, err := Select(parents, offspring, 4)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if got := next.Size(); got != 4 {
		t.Fatalf("population size: want 4, got %d", got)
	}

	// Survivors must come from the merged pool.
	inPool := func(f []float64) bool {
		for j := 0; j < 4; j++ {
			if equalSlices(f, column(pf, j)) || equalSlices(f, column(of, j)) {
				return true
			}
		}
		return false
	}
	for j := 0; j < next.Size(); j++ {
		if f := column(next.F, j); !inPool(f) {
			t.Errorf("survivor %d not from the merge pool: %v", j, f)
		}
	}
}

func TestSelect_ExactSizeInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	const n, m, mu = 3, 2, 10

	for trial := 0; trial < 20; trial++ {
		parents := Population{
			X: randomMatrix(rng, n, mu),
			F: randomMatrix(rng, m, mu),
		}
		offspring := Population{
			X: randomMatrix(rng, n, mu),
			F: randomMatrix(rng, m, mu),
		}
		next, err := Select(parents, offspring, mu)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		if got := next.Size(); got != mu {
			t.Fatalf("trial %d: population size drifted to %d", trial, got)
		}
	}
}

func TestSelect_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	parents := Population{
		X: randomMatrix(rng, 3, 8),
		F: randomMatrix(rng, 2, 8),
	}
	offspring := Population{
		X: randomMatrix(rng, 3, 8),
		F: randomMatrix(rng, 2, 8),
	}

	a, err := Select(parents, offspring, 8)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	b, err := Select(parents, offspring, 8)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !mat.Equal(a.X, b.X) || !mat.Equal(a.F, b.F) {
		t.Error("selection on identical inputs must be deterministic")
	}
}

func TestSelect_WidthMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(29))
	parents := Population{X: randomMatrix(rng, 3, 6), F: randomMatrix(rng, 2, 6)}
	offspring := Population{X: randomMatrix(rng, 3, 5), F: randomMatrix(rng, 2, 5)}

	_, err := Select(parents, offspring, 6)
	if err == nil {
		t.Fatal("expected an error for mismatched population widths")
	}
	if !strings.Contains(err.Error(), "widths differ") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSelect_PoolExhaustion(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	parents := Population{X: randomMatrix(rng, 3, 4), F: randomMatrix(rng, 2, 4)}
	offspring := Population{X: randomMatrix(rng, 3, 4), F: randomMatrix(rng, 2, 4)}

	// Asking for more members than the pool can ever hold must fail loudly.
	_, err := Select(parents, offspring, 9)
	if err == nil {
		t.Fatal("expected an error when the pool cannot fill the population")
	}
}
