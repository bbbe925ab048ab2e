package algorithms

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func randomMatrix(rng *rand.Rand, n, mu int) *mat.Dense {
	x := mat.NewDense(n, mu, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < mu; j++ {
			x.Set(i, j, rng.Float64())
		}
	}
	return x
}

func TestMutate_Shape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	xp := randomMatrix(rng, 5, 8)

	xm := Mutate(rng, xp, 0.5)
	n, mu := xm.Dims()
	if n != 5 || mu != 8 {
		t.Fatalf("trial matrix shape: want 5×8, got %d×%d", n, mu)
	}
}

// With F=0 the trial vector collapses to the base vector alone, so every
// trial column must equal some population column other than its own.
func TestMutate_ZeroScaleCopiesBase(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const n, mu = 3, 6

	// Distinct columns so membership checks are unambiguous.
	xp := mat.NewDense(n, mu, nil)
	for j := 0; j < mu; j++ {
		for i := 0; i < n; i++ {
			xp.Set(i, j, float64(j)+float64(i)/10)
		}
	}

	xm := Mutate(rng, xp, 0)
	for i := 0; i < mu; i++ {
		trial := column(xm, i)
		match := -1
		for j := 0; j < mu; j++ {
			if equalSlices(trial, column(xp, j)) {
				match = j
				break
			}
		}
		if match < 0 {
			t.Errorf("trial %d is not a population member: %v", i, trial)
		} else if match == i {
			t.Errorf("trial %d used itself as base vector", i)
		}
	}
}

func TestMutate_Deterministic(t *testing.T) {
	xp := randomMatrix(rand.New(rand.NewSource(3)), 4, 10)

	a := Mutate(rand.New(rand.NewSource(99)), xp, 0.5)
	b := Mutate(rand.New(rand.NewSource(99)), xp, 0.5)
	if !mat.Equal(a, b) {
		t.Error("same seed must produce identical trial matrices")
	}
}

func TestRecombine_ForcesTrialCoordinate(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const n, mu = 4, 12

	xp := mat.NewDense(n, mu, nil) // all zeros
	xm := mat.NewDense(n, mu, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < mu; j++ {
			xm.Set(i, j, 1)
		}
	}

	// CR=0 practically never takes a coordinate by chance, so the forced
	// pick is the only source of trial coordinates.
	xo := Recombine(rng, xp, xm, 0)
	for j := 0; j < mu; j++ {
		took := 0
		for i := 0; i < n; i++ {
			if xo.At(i, j) == 1 {
				took++
			}
		}
		if took < 1 {
			t.Errorf("offspring %d took no trial coordinate", j)
		}
	}
}

func TestRecombine_FullCrossoverTakesTrial(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	xp := randomMatrix(rng, 4, 6)
	xm := randomMatrix(rng, 4, 6)

	xo := Recombine(rng, xp, xm, 1)
	if !mat.Equal(xo, xm) {
		t.Error("CR=1 must take every coordinate from the trial matrix")
	}
}

func TestRecombine_ParentUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	xp := randomMatrix(rng, 4, 6)
	snapshot := mat.DenseCopyOf(xp)
	xm := randomMatrix(rng, 4, 6)

	Recombine(rng, xp, xm, 0.5)
	if !mat.Equal(xp, snapshot) {
		t.Error("recombination must not modify the parent matrix")
	}
}

func TestRepair_ClipsToUnitCube(t *testing.T) {
	x := mat.NewDense(2, 3, []float64{
		-0.5, 0.4, 1.7,
		0.0, -3.0, 1.0,
	})
	snapshot := mat.DenseCopyOf(x)

	out := Repair(x)
	want := mat.NewDense(2, 3, []float64{
		0, 0.4, 1,
		0, 0, 1,
	})
	if !mat.Equal(out, want) {
		t.Errorf("repair: got %v, want %v", mat.Formatted(out), mat.Formatted(want))
	}
	if !mat.Equal(x, snapshot) {
		t.Error("repair must not modify its input")
	}

	// Idempotent on feasible input.
	again := Repair(out)
	if !mat.Equal(again, out) {
		t.Error("repair of a feasible matrix must be identity")
	}
}

func equalSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
