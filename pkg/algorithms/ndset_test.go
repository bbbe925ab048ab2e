package algorithms

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

// objectives builds an m×k matrix from per-candidate columns.
func objectives(cols ...[]float64) *mat.Dense {
	m := len(cols[0])
	f := mat.NewDense(m, len(cols), nil)
	for j, col := range cols {
		for i, v := range col {
			f.Set(i, j, v)
		}
	}
	return f
}

func TestNDSet_AllMutuallyNondominated(t *testing.T) {
	// A diagonal trade-off: every member is best somewhere.
	f := objectives(
		[]float64{1, 4},
		[]float64{2, 3},
		[]float64{3, 2},
		[]float64{4, 1},
	)
	nd := NDSet(f)
	for i, v := range nd {
		if !v {
			t.Errorf("member %d should be nondominated, got %v", i, nd)
		}
	}
}

func TestNDSet_DominationDetected(t *testing.T) {
	// (1,5) dominates (2,6): <= everywhere, < in both.
	f := objectives(
		[]float64{1, 5},
		[]float64{2, 6},
	)
	nd := NDSet(f)
	if !nd[0] || nd[1] {
		t.Errorf("expected [true false], got %v", nd)
	}
}

func TestNDSet_EqualColumnsBothKept(t *testing.T) {
	// Identical points do not dominate each other (no strict improvement).
	f := objectives(
		[]float64{2, 2},
		[]float64{2, 2},
	)
	nd := NDSet(f)
	if !nd[0] || !nd[1] {
		t.Errorf("identical members must both stay nondominated, got %v", nd)
	}
}

func TestNDSet_WeakDomination(t *testing.T) {
	// Equal in one objective, strictly better in the other still dominates.
	f := objectives(
		[]float64{1, 3},
		[]float64{1, 4},
	)
	nd := NDSet(f)
	if !nd[0] || nd[1] {
		t.Errorf("expected [true false], got %v", nd)
	}
}

func TestNDSet_SingleMember(t *testing.T) {
	f := objectives([]float64{7, 7, 7})
	nd := NDSet(f)
	if len(nd) != 1 || !nd[0] {
		t.Errorf("a lone member is trivially nondominated, got %v", nd)
	}
}

// TestNDSet_RandomConsistency checks the two defining properties on random
// objective sets: no marked member is dominated by anyone, and every unmarked
// member has at least one marked dominator (dominance chains terminate in the
// nondominated set).
func TestNDSet_RandomConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const m, k = 3, 40

	f := mat.NewDense(m, k, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			f.Set(i, j, rng.Float64())
		}
	}
	nd := NDSet(f)

	dominatesCol := func(a, b int) bool {
		better := false
		for r := 0; r < m; r++ {
			if f.At(r, a) > f.At(r, b) {
				return false
			}
			if f.At(r, a) < f.At(r, b) {
				better = true
			}
		}
		return better
	}

	for i := 0; i < k; i++ {
		if nd[i] {
			for j := 0; j < k; j++ {
				if j != i && dominatesCol(j, i) {
					t.Errorf("member %d is marked nondominated but %d dominates it", i, j)
				}
			}
			continue
		}
		foundMarkedDominator := false
		for j := 0; j < k; j++ {
			if j != i && nd[j] && dominatesCol(j, i) {
				foundMarkedDominator = true
				break
			}
		}
		if !foundMarkedDominator {
			t.Errorf("unmarked member %d has no marked dominator", i)
		}
	}
}
