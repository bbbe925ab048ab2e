package algorithms

import (
	"gonum.org/v1/gonum/mat"
)

// NDSet marks the nondominated members of an objective matrix (one column per
// candidate, minimization). Candidate i is dominated when some other column j
// is elementwise <= and strictly < in at least one objective; the mask is
// true exactly for the columns with no such dominator. Every ordered pair is
// compared, O(k²·m), which stays cheap at the merged-population sizes (≤ 2μ)
// this sees.
func NDSet(f *mat.Dense) []bool {
	m, k := f.Dims()
	nd := make([]bool, k)

	for i := 0; i < k; i++ {
		dominated := false
		for j := 0; j < k && !dominated; j++ {
			if j == i {
				continue
			}
			leqAll := true
			ltAny := false
			for r := 0; r < m; r++ {
				fj, fi := f.At(r, j), f.At(r, i)
				if fj > fi {
					leqAll = false
					break
				}
				if fj < fi {
					ltAny = true
				}
			}
			if leqAll && ltAny {
				dominated = true
			}
		}
		nd[i] = !dominated
	}
	return nd
}
