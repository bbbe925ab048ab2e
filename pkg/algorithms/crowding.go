package algorithms

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CrowdingDistance scores every member of one front by local sparsity. For
// each objective the members are sorted by value; the two extremes receive an
// infinite contribution and interior members contribute the gap between their
// neighbours normalized by the objective's range. An objective that is
// constant across the front spans zero range and contributes nothing. The
// total per member is the sum over all objectives; larger means more
// isolated.
func CrowdingDistance(f *mat.Dense) []float64 {
	m, k := f.Dims()
	dist := make([]float64, k)
	idx := make([]int, k)
	row := make([]float64, k)

	for obj := 0; obj < m; obj++ {
		mat.Row(row, obj, f)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return row[idx[a]] < row[idx[b]]
		})

		dist[idx[0]] = math.Inf(1)
		dist[idx[k-1]] = math.Inf(1)

		span := row[idx[k-1]] - row[idx[0]]
		if span == 0 {
			continue
		}
		for i := 1; i < k-1; i++ {
			dist[idx[i]] += (row[idx[i+1]] - row[idx[i-1]]) / span
		}
	}
	return dist
}
