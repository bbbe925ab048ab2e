package algorithms

import (
	"fmt"
	"math"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// Select merges a parent and an offspring population into the next
// generation of exactly mu members.
//
// Columns are first compared pairwise (parent i against offspring i): the
// dominated one is discarded, and mutually nondominating pairs keep both, so
// the merge pool holds between mu and 2mu candidates. Fronts are then peeled
// off the pool with NDSet; a front that fits is taken whole, and the first
// front that would overflow is thinned by repeatedly removing its single
// lowest-crowding-distance member (distance recomputed after every removal,
// ties broken by lowest index) until it matches the remaining slots.
//
// Failing to assemble exactly mu members means the inputs were malformed and
// is reported as an error rather than returning a short population.
func Select(parents, offspring Population, mu int) (Population, error) {
	np := parents.Size()
	if no := offspring.Size(); no != np {
		return Population{}, fmt.Errorf("parent and offspring widths differ: %d vs %d", np, no)
	}

	pool := make([]candidate, 0, 2*np)
	for i := 0; i < np; i++ {
		pf := framework.ObjectiveSpacePoint(column(parents.F, i))
		of := framework.ObjectiveSpacePoint(column(offspring.F, i))
		switch {
		case framework.Dominates(pf, of):
			pool = append(pool, candidate{x: column(parents.X, i), f: pf})
		case framework.Dominates(of, pf):
			pool = append(pool, candidate{x: column(offspring.X, i), f: of})
		default:
			pool = append(pool, candidate{x: column(parents.X, i), f: pf})
			pool = append(pool, candidate{x: column(offspring.X, i), f: of})
		}
	}

	result := make([]candidate, 0, mu)
	for len(result) < mu {
		if len(pool) == 0 {
			return Population{}, fmt.Errorf("selection exhausted candidates at %d of %d members", len(result), mu)
		}

		nd := NDSet(poolObjectives(pool))
		front := make([]candidate, 0, len(pool))
		rest := make([]candidate, 0, len(pool))
		for i, c := range pool {
			if nd[i] {
				front = append(front, c)
			} else {
				rest = append(rest, c)
			}
		}
		pool = rest

		if len(result)+len(front) <= mu {
			result = append(result, front...)
			continue
		}

		// The front overflows: drop the most crowded member one at a time so
		// the distances reflect each removal.
		for len(front) > mu-len(result) {
			dist := CrowdingDistance(poolObjectives(front))
			worst := 0
			min := math.Inf(1)
			for i, d := range dist {
				if d < min {
					min = d
					worst = i
				}
			}
			front = append(front[:worst], front[worst+1:]...)
		}
		result = append(result, front...)
	}

	return populationFromPool(result), nil
}
