// Package benchmarks provides standard multi-objective test problems (ZDT,
// DTLZ families) with known Pareto fronts, used to validate and compare
// optimizer behaviour.
package benchmarks

import (
	"github.com/mihai-snyk/demo/pkg/framework"
)

// unitBounds returns [0,1] bounds for every decision variable, the domain all
// ZDT and DTLZ problems are defined on.
func unitBounds(numVars int) []framework.Bounds {
	b := make([]framework.Bounds, numVars)
	for i := range b {
		b[i] = framework.Bounds{L: 0.0, H: 1.0}
	}
	return b
}
