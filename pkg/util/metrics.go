package util

import (
	"github.com/mihai-snyk/demo/pkg/framework"
)

// IGD computes the Inverted Generational Distance: the average distance from
// each reference-front point to the nearest obtained point. Squared euclidean
// distance is used to save the square root; the metric is only compared
// against itself. Lower is better, zero means the reference front is covered.
func IGD(obtained, reference []framework.ObjectiveSpacePoint) float64 {
	if len(obtained) == 0 || len(reference) == 0 {
		return 0
	}
	igd := 0.0
	for _, refPoint := range reference {
		minDist := 1e10
		for _, obtPoint := range obtained {
			dist := 0.0
			for i := range refPoint {
				diff := refPoint[i] - obtPoint[i]
				dist += diff * diff
			}
			if dist < minDist {
				minDist = dist
			}
		}
		igd += minDist
	}
	return igd / float64(len(reference))
}
