package algorithms

import (
	"gonum.org/v1/gonum/mat"

	"github.com/mihai-snyk/demo/pkg/framework"
)

// Points converts the columns of an objective matrix into objective-space
// points, the shape the plotting and metric helpers work with.
func Points(f *mat.Dense) []framework.ObjectiveSpacePoint {
	m, k := f.Dims()
	pts := make([]framework.ObjectiveSpacePoint, k)
	for j := 0; j < k; j++ {
		p := make(framework.ObjectiveSpacePoint, m)
		mat.Col(p, j, f)
		pts[j] = p
	}
	return pts
}

// ParetoFront extracts the nondominated columns of an objective matrix as
// objective-space points.
func ParetoFront(f *mat.Dense) []framework.ObjectiveSpacePoint {
	nd := NDSet(f)
	pts := Points(f)
	front := make([]framework.ObjectiveSpacePoint, 0, len(pts))
	for i, p := range pts {
		if nd[i] {
			front = append(front, p)
		}
	}
	return front
}
