package framework

import (
	"gonum.org/v1/gonum/mat"
)

// ObjectiveFunc is the objective callable supplied by the caller. It receives
// a decision matrix with one column per candidate (n variables × k candidates,
// already unnormalized to the caller's real variable ranges) and returns the
// objective matrix (m objectives × k candidates, m >= 2). Problem-specific
// extra arguments are bound by closure. The engine treats the callable as
// opaque and validates only the shape of its result.
type ObjectiveFunc func(x *mat.Dense) *mat.Dense

// Bounds holds the lower and upper limit of one decision variable.
type Bounds struct {
	L float64
	H float64
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective
// space. As an example, for a problem with 2 objective functions f1 and f2, a
// point in the objective space could be [f1(x'), f2(x')], for the input x'.
type ObjectiveSpacePoint []float64

// Problem describes the contract a benchmark problem needs to implement.
type Problem interface {
	Name() string

	// Evaluate computes all objectives for a decision matrix (one column
	// per candidate) and returns the objective matrix.
	Evaluate(x *mat.Dense) *mat.Dense
	NumObjectives() int
	Bounds() []Bounds

	// TrueParetoFront is optional due to the difficulty of finding the true
	// front in some types of problems. When there isn't a way to find the
	// true front, just return nil.
	TrueParetoFront(numPoints int) []ObjectiveSpacePoint
}

// Dominates checks if point a dominates point b under minimization: a is no
// worse in every objective and strictly better in at least one.
func Dominates(a, b ObjectiveSpacePoint) bool {
	better := false
	for i := 0; i < len(a); i++ {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			better = true
		}
	}
	return better
}
