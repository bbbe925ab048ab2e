package util

import (
	"fmt"
	"sync"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/mihai-snyk/demo/pkg/algorithms"
	"github.com/mihai-snyk/demo/pkg/framework"
)

// ConvergenceRecorder accumulates a per-generation IGD time series against a
// reference front during a run. Register its Observe method as an observer,
// then call GeneratePlot after the run to render the series as a PNG.
type ConvergenceRecorder struct {
	mu        sync.Mutex
	reference []framework.ObjectiveSpacePoint
	samples   []ConvergenceSample
}

// ConvergenceSample is one snapshot of front quality.
type ConvergenceSample struct {
	Generation int
	IGD        float64
	FrontSize  int
}

// NewConvergenceRecorder creates a recorder measuring against the given
// reference front, typically Problem.TrueParetoFront.
func NewConvergenceRecorder(reference []framework.ObjectiveSpacePoint) *ConvergenceRecorder {
	return &ConvergenceRecorder{reference: reference}
}

// Observe records the current population's nondominated front quality.
func (cr *ConvergenceRecorder) Observe(gen int, pop algorithms.Population) {
	front := algorithms.ParetoFront(pop.F)

	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.samples = append(cr.samples, ConvergenceSample{
		Generation: gen,
		IGD:        IGD(front, cr.reference),
		FrontSize:  len(front),
	})
}

// Samples returns a copy of the recorded series.
func (cr *ConvergenceRecorder) Samples() []ConvergenceSample {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	out := make([]ConvergenceSample, len(cr.samples))
	copy(out, cr.samples)
	return out
}

// GeneratePlot renders the IGD series as a PNG line plot.
func (cr *ConvergenceRecorder) GeneratePlot(path string) error {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	if len(cr.samples) == 0 {
		return fmt.Errorf("no samples recorded")
	}

	p := plot.New()
	p.Title.Text = "Front convergence (IGD)"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "IGD"

	pts := make(plotter.XYs, 0, len(cr.samples))
	for _, s := range cr.samples {
		pts = append(pts, plotter.XY{X: float64(s.Generation), Y: s.IGD})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Legend.Add("IGD", line)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
