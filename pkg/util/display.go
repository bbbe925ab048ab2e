package util

import (
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/mihai-snyk/demo/pkg/algorithms"
	"github.com/mihai-snyk/demo/pkg/framework"
)

// DisplayObserver maps a display mode to a per-generation observer that
// renders the current population's objective values as an HTML scatter under
// outputDir, one file every interval generations. The engine itself never
// imports a rendering backend; this is the side channel it calls through.
// Rendering failures are logged and swallowed so a plotting problem can
// never abort an optimization run.
func DisplayObserver(mode algorithms.DisplayMode, problem framework.Problem, outputDir string, interval int) (algorithms.Observer, error) {
	if mode == algorithms.DisplayOff || mode == "" {
		return nil, nil
	}
	if interval <= 0 {
		interval = 10
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create display output dir: %w", err)
	}

	return func(gen int, pop algorithms.Population) {
		if gen%interval != 0 {
			return
		}
		points := algorithms.Points(pop.F)
		path := filepath.Join(outputDir, fmt.Sprintf("%s_gen_%04d.html", problem.Name(), gen))

		var err error
		switch mode {
		case algorithms.Display2D:
			err = PlotResults(points, problem, algorithms.Name, path)
		case algorithms.Display3D:
			err = PlotResults3D(points, problem, algorithms.Name, path)
		}
		if err != nil {
			klog.V(2).InfoS("Population plot failed", "generation", gen, "path", path, "err", err)
		}
	}, nil
}
