package benchmarks

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/rand"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/demo/pkg/algorithms"
	"github.com/mihai-snyk/demo/pkg/framework"
	"github.com/mihai-snyk/demo/pkg/util"
)

// TestSuite runs a set of benchmark problems
type TestSuite struct {
	problems []framework.Problem
	config   algorithms.DEMOConfig

	// Seed makes the whole suite deterministic when nonzero.
	Seed uint64

	// RecordConvergence tracks per-generation IGD against the true front and
	// writes a convergence plot next to the results. Problems without a known
	// true front are skipped.
	RecordConvergence bool
}

// NewTestSuite creates a new benchmark test suite
func NewTestSuite(config algorithms.DEMOConfig) *TestSuite {
	return &TestSuite{
		config: config,
	}
}

// AddProblem adds a problem to the test suite
func (ts *TestSuite) AddProblem(p framework.Problem) {
	ts.problems = append(ts.problems, p)
}

// AddStandardProblems adds common benchmark problems
func (ts *TestSuite) AddStandardProblems() {
	// ZDT problems with 30 variables (standard)
	ts.AddProblem(NewZDT1(30))
	ts.AddProblem(NewZDT2(30))
	ts.AddProblem(NewZDT3(30))

	// DTLZ problems
	// 2 objectives, 7 variables (M + k - 1, where k=5 for DTLZ1)
	ts.AddProblem(NewDTLZ1(7, 2))
	// 2 objectives, 12 variables (M + k - 1, where k=10 for DTLZ2)
	ts.AddProblem(NewDTLZ2(12, 2))

	// 3 objectives versions
	ts.AddProblem(NewDTLZ1(8, 3))
	ts.AddProblem(NewDTLZ2(13, 3))
}

// Run executes the test suite
func (ts *TestSuite) Run(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, problem := range ts.problems {
		klog.InfoS("Running benchmark", "algorithm", algorithms.Name, "problem", problem.Name())

		var rng *rand.Rand
		if ts.Seed != 0 {
			rng = rand.New(rand.NewSource(ts.Seed))
		}

		trueFront := problem.TrueParetoFront(500)

		var observers []algorithms.Observer
		if ts.config.Display != "" && ts.config.Display != algorithms.DisplayOff {
			obs, err := util.DisplayObserver(ts.config.Display, problem,
				filepath.Join(outputDir, problem.Name()), 10)
			if err != nil {
				return err
			}
			observers = append(observers, obs)
		}

		var recorder *util.ConvergenceRecorder
		if ts.RecordConvergence && trueFront != nil {
			recorder = util.NewConvergenceRecorder(trueFront)
			observers = append(observers, recorder.Observe)
		}

		opt, err := algorithms.NewDEMO(ts.config, problem.Evaluate, problem.Bounds(), rng, observers...)
		if err != nil {
			return fmt.Errorf("%s: %w", problem.Name(), err)
		}
		res, err := opt.Run()
		if err != nil {
			return fmt.Errorf("%s: %w", problem.Name(), err)
		}

		paretoFront := algorithms.Points(res.Objectives)
		outputFile := filepath.Join(outputDir, fmt.Sprintf("%s_%s_results", problem.Name(), algorithms.Name))

		switch problem.NumObjectives() {
		case 2:
			if err := util.PlotResults(paretoFront, problem, algorithms.Name, outputFile+".html"); err != nil {
				klog.InfoS("Failed to plot results", "problem", problem.Name(), "err", err)
			}
		case 3:
			if err := util.PlotResults3D(paretoFront, problem, algorithms.Name, outputFile+"_3d.html"); err != nil {
				klog.InfoS("Failed to plot results", "problem", problem.Name(), "err", err)
			}
		}

		if recorder != nil {
			convergencePath := filepath.Join(outputDir,
				fmt.Sprintf("%s_%s_convergence.png", problem.Name(), algorithms.Name))
			if err := recorder.GeneratePlot(convergencePath); err != nil {
				klog.InfoS("Failed to plot convergence", "problem", problem.Name(), "err", err)
			}
		}

		// Report IGD when the true front is known
		if trueFront != nil {
			klog.InfoS("Benchmark finished", "problem", problem.Name(),
				"paretoMembers", len(paretoFront), "igd", util.IGD(paretoFront, trueFront))
		} else {
			klog.InfoS("Benchmark finished", "problem", problem.Name(),
				"paretoMembers", len(paretoFront))
		}
	}

	return nil
}
