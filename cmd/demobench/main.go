// demobench runs the DEMO optimizer against standard multi-objective
// benchmark problems and writes Pareto-front plots and metrics.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/demo/pkg/algorithms"
	"github.com/mihai-snyk/demo/pkg/benchmarks"
	"github.com/mihai-snyk/demo/pkg/framework"
)

func main() {
	cmd := newBenchCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newBenchCommand() *cobra.Command {
	var (
		popSize       int
		generations   int
		scaleFactor   float64
		crossoverRate float64
		display       string
		seed          uint64
		outputDir     string
		problemName   string
		convergence   bool
	)

	cmd := &cobra.Command{
		Use:          "demobench",
		Short:        "Run the DEMO multi-objective optimizer on benchmark problems",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := algorithms.DEMOConfig{
				PopulationSize: popSize,
				MaxGenerations: generations,
				ScaleFactor:    scaleFactor,
				CrossoverRate:  &crossoverRate,
				Display:        algorithms.DisplayMode(display),
			}

			suite := benchmarks.NewTestSuite(cfg)
			suite.Seed = seed
			suite.RecordConvergence = convergence

			if problemName == "all" {
				suite.AddStandardProblems()
			} else {
				p, err := problemByName(problemName)
				if err != nil {
					return err
				}
				suite.AddProblem(p)
			}

			return suite.Run(outputDir)
		},
	}

	cmd.Flags().IntVar(&popSize, "population-size", algorithms.DefaultPopulationSize, "number of candidates kept between generations")
	cmd.Flags().IntVar(&generations, "generations", algorithms.DefaultMaxGenerations, "iteration budget")
	cmd.Flags().Float64Var(&scaleFactor, "scale-factor", algorithms.DefaultScaleFactor, "mutation scale factor F")
	cmd.Flags().Float64Var(&crossoverRate, "crossover-rate", algorithms.DefaultCrossoverRate, "crossover rate CR")
	cmd.Flags().StringVar(&display, "display", string(algorithms.DisplayOff), "per-generation population rendering: off, 2d or 3d")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed; 0 seeds from the clock")
	cmd.Flags().StringVar(&outputDir, "output", "./results", "directory for plots and metrics")
	cmd.Flags().StringVar(&problemName, "problem", "all", "benchmark problem: all, zdt1, zdt2, zdt3, dtlz1, dtlz2")
	cmd.Flags().BoolVar(&convergence, "convergence", false, "record per-generation IGD and write a convergence plot")

	klog.InitFlags(nil)
	cmd.Flags().AddGoFlagSet(flag.CommandLine)

	return cmd
}

func problemByName(name string) (framework.Problem, error) {
	switch name {
	case "zdt1":
		return benchmarks.NewZDT1(30), nil
	case "zdt2":
		return benchmarks.NewZDT2(30), nil
	case "zdt3":
		return benchmarks.NewZDT3(30), nil
	case "dtlz1":
		return benchmarks.NewDTLZ1(7, 2), nil
	case "dtlz2":
		return benchmarks.NewDTLZ2(12, 2), nil
	default:
		return nil, fmt.Errorf("unknown problem %q", name)
	}
}
