package algorithms

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/demo/pkg/framework"
)

const (
	Name = "DEMO"
)

// Observer is invoked once per generation with a copy of the current
// population. Observers are purely observational: they run after selection,
// receive no live data, and cannot feed back into the algorithm.
type Observer func(generation int, pop Population)

// Result holds the nondominated subset of the final population. Objectives
// is m×q and Decisions is n×q with aligned columns; decision values are
// unnormalized to the caller's variable ranges when bounds were supplied.
type Result struct {
	Objectives *mat.Dense
	Decisions  *mat.Dense
}

// DEMO is Differential Evolution for Multi-objective Optimization: a
// generational loop of differential mutation, binomial recombination,
// box-bound repair, and Pareto-dominance selection with crowding-distance
// truncation.
type DEMO struct {
	PopSize        int
	NumGenerations int
	ScaleFactor    float64
	CrossoverRate  float64

	fobj      framework.ObjectiveFunc
	bounds    []framework.Bounds
	numVars   int
	rng       *rand.Rand
	observers []Observer
}

// NewDEMO creates a DEMO instance. Zero config fields are filled with
// defaults before validation. bounds may be nil, in which case the search
// runs directly in the [0,1] hypercube and cfg.NumVariables must be set; a
// non-nil bounds slice determines the dimension. rng is the sole randomness
// source for the run; passing nil seeds one from the clock.
func NewDEMO(cfg DEMOConfig, fobj framework.ObjectiveFunc, bounds []framework.Bounds, rng *rand.Rand, observers ...Observer) (*DEMO, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fobj == nil {
		return nil, fmt.Errorf("objective function is required")
	}

	numVars := cfg.NumVariables
	if bounds != nil {
		numVars = len(bounds)
	}
	if numVars <= 0 {
		return nil, fmt.Errorf("number of variables must be positive when no bounds are given, got %d", numVars)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	return &DEMO{
		PopSize:        cfg.PopulationSize,
		NumGenerations: cfg.MaxGenerations,
		ScaleFactor:    cfg.ScaleFactor,
		CrossoverRate:  *cfg.CrossoverRate,
		fobj:           fobj,
		bounds:         bounds,
		numVars:        numVars,
		rng:            rng,
		observers:      observers,
	}, nil
}

// Run executes the optimization for the configured generation budget and
// returns the nondominated subset of the final population. The run is
// sequential: each generation's inputs are the previous generation's outputs,
// and a mid-run evaluation or selection error aborts the whole run.
func (d *DEMO) Run() (*Result, error) {
	start := time.Now()
	klog.V(2).InfoS("Starting evolution", "algorithm", Name,
		"populationSize", d.PopSize, "generations", d.NumGenerations,
		"scaleFactor", d.ScaleFactor, "crossoverRate", d.CrossoverRate,
		"variables", d.numVars)

	xp := d.initialPopulation()
	fp, err := Evaluate(d.fobj, xp, d.bounds)
	if err != nil {
		return nil, fmt.Errorf("initial evaluation: %w", err)
	}
	pop := Population{X: xp, F: fp}

	for gen := 1; gen <= d.NumGenerations; gen++ {
		xm := Mutate(d.rng, pop.X, d.ScaleFactor)
		xo := Repair(Recombine(d.rng, pop.X, xm, d.CrossoverRate))
		fo, err := Evaluate(d.fobj, xo, d.bounds)
		if err != nil {
			return nil, fmt.Errorf("generation %d evaluation: %w", gen, err)
		}

		pop, err = Select(pop, Population{X: xo, F: fo}, d.PopSize)
		if err != nil {
			return nil, fmt.Errorf("generation %d selection: %w", gen, err)
		}

		if len(d.observers) > 0 {
			snapshot := pop.Clone()
			for _, obs := range d.observers {
				obs(gen, snapshot)
			}
		}
		if klog.V(4).Enabled() && gen%10 == 0 {
			klog.V(4).InfoS("Generation complete", "generation", gen,
				"of", d.NumGenerations, "nondominated", countTrue(NDSet(pop.F)))
		}
	}

	nd := NDSet(pop.F)
	res := &Result{
		Objectives: selectColumns(pop.F, nd),
		Decisions:  selectColumns(Unnormalize(pop.X, d.bounds), nd),
	}

	_, q := res.Objectives.Dims()
	klog.V(2).InfoS("Evolution complete", "algorithm", Name,
		"paretoMembers", q, "elapsed", time.Since(start))
	return res, nil
}

// initialPopulation draws μ uniform-random points in the normalized [0,1]ⁿ
// hypercube.
func (d *DEMO) initialPopulation() *mat.Dense {
	x := mat.NewDense(d.numVars, d.PopSize, nil)
	for r := 0; r < d.numVars; r++ {
		for c := 0; c < d.PopSize; c++ {
			x.Set(r, c, d.rng.Float64())
		}
	}
	return x
}

// selectColumns copies the masked columns of a into a fresh matrix.
func selectColumns(a *mat.Dense, keep []bool) *mat.Dense {
	r, c := a.Dims()
	q := 0
	for _, k := range keep {
		if k {
			q++
		}
	}
	out := mat.NewDense(r, q, nil)
	col := 0
	for j := 0; j < c; j++ {
		if !keep[j] {
			continue
		}
		for i := 0; i < r; i++ {
			out.Set(i, col, a.At(i, j))
		}
		col++
	}
	return out
}

func countTrue(mask []bool) int {
	n := 0
	for _, b := range mask {
		if b {
			n++
		}
	}
	return n
}
