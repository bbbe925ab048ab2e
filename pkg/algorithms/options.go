package algorithms

import (
	"fmt"
)

// DisplayMode selects the optional per-generation rendering of the population
// in objective space. Rendering is purely observational: the engine invokes
// observers with population copies and never depends on a plotting backend.
type DisplayMode string

const (
	// DisplayOff disables rendering.
	DisplayOff DisplayMode = "off"
	// Display2D renders a 2-D scatter of the first two objectives.
	Display2D DisplayMode = "2d"
	// Display3D renders a 3-D scatter of the first three objectives.
	Display3D DisplayMode = "3d"
)

// DEMOConfig holds configuration parameters for DEMO. The zero value of any
// field means "use the default"; call SetDefaults before Validate.
type DEMOConfig struct {
	// PopulationSize is the number of candidates kept between generations (μ).
	PopulationSize int
	// MaxGenerations is the iteration budget. Termination is solely
	// iteration-count based.
	MaxGenerations int
	// ScaleFactor is the mutation strength F applied to difference vectors.
	ScaleFactor float64
	// CrossoverRate is the probability CR that an offspring coordinate is
	// taken from the trial vector rather than the parent. It is a pointer
	// because 0 is a valid rate and must stay distinguishable from unset;
	// nil means the default.
	CrossoverRate *float64
	// NumVariables is the decision-space dimension n. It is required when no
	// bounds are supplied and derived from the bounds otherwise.
	NumVariables int
	// Display selects the observational rendering mode.
	Display DisplayMode
}

// Default parameter values.
const (
	DefaultPopulationSize = 100
	DefaultMaxGenerations = 300
	DefaultScaleFactor    = 0.5
	DefaultCrossoverRate  = 0.3
)

// SetDefaults fills unset (zero) fields with the documented defaults.
func (c *DEMOConfig) SetDefaults() {
	if c.PopulationSize == 0 {
		c.PopulationSize = DefaultPopulationSize
	}
	if c.MaxGenerations == 0 {
		c.MaxGenerations = DefaultMaxGenerations
	}
	if c.ScaleFactor == 0 {
		c.ScaleFactor = DefaultScaleFactor
	}
	if c.CrossoverRate == nil {
		cr := DefaultCrossoverRate
		c.CrossoverRate = &cr
	}
	if c.Display == "" {
		c.Display = DisplayOff
	}
}

// Validate checks that the configuration values are in range. Mutation draws
// three distinct non-self indices per candidate, so the population must hold
// at least four members.
func (c *DEMOConfig) Validate() error {
	if c.PopulationSize < 4 {
		return fmt.Errorf("population size must be at least 4, got %d", c.PopulationSize)
	}
	if c.MaxGenerations <= 0 {
		return fmt.Errorf("max generations must be positive, got %d", c.MaxGenerations)
	}
	if c.ScaleFactor <= 0 {
		return fmt.Errorf("scale factor must be positive, got %v", c.ScaleFactor)
	}
	if c.CrossoverRate == nil {
		return fmt.Errorf("crossover rate is unset, call SetDefaults first")
	}
	if cr := *c.CrossoverRate; cr < 0 || cr > 1 {
		return fmt.Errorf("crossover rate must be between 0 and 1, got %v", cr)
	}
	switch c.Display {
	case DisplayOff, Display2D, Display3D:
	default:
		return fmt.Errorf("unknown display mode %q", c.Display)
	}
	return nil
}
