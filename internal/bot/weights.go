package bot

// Weights holds the evaluator coefficients. Features that make a surface
// worse (height, holes, roughness) carry negative weights; cleared lines
// carry a positive one.
type Weights struct {
	AggregateHeight float64 `yaml:"aggregate_height"`
	CompleteLines   float64 `yaml:"complete_lines"`
	Holes           float64 `yaml:"holes"`
	Bumpiness       float64 `yaml:"bumpiness"`
	LandingHeight   float64 `yaml:"landing_height"`
	WellDepth       float64 `yaml:"well_depth"`
}

// DefaultWeights returns coefficients tuned for survival play: keep the
// stack low and flat, never bury holes, take lines when offered.
func DefaultWeights() Weights {
	return Weights{
		AggregateHeight: -0.510066,
		CompleteLines:   0.760666,
		Holes:           -0.35663,
		Bumpiness:       -0.184483,
		LandingHeight:   -0.02,
		WellDepth:       -0.05,
	}
}
