package config

// Spec represents a complete experiment specification
type Spec struct {
	Hamiltonian HamiltonianSpec `yaml:"hamiltonian"`
	NumRuns     int             `yaml:"num_runs"`
	// MaxIterations bounds the optimizer's iteration budget per run.
	// Zero means no search steps: the initial point is evaluated as-is.
	MaxIterations int           `yaml:"max_iterations"`
	Trials        int           `yaml:"trials"`
	Threshold     float64       `yaml:"threshold"`
	Optimizer     OptimizerSpec `yaml:"optimizer"`
	Evaluator     EvaluatorSpec `yaml:"evaluator"`
	Seed          int64         `yaml:"seed"`
	BinWidth      float64       `yaml:"bin_width"`
	Parallelism   int           `yaml:"parallelism"`
}

// HamiltonianSpec describes the cost operator: either the built-in
// scheduling instance or an explicit term list.
type HamiltonianSpec struct {
	Kind string `yaml:"kind"` // schedule or terms

	// Penalty is the conflict-coupling coefficient of the scheduling
	// instance. Higher values bias runs away from the penalized conflict.
	Penalty float64 `yaml:"penalty,omitempty"`

	// Nodes, Terms and Offset define an explicit operator (kind: terms)
	Nodes  int        `yaml:"nodes,omitempty"`
	Terms  []TermSpec `yaml:"terms,omitempty"`
	Offset float64    `yaml:"offset,omitempty"`
}

// TermSpec is one weighted product of Z-eigenvalues over a node subset
type TermSpec struct {
	Coefficient float64 `yaml:"coefficient"`
	Nodes       []int   `yaml:"nodes"`
}

// OptimizerSpec selects and tunes the black-box minimizer
type OptimizerSpec struct {
	Kind string `yaml:"kind"` // spsa or coordinate

	SPSA SPSASpec `yaml:"spsa,omitempty"`

	// StepSize is the coordinate-search step (radians)
	StepSize float64 `yaml:"step_size,omitempty"`

	// EarlyStopping names an optional convergence strategy
	// (no_improvement, plateau, combined). Empty means the fixed
	// iteration budget binds.
	EarlyStopping string `yaml:"early_stopping,omitempty"`
}

// SPSASpec holds the SPSA gain-sequence parameters
type SPSASpec struct {
	A         float64 `yaml:"a,omitempty"`         // step gain numerator
	Alpha     float64 `yaml:"alpha,omitempty"`     // step gain decay exponent
	C         float64 `yaml:"c,omitempty"`         // perturbation size numerator
	Gamma     float64 `yaml:"gamma,omitempty"`     // perturbation decay exponent
	Stability float64 `yaml:"stability,omitempty"` // stability constant added to the iteration count
}

// EvaluatorSpec selects the expectation evaluator
type EvaluatorSpec struct {
	Kind  string `yaml:"kind"`            // analytic or montecarlo
	Shots int    `yaml:"shots,omitempty"` // montecarlo only
}

// DefaultSpec returns a Spec with the scheduling-instance defaults: the 5-event
// scheduling Hamiltonian, 100 runs of 500 iterations, 1000 sampling trials
// and a -7.5 global-minimum threshold.
func DefaultSpec() *Spec {
	return &Spec{
		Hamiltonian: HamiltonianSpec{
			Kind:    "schedule",
			Penalty: 0.5,
		},
		NumRuns:       100,
		MaxIterations: 500,
		Trials:        1000,
		Threshold:     -7.5,
		Optimizer: OptimizerSpec{
			Kind:     "spsa",
			StepSize: 0.1,
		},
		Evaluator: EvaluatorSpec{
			Kind:  "analytic",
			Shots: 1024,
		},
		BinWidth:    0.25,
		Parallelism: 1,
	}
}
