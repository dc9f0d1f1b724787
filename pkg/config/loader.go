package config

import (
	"fmt"
	"os"
)

// LoadConfig loads and parses a daemon configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// LoadSpec loads and parses an experiment spec file
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}
	spec, err := ParseSpecYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec file %s: %w", path, err)
	}
	return spec, nil
}

// validateConfig performs validation on the daemon configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("invalid log_format: %s (must be json or text)", cfg.LogFormat)
	}

	if cfg.GRPCAddr == "" {
		return fmt.Errorf("grpc_addr cannot be empty")
	}
	if cfg.HTTPAddr == "" {
		return fmt.Errorf("http_addr cannot be empty")
	}

	return nil
}

// validateSpec performs validation on an experiment spec.
// Invalid configuration fails here, before any run starts.
func validateSpec(s *Spec) error {
	if err := validateHamiltonianSpec(&s.Hamiltonian); err != nil {
		return fmt.Errorf("hamiltonian: %w", err)
	}

	if s.NumRuns <= 0 {
		return fmt.Errorf("num_runs must be positive, got %d", s.NumRuns)
	}
	if s.MaxIterations < 0 {
		return fmt.Errorf("max_iterations cannot be negative, got %d", s.MaxIterations)
	}
	if s.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.BinWidth <= 0 {
		return fmt.Errorf("bin_width must be positive, got %f", s.BinWidth)
	}
	if s.Parallelism <= 0 {
		return fmt.Errorf("parallelism must be positive, got %d", s.Parallelism)
	}

	switch s.Optimizer.Kind {
	case "spsa":
		// Gains default inside the optimizer; negative values are rejected
		if s.Optimizer.SPSA.A < 0 || s.Optimizer.SPSA.C < 0 {
			return fmt.Errorf("optimizer spsa gains cannot be negative")
		}
	case "coordinate":
		if s.Optimizer.StepSize <= 0 {
			return fmt.Errorf("optimizer step_size must be positive for coordinate search, got %f", s.Optimizer.StepSize)
		}
	default:
		return fmt.Errorf("invalid optimizer kind: %s (must be spsa or coordinate)", s.Optimizer.Kind)
	}

	switch s.Optimizer.EarlyStopping {
	case "", "no_improvement", "plateau", "combined":
	default:
		return fmt.Errorf("invalid early_stopping: %s (must be no_improvement, plateau, or combined)", s.Optimizer.EarlyStopping)
	}

	switch s.Evaluator.Kind {
	case "analytic":
	case "montecarlo":
		if s.Evaluator.Shots <= 0 {
			return fmt.Errorf("evaluator shots must be positive for montecarlo, got %d", s.Evaluator.Shots)
		}
	default:
		return fmt.Errorf("invalid evaluator kind: %s (must be analytic or montecarlo)", s.Evaluator.Kind)
	}

	return nil
}

// validateHamiltonianSpec validates the cost-operator description
func validateHamiltonianSpec(h *HamiltonianSpec) error {
	switch h.Kind {
	case "schedule":
		if h.Penalty <= 0 {
			return fmt.Errorf("penalty must be positive, got %f", h.Penalty)
		}
	case "terms":
		if h.Nodes < 1 {
			return fmt.Errorf("nodes must be at least 1, got %d", h.Nodes)
		}
		if len(h.Terms) == 0 {
			return fmt.Errorf("at least one term must be defined")
		}
		for i, term := range h.Terms {
			if len(term.Nodes) == 0 {
				return fmt.Errorf("term %d: node subset cannot be empty", i)
			}
			for _, n := range term.Nodes {
				if n < 0 || n >= h.Nodes {
					return fmt.Errorf("term %d: node index %d out of range [0, %d)", i, n, h.Nodes)
				}
			}
		}
	default:
		return fmt.Errorf("invalid kind: %s (must be schedule or terms)", h.Kind)
	}
	return nil
}
