package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/montecarlo-sim/montecarlo-sim/mc"
)

// ScenarioSpec is a YAML description of one simulation run, an alternative
// to spelling everything out in CLI flags.
type ScenarioSpec struct {
	Scenario   string         `yaml:"scenario"`
	Iterations uint64         `yaml:"iterations"`
	Seed       uint64         `yaml:"seed,omitempty"`
	Policy     string         `yaml:"policy,omitempty"`  // sequential (default), parallel, gpu
	Workers    int            `yaml:"workers,omitempty"` // parallel only; 0 = auto-detect
	CILevel    float64        `yaml:"ci_level,omitempty"`
	Transform  *TransformSpec `yaml:"transform,omitempty"` // replaces the scenario's default transform
}

// TransformSpec selects a post-processing transform by name.
type TransformSpec struct {
	Type      string  `yaml:"type"`
	A         float64 `yaml:"a,omitempty"`         // linear
	B         float64 `yaml:"b,omitempty"`         // linear
	Min       float64 `yaml:"min,omitempty"`       // clamp
	Max       float64 `yaml:"max,omitempty"`       // clamp
	Threshold float64 `yaml:"threshold,omitempty"` // indicator
	Greater   bool    `yaml:"greater,omitempty"`   // indicator
	Offset    float64 `yaml:"offset,omitempty"`    // log
	Exponent  float64 `yaml:"exponent,omitempty"`  // power
}

// LoadScenarioSpec reads and validates a scenario spec from a YAML file.
// Unknown fields are rejected to catch typos early.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario spec: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var spec ScenarioSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the spec for fields the run command cannot normalize away.
func (s *ScenarioSpec) Validate() error {
	if s.Scenario == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.Iterations == 0 {
		return fmt.Errorf("iterations must be > 0")
	}
	switch s.Policy {
	case "", "sequential", "parallel", "gpu":
	default:
		return fmt.Errorf("unknown policy %q", s.Policy)
	}
	if s.Transform != nil {
		if _, err := s.Transform.Build(); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the transform the spec names.
func (t *TransformSpec) Build() (mc.Transform, error) {
	switch t.Type {
	case "", "identity":
		return mc.Identity, nil
	case "square":
		return mc.Square, nil
	case "abs":
		return mc.Abs, nil
	case "sigmoid":
		return mc.Sigmoid, nil
	case "exp":
		return mc.Exp, nil
	case "clamp":
		if t.Max < t.Min {
			return nil, fmt.Errorf("clamp: max %g < min %g", t.Max, t.Min)
		}
		return mc.Clamp(t.Min, t.Max), nil
	case "linear":
		return mc.LinearScale(t.A, t.B), nil
	case "indicator":
		return mc.Indicator(t.Threshold, t.Greater), nil
	case "log":
		return mc.Log(t.Offset), nil
	case "power":
		return mc.Power(t.Exponent), nil
	default:
		return nil, fmt.Errorf("unknown transform %q", t.Type)
	}
}
