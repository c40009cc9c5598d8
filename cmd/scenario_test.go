package cmd

import (
	"math"
	"testing"

	"github.com/montecarlo-sim/montecarlo-sim/mc"
)

func TestNewScenario_KnownNames(t *testing.T) {
	for _, name := range []string{"pi", "dice", "integration", "uniform-mean", "option"} {
		t.Run(name, func(t *testing.T) {
			sc, err := NewScenario(name)
			if err != nil {
				t.Fatal(err)
			}
			if sc.Model == nil {
				t.Fatal("scenario has no model")
			}
		})
	}
}

func TestNewScenario_Unknown(t *testing.T) {
	if _, err := NewScenario("roulette"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestScenario_EstimatesApproachReference(t *testing.T) {
	tests := []struct {
		name       string
		iterations uint64
		relTol     float64
	}{
		{"pi", 200_000, 0.01},
		{"dice", 100_000, 0.01},
		{"integration", 200_000, 0.02},
		{"uniform-mean", 100_000, 0.01},
		{"option", 200_000, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := NewScenario(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			engine := mc.NewEngine(sc.Model, mc.Sequential{}, sc.Transform, mc.DefaultSeed)
			res, err := engine.Run(tt.iterations)
			if err != nil {
				t.Fatal(err)
			}
			relErr := math.Abs(res.Estimate-sc.Reference) / math.Abs(sc.Reference)
			if relErr > tt.relTol {
				t.Errorf("estimate = %v, reference = %v, rel error %v > %v",
					res.Estimate, sc.Reference, relErr, tt.relTol)
			}
		})
	}
}

func TestEuropeanCallOption_AnalyticalPrice(t *testing.T) {
	// Standard textbook parameters: S0=100, K=100, r=5%, σ=20%, T=1.
	option := NewEuropeanCallOption(100, 100, 0.05, 0.20, 1)
	price := option.AnalyticalPrice()
	if math.Abs(price-10.4506) > 0.001 {
		t.Errorf("Black-Scholes price = %v, want ≈10.4506", price)
	}
}

func TestBuildPolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  string
		wantErr bool
	}{
		{"default", "", false},
		{"sequential", "sequential", false},
		{"parallel", "parallel", false},
		{"gpu", "gpu", false},
		{"unknown", "fpga", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := buildPolicy(tt.policy, 2)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if p == nil {
				t.Fatal("nil policy")
			}
		})
	}
}
