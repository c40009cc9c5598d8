package cmd

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/montecarlo-sim/montecarlo-sim/mc"
	"github.com/montecarlo-sim/montecarlo-sim/mc/dist"
)

// Scenario couples a demo model with its natural transform and, when one
// exists, the analytical value the estimate should approach.
type Scenario struct {
	Name      string
	Model     mc.Model
	Transform mc.Transform
	Reference float64 // analytical value; NaN when there is none
}

// NewScenario builds a named demo scenario.
// Valid names: "pi", "dice", "integration", "uniform-mean", "option".
func NewScenario(name string) (Scenario, error) {
	switch name {
	case "pi":
		// Indicator of a uniform point landing in the quarter disc, scaled by 4.
		model := mc.ModelFunc(func(rng *rand.Rand) float64 {
			x := rng.Float64()
			y := rng.Float64()
			if x*x+y*y <= 1 {
				return 1
			}
			return 0
		})
		return Scenario{Name: name, Model: model, Transform: mc.LinearScale(4, 0), Reference: math.Pi}, nil

	case "dice":
		model := mc.ModelFunc(func(rng *rand.Rand) float64 {
			return float64(rng.Intn(6) + 1)
		})
		return Scenario{Name: name, Model: model, Reference: 3.5}, nil

	case "integration":
		// ∫₀¹ x² dx = 1/3 via uniform sampling of the integrand.
		model := dist.Uniform(0, 1)
		return Scenario{Name: name, Model: model, Transform: mc.Square, Reference: 1.0 / 3.0}, nil

	case "uniform-mean":
		return Scenario{Name: name, Model: dist.Uniform(0, 1), Reference: 0.5}, nil

	case "option":
		model := NewEuropeanCallOption(100, 100, 0.05, 0.20, 1)
		return Scenario{Name: name, Model: model, Reference: model.AnalyticalPrice()}, nil

	default:
		return Scenario{}, fmt.Errorf("unknown scenario %q", name)
	}
}

// EuropeanCallOption prices a European call by simulating the terminal
// stock price under geometric Brownian motion and discounting the payoff.
type EuropeanCallOption struct {
	spot     float64
	strike   float64
	rate     float64
	vol      float64
	maturity float64
}

// NewEuropeanCallOption captures the Black-Scholes parameters immutably.
func NewEuropeanCallOption(spot, strike, rate, vol, maturity float64) *EuropeanCallOption {
	return &EuropeanCallOption{spot: spot, strike: strike, rate: rate, vol: vol, maturity: maturity}
}

// Trial implements mc.Model.
func (o *EuropeanCallOption) Trial(rng *rand.Rand) (float64, error) {
	z := distuv.Normal{Mu: 0, Sigma: 1, Src: dist.NewSource(rng)}.Rand()
	terminal := o.spot * math.Exp((o.rate-0.5*o.vol*o.vol)*o.maturity+o.vol*math.Sqrt(o.maturity)*z)
	payoff := math.Max(terminal-o.strike, 0)
	return math.Exp(-o.rate*o.maturity) * payoff, nil
}

// AnalyticalPrice returns the closed-form Black-Scholes price for
// comparison against the simulated estimate.
func (o *EuropeanCallOption) AnalyticalPrice() float64 {
	d1 := (math.Log(o.spot/o.strike) + (o.rate+0.5*o.vol*o.vol)*o.maturity) / (o.vol * math.Sqrt(o.maturity))
	d2 := d1 - o.vol*math.Sqrt(o.maturity)
	stdNormal := distuv.Normal{Mu: 0, Sigma: 1}
	return o.spot*stdNormal.CDF(d1) - o.strike*math.Exp(-o.rate*o.maturity)*stdNormal.CDF(d2)
}
