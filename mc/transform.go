package mc

import "math"

// Transform is a pure numeric post-processing step applied to each raw
// sample before aggregation. Transforms must not depend on execution order
// or accumulate state.
type Transform func(x float64) float64

// Identity returns x unchanged.
func Identity(x float64) float64 { return x }

// Square returns x*x.
func Square(x float64) float64 { return x * x }

// Abs returns |x|.
func Abs(x float64) float64 { return math.Abs(x) }

// Sigmoid returns the logistic function of x.
func Sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Exp returns e**x.
func Exp(x float64) float64 { return math.Exp(x) }

// Clamp restricts values to [min, max].
func Clamp(min, max float64) Transform {
	return func(x float64) float64 {
		if x < min {
			return min
		}
		if x > max {
			return max
		}
		return x
	}
}

// LinearScale returns a*x + b.
func LinearScale(a, b float64) Transform {
	return func(x float64) float64 { return a*x + b }
}

// Indicator maps x to 1 when it is on the chosen side of threshold, else 0.
// greater selects x > threshold; otherwise x < threshold.
func Indicator(threshold float64, greater bool) Transform {
	return func(x float64) float64 {
		if (greater && x > threshold) || (!greater && x < threshold) {
			return 1
		}
		return 0
	}
}

// Log returns ln(x + offset). The offset shifts the domain so inputs near
// zero or slightly negative stay representable.
func Log(offset float64) Transform {
	return func(x float64) float64 { return math.Log(x + offset) }
}

// Power returns x**exponent.
func Power(exponent float64) Transform {
	return func(x float64) float64 { return math.Pow(x, exponent) }
}

// Compose returns f∘g: g is applied first, then f.
func Compose(f, g Transform) Transform {
	return func(x float64) float64 { return f(g(x)) }
}
