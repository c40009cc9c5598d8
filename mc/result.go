package mc

import "time"

// Result is an immutable snapshot of one simulation run.
type Result struct {
	Estimate   float64
	Variance   float64
	StdError   float64
	Iterations uint64
	Elapsed    time.Duration
}

// ConfidenceInterval bounds the estimate at a given confidence level. It is
// derived from a Result on demand, never stored.
type ConfidenceInterval struct {
	Lower float64
	Upper float64
	Level float64
}

// zScore looks up the normal-approximation z value for a confidence level.
// Unrecognized levels fall back to the 95% value.
func zScore(level float64) float64 {
	switch level {
	case 0.90:
		return 1.645
	case 0.95:
		return 1.96
	case 0.99:
		return 2.576
	default:
		return 1.96
	}
}

// CI returns the normal-approximation confidence interval
// estimate ± z(level)·stderr for the given result.
func CI(r Result, level float64) ConfidenceInterval {
	z := zScore(level)
	return ConfidenceInterval{
		Lower: r.Estimate - z*r.StdError,
		Upper: r.Estimate + z*r.StdError,
		Level: level,
	}
}

// CI95 returns the 95% confidence interval for the given result.
func CI95(r Result) ConfidenceInterval {
	return CI(r, 0.95)
}
