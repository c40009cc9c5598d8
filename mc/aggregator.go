package mc

import (
	"fmt"
	"math"
)

// Aggregator accumulates statistics from a stream of sample values. It is
// usable standalone for manual accumulation; the engine feeds it one value
// per trial.
//
// Degenerate statistics are defined, never NaN: Variance is 0 until two
// samples have been added, StdError is 0 until one has.
type Aggregator interface {
	// Add folds one sample into the running state.
	Add(value float64)
	// Result returns the current estimate (the running mean).
	Result() float64
	// Variance returns the Bessel-corrected sample variance.
	Variance() float64
	// StdError returns sqrt(Variance/Count).
	StdError() float64
	// Count returns the number of samples added so far.
	Count() uint64
	// Reset returns the aggregator to its empty state.
	Reset()
}

// Mergeable is an Aggregator whose state from two independent accumulations
// can be combined into the state of their concatenation. The Parallel policy
// requires it: re-adding partition means as if they were raw samples would
// discard each partition's internal variance, so aggregators without a true
// merge are rejected rather than approximated.
type Mergeable interface {
	Aggregator
	// Fork returns a fresh, empty aggregator of the same kind, suitable for
	// independent accumulation on another worker.
	Fork() Mergeable
	// Merge folds other's full state into the receiver. Merge is associative
	// and commutative up to floating-point rounding.
	Merge(other Mergeable) error
}

// Welford is an online mean/variance aggregator using Welford's single-pass
// update, with Chan's parallel combination for Merge. The zero value is
// ready to use.
type Welford struct {
	count uint64
	mean  float64
	m2    float64
}

// NewWelford returns an empty Welford aggregator.
func NewWelford() *Welford {
	return &Welford{}
}

// Add folds one sample into the running mean and sum of squared deviations.
func (w *Welford) Add(value float64) {
	w.count++
	delta := value - w.mean
	w.mean += delta / float64(w.count)
	delta2 := value - w.mean
	w.m2 += delta * delta2
}

// Result returns the running mean.
func (w *Welford) Result() float64 {
	return w.mean
}

// Variance returns the Bessel-corrected sample variance, 0 for count < 2.
func (w *Welford) Variance() float64 {
	if w.count < 2 {
		return 0
	}
	return w.m2 / float64(w.count-1)
}

// StdError returns the standard error of the mean, 0 for count == 0.
func (w *Welford) StdError() float64 {
	if w.count == 0 {
		return 0
	}
	return math.Sqrt(w.Variance() / float64(w.count))
}

// Count returns the number of samples added.
func (w *Welford) Count() uint64 {
	return w.count
}

// Reset returns the aggregator to the empty state.
func (w *Welford) Reset() {
	w.count = 0
	w.mean = 0
	w.m2 = 0
}

// Fork returns a fresh empty Welford aggregator.
func (w *Welford) Fork() Mergeable {
	return &Welford{}
}

// Merge combines other's state into w using Chan's parallel-variance
// formula, as if w had also seen every sample other saw.
func (w *Welford) Merge(other Mergeable) error {
	o, ok := other.(*Welford)
	if !ok {
		return fmt.Errorf("cannot merge %T into *mc.Welford", other)
	}
	if o.count == 0 {
		return nil
	}
	if w.count == 0 {
		w.count = o.count
		w.mean = o.mean
		w.m2 = o.m2
		return nil
	}
	total := float64(w.count + o.count)
	delta := o.mean - w.mean
	w.mean += delta * (float64(o.count) / total)
	w.m2 += o.m2 + delta*delta*(float64(w.count)*float64(o.count)/total)
	w.count += o.count
	return nil
}

// Histogram counts samples into fixed-width bins over [min, max). Values
// outside the range are counted toward Count but land in no bin. Histogram
// has no merge law and therefore cannot be used with the Parallel policy.
type Histogram struct {
	bins     []uint64
	min      float64
	binWidth float64
	count    uint64
	sum      float64
}

// NewHistogram creates a histogram with the given number of bins over
// [min, max). bins must be >= 1 and max > min.
func NewHistogram(bins int, min, max float64) *Histogram {
	if bins < 1 {
		bins = 1
	}
	return &Histogram{
		bins:     make([]uint64, bins),
		min:      min,
		binWidth: (max - min) / float64(bins),
	}
}

// Add counts the value, binning it if it falls within [min, max).
func (h *Histogram) Add(value float64) {
	if value >= h.min && value < h.min+h.binWidth*float64(len(h.bins)) {
		idx := int((value - h.min) / h.binWidth)
		if idx >= 0 && idx < len(h.bins) {
			h.bins[idx]++
		}
	}
	h.count++
	h.sum += value
}

// Result returns the mean of all values seen, binned or not.
func (h *Histogram) Result() float64 {
	if h.count == 0 {
		return 0
	}
	return h.sum / float64(h.count)
}

// Variance is not tracked by Histogram and reports 0.
func (h *Histogram) Variance() float64 { return 0 }

// StdError is not tracked by Histogram and reports 0.
func (h *Histogram) StdError() float64 { return 0 }

// Count returns the number of samples added.
func (h *Histogram) Count() uint64 { return h.count }

// Reset clears all bins and counters.
func (h *Histogram) Reset() {
	for i := range h.bins {
		h.bins[i] = 0
	}
	h.count = 0
	h.sum = 0
}

// Bins returns the per-bin counts. The returned slice is the live backing
// store; callers must not mutate it.
func (h *Histogram) Bins() []uint64 {
	return h.bins
}
