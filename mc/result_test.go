package mc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCI_ZTable(t *testing.T) {
	r := Result{Estimate: 10, StdError: 2}

	tests := []struct {
		name  string
		level float64
		z     float64
	}{
		{"90 percent", 0.90, 1.645},
		{"95 percent", 0.95, 1.96},
		{"99 percent", 0.99, 2.576},
		{"unrecognized defaults to 95", 0.80, 1.96},
		{"zero defaults to 95", 0, 1.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := CI(r, tt.level)
			assert.InDelta(t, 10-tt.z*2, ci.Lower, 1e-12)
			assert.InDelta(t, 10+tt.z*2, ci.Upper, 1e-12)
			assert.Equal(t, tt.level, ci.Level)
		})
	}
}

func TestCI95(t *testing.T) {
	r := Result{Estimate: 1, StdError: 0.5, Iterations: 100, Elapsed: time.Millisecond}
	ci := CI95(r)
	assert.InDelta(t, 1-1.96*0.5, ci.Lower, 1e-12)
	assert.InDelta(t, 1+1.96*0.5, ci.Upper, 1e-12)
	assert.Equal(t, 0.95, ci.Level)
}

func TestCI_ZeroStdError(t *testing.T) {
	ci := CI(Result{Estimate: 5}, 0.99)
	assert.Equal(t, 5.0, ci.Lower)
	assert.Equal(t, 5.0, ci.Upper)
}
