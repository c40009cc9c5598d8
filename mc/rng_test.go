package mc

import (
	"math/rand"
	"testing"
)

// firstN draws the first n values from the generator for substream stream.
func firstN(seed, stream uint64, n int) []uint64 {
	rng := Derive(seed, stream, nil)
	out := make([]uint64, n)
	for i := range out {
		out[i] = rng.Uint64()
	}
	return out
}

func TestDerive_Deterministic(t *testing.T) {
	// BDD: identical (seed, stream) always yields an identical sequence.
	tests := []struct {
		name   string
		seed   uint64
		stream uint64
	}{
		{"stream zero", 42, 0},
		{"nonzero stream", 42, 17},
		{"default seed", DefaultSeed, 3},
		{"max values", ^uint64(0), ^uint64(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := firstN(tt.seed, tt.stream, 10)
			b := firstN(tt.seed, tt.stream, 10)
			for i := range a {
				if a[i] != b[i] {
					t.Fatalf("value %d: %d != %d, want identical sequences", i, a[i], b[i])
				}
			}
		})
	}
}

func TestDerive_StreamDecorrelation(t *testing.T) {
	// BDD: distinct stream ids under the same seed produce different
	// first-10-value sequences (weak decorrelation check).
	const seed = 42
	streams := []uint64{0, 1, 2, 3, 100}
	sequences := make([][]uint64, len(streams))
	for i, s := range streams {
		sequences[i] = firstN(seed, s, 10)
	}

	for i := 0; i < len(streams); i++ {
		for j := i + 1; j < len(streams); j++ {
			same := true
			for k := range sequences[i] {
				if sequences[i][k] != sequences[j][k] {
					same = false
					break
				}
			}
			if same {
				t.Errorf("streams %d and %d produced identical first-10 sequences", streams[i], streams[j])
			}
		}
	}
}

func TestDerive_SeedSensitivity(t *testing.T) {
	a := firstN(1, 0, 10)
	b := firstN(2, 0, 10)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different base seeds produced identical substream 0 sequences")
	}
}

func TestSubstreamSeed_PureFunction(t *testing.T) {
	if SubstreamSeed(5, 9) != SubstreamSeed(5, 9) {
		t.Error("SubstreamSeed not deterministic")
	}
	if SubstreamSeed(5, 9) == SubstreamSeed(9, 5) {
		t.Error("seed and stream are interchangeable; expected asymmetric folding")
	}
	if SubstreamSeed(5, 0) == SubstreamSeed(5, 1) {
		t.Error("adjacent streams collapsed to the same substream seed")
	}
}

func TestDerive_CustomFactory(t *testing.T) {
	// BDD: the factory receives the folded substream seed and its generator
	// is used as-is, so alternate algorithms can be substituted.
	var gotSeed uint64
	factory := func(seed uint64) *rand.Rand {
		gotSeed = seed
		return rand.New(rand.NewSource(int64(seed)))
	}

	Derive(123, 4, factory)
	if gotSeed != SubstreamSeed(123, 4) {
		t.Errorf("factory received seed %d, want %d", gotSeed, SubstreamSeed(123, 4))
	}
}
