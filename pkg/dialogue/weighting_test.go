package dialogue

import (
	"math"
	"testing"
)

func TestDecayPolicy(t *testing.T) {
	p := DecayPolicy{Factor: 0.8}

	tests := []struct {
		raw  float64
		turn int
		want float64
	}{
		{100, 1, 80},
		{100, 2, 64},
		{50, 1, 40},
		{0, 3, 0},
	}
	for _, tt := range tests {
		if got := p.Increment(tt.raw, 0, tt.turn); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Increment(%v, 0, %d) = %v, want %v", tt.raw, tt.turn, got, tt.want)
		}
	}
}

func TestDiminishingPolicy(t *testing.T) {
	p := DiminishingPolicy{}

	tests := []struct {
		raw, acc float64
		want     float64
	}{
		{100, 0, 100},
		{100, 100, 50},
		{50, 100, 25},
		{0, 300, 0},
	}
	for _, tt := range tests {
		if got := p.Increment(tt.raw, tt.acc, 1); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Increment(%v, %v) = %v, want %v", tt.raw, tt.acc, got, tt.want)
		}
	}
}

func TestPolicyFromName(t *testing.T) {
	if got := PolicyFromName("decay").Name(); got != PolicyDecay {
		t.Errorf("PolicyFromName(decay).Name() = %s", got)
	}
	if got := PolicyFromName("diminishing").Name(); got != PolicyDiminishing {
		t.Errorf("PolicyFromName(diminishing).Name() = %s", got)
	}
	// Unknown names fall back to the default.
	if got := PolicyFromName("").Name(); got != PolicyDiminishing {
		t.Errorf("PolicyFromName(\"\").Name() = %s, want diminishing", got)
	}
}

func TestIncrementsNeverNegative(t *testing.T) {
	for _, p := range []WeightingPolicy{DecayPolicy{Factor: 0.8}, DiminishingPolicy{}} {
		for turn := 1; turn <= 10; turn++ {
			for _, acc := range []float64{0, 50, 250} {
				if got := p.Increment(30, acc, turn); got < 0 {
					t.Errorf("%s: Increment(30, %v, %d) = %v, want >= 0", p.Name(), acc, turn, got)
				}
			}
		}
	}
}
