package dialogue

import "math"

// WeightingPolicy decides how much of a raw per-turn score is added to a
// category's accumulated score. Two variants shipped at different times;
// both are kept and selected by configuration.
type WeightingPolicy interface {
	// Increment returns the amount to add given the raw turn score, the
	// category's current accumulated score and the 1-based turn index.
	Increment(raw, accumulated float64, turn int) float64
	Name() string
}

const (
	PolicyDecay       = "decay"
	PolicyDiminishing = "diminishing"
)

// DecayPolicy damps later turns exponentially by turn index: the first turn
// contributes factor*raw, the fifth factor^5*raw.
type DecayPolicy struct {
	Factor float64
}

func (p DecayPolicy) Increment(raw, _ float64, turn int) float64 {
	return raw * math.Pow(p.Factor, float64(turn))
}

func (p DecayPolicy) Name() string { return PolicyDecay }

// DiminishingPolicy damps by current standing instead of turn index: the
// more evidence a category already has, the less a repeat mention adds.
type DiminishingPolicy struct{}

func (DiminishingPolicy) Increment(raw, accumulated float64, _ int) float64 {
	return raw / (1 + accumulated/100)
}

func (DiminishingPolicy) Name() string { return PolicyDiminishing }

// PolicyFromName maps a config value to a policy, defaulting to diminishing
// for unknown names.
func PolicyFromName(name string) WeightingPolicy {
	if name == PolicyDecay {
		return DecayPolicy{Factor: 0.8}
	}
	return DiminishingPolicy{}
}
