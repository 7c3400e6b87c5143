package dialogue

import (
	"time"

	"course-advisor-be/pkg/lexicon"
)

// Stage is the coarse phase of a conversation, derived from the turn count.
type Stage string

const (
	StageGreeting Stage = "GREETING"
	StageEarly    Stage = "EARLY"
	StageMid      Stage = "MID"
	StageLate     Stage = "LATE"
)

// State is the per-conversation evidence: accumulated category scores, the
// substantive turn counter and the raw utterance history.
type State struct {
	ID                string
	AccumulatedScores map[lexicon.Category]float64
	TurnCount         int
	InterestHistory   []string
	LastActive        time.Time
}

// NewState creates a fresh state with a zero score for every category.
// Every category is always present in the map; a missing key downstream is
// an invariant violation, not a default.
func NewState(id string, categories []lexicon.Category) *State {
	scores := make(map[lexicon.Category]float64, len(categories))
	for _, c := range categories {
		scores[c] = 0.0
	}
	return &State{
		ID:                id,
		AccumulatedScores: scores,
		InterestHistory:   []string{},
		LastActive:        time.Now(),
	}
}

// Stage derives the conversation phase from the turn count.
func (s *State) Stage() Stage {
	switch {
	case s.TurnCount == 0:
		return StageGreeting
	case s.TurnCount <= 2:
		return StageEarly
	case s.TurnCount <= 4:
		return StageMid
	default:
		return StageLate
	}
}
