package dialogue

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"course-advisor-be/pkg/lexicon"
)

// TurnScorer produces per-category percentages for one utterance.
type TurnScorer interface {
	Score(raw string) map[lexicon.Category]float64
}

// Options tune the engine. Zero values get sensible defaults.
type Options struct {
	Weighting       WeightingPolicy
	ReportThreshold float64    // minimum accumulated score shown in summaries
	Rand            *rand.Rand // injected so tests can fix the seed
}

// Engine is the conversation state machine. It owns no sessions itself; the
// caller passes the State to mutate, which keeps the read-modify-write
// atomicity concern in the session store where it belongs.
type Engine struct {
	lex             *lexicon.Lexicon
	categories      []lexicon.Category
	scorer          TurnScorer
	weighting       WeightingPolicy
	reportThreshold float64

	mu  sync.Mutex // guards rng; engines are shared across requests
	rng *rand.Rand
}

func NewEngine(lex *lexicon.Lexicon, scorer TurnScorer, opts Options) *Engine {
	if opts.Weighting == nil {
		opts.Weighting = DiminishingPolicy{}
	}
	if opts.ReportThreshold == 0 {
		opts.ReportThreshold = 5.0
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		lex:             lex,
		categories:      lex.Categories(),
		scorer:          scorer,
		weighting:       opts.Weighting,
		reportThreshold: opts.ReportThreshold,
		rng:             opts.Rand,
	}
}

// IsGreeting reports whether the raw input contains a greeting phrase.
func (e *Engine) IsGreeting(raw string) bool {
	return containsAny(strings.ToLower(raw), lexicon.GreetingPhrases)
}

// IsFarewell reports whether the raw input contains a farewell phrase.
func (e *Engine) IsFarewell(raw string) bool {
	return containsAny(strings.ToLower(raw), lexicon.FarewellPhrases)
}

// GreetingReply samples one of the fixed greeting responses.
func (e *Engine) GreetingReply() string {
	return lexicon.GreetingResponses[e.sample(len(lexicon.GreetingResponses))]
}

// ProcessTurn handles one substantive utterance: scores it, folds the turn
// score into the accumulated scores under the weighting policy, records the
// utterance and renders the stage-appropriate reply.
//
// Scoring runs before any mutation, so a scorer failure leaves the state
// untouched and the turn can be retried.
func (e *Engine) ProcessTurn(state *State, raw string) string {
	turnScores := e.scorer.Score(raw)

	state.TurnCount++
	for c, s := range turnScores {
		acc, ok := state.AccumulatedScores[c]
		if !ok {
			// Every category is seeded at state creation; a hole here means
			// the state was built against a different lexicon.
			panic(fmt.Sprintf("dialogue: category %q missing from accumulated scores", c))
		}
		state.AccumulatedScores[c] = acc + e.weighting.Increment(s, acc, state.TurnCount)
	}
	state.InterestHistory = append(state.InterestHistory, raw)
	state.LastActive = time.Now()

	return e.renderTurnReply(state)
}

// FinalReport renders the farewell summary for a session: ranked matches
// above the relevance floor, blurbs for the top three and career titles for
// the winner.
func (e *Engine) FinalReport(state *State) string {
	return e.renderFinalReport(state)
}

// Ranked is one category with its accumulated score.
type Ranked struct {
	Category lexicon.Category
	Score    float64
}

// Ranking sorts categories by accumulated score, highest first. Equal scores
// keep lexicon enumeration order, which makes the top category deterministic.
func (e *Engine) Ranking(state *State) []Ranked {
	ranked := make([]Ranked, 0, len(e.categories))
	for _, c := range e.categories {
		ranked = append(ranked, Ranked{Category: c, Score: state.AccumulatedScores[c]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func (e *Engine) sample(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
