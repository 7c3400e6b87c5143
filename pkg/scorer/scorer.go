package scorer

import (
	"math"
	"strings"

	"course-advisor-be/pkg/lexicon"
	"course-advisor-be/pkg/textnorm"
	"course-advisor-be/pkg/vectorspace"
)

// Scorer turns one user utterance into a per-category match percentage.
// All inputs are fixed at construction, so Score is a pure function.
type Scorer struct {
	categories []lexicon.Category
	normalizer *textnorm.Normalizer
	space      *vectorspace.Model
}

// New fits the category vector space from the lexicon's pseudo-documents.
// The documents go through the same normalizer as user text, so query and
// category vectors share one stem vocabulary ("coding" and "code" land on
// the same dimension).
func New(lex *lexicon.Lexicon) (*Scorer, error) {
	normalizer := textnorm.NewNormalizer(lex)

	docs := lex.PseudoDocuments()
	normalized := make([]string, len(docs))
	for i, doc := range docs {
		normalized[i] = normalizer.Normalize(doc)
	}

	space, err := vectorspace.Fit(normalized)
	if err != nil {
		return nil, err
	}
	return &Scorer{
		categories: lex.Categories(),
		normalizer: normalizer,
		space:      space,
	}, nil
}

// Score normalizes the utterance and returns category -> percentage (0..100).
//
// A category identifier appearing verbatim in the normalized text
// short-circuits to a single-entry map at 100.0; the first category in
// enumeration order wins. Note "ba" is a substring of "bba", so an utterance
// naming bba resolves to ba under enumeration order. Deliberate: detection is
// plain substring containment, matching how direct hits behaved upstream of
// the vector model.
//
// Otherwise every category gets its cosine similarity against the fitted
// vector space, scaled to a percentage and rounded to two decimals. Empty
// normalized text scores 0.0 everywhere.
func (s *Scorer) Score(raw string) map[lexicon.Category]float64 {
	processed := s.normalizer.Normalize(raw)

	for _, c := range s.categories {
		if strings.Contains(processed, string(c)) {
			return map[lexicon.Category]float64{c: 100.0}
		}
	}

	sims := s.space.Similarities(processed)
	scores := make(map[lexicon.Category]float64, len(s.categories))
	for i, c := range s.categories {
		scores[c] = round2(sims[i] * 100)
	}
	return scores
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
