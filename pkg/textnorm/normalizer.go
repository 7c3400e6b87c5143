package textnorm

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"

	"course-advisor-be/pkg/lexicon"
)

// Normalizer reduces free text to a canonical space-joined sequence of
// content-bearing base forms: lowercase, synonym substitution, then
// tokenization with stopword and non-alphabetic filtering, then stemming.
type Normalizer struct {
	synonyms []lexicon.Synonym
}

func NewNormalizer(lex *lexicon.Lexicon) *Normalizer {
	return &Normalizer{synonyms: lex.Synonyms()}
}

// Normalize applies the full pipeline. Empty input yields empty output.
//
// Synonym entries are applied as literal substring replacements in table
// order. Entries overlap on purpose: a later replacement may act on text an
// earlier one produced ("physics" -> "science" after "math" -> "mathematics"
// has already run). That cascade is part of the contract.
func (n *Normalizer) Normalize(raw string) string {
	text := strings.ToLower(raw)
	for _, s := range n.synonyms {
		text = strings.ReplaceAll(text, s.From, s.To)
	}

	var out []string
	for _, token := range tokenize(text) {
		if !isAlphabetic(token) {
			continue
		}
		if isStopword(token) {
			continue
		}
		stem, err := snowball.Stem(token, "english", false)
		if err != nil || stem == "" {
			// Unstemmable tokens keep their surface form.
			out = append(out, token)
			continue
		}
		out = append(out, stem)
	}
	return strings.Join(out, " ")
}

// tokenize splits on whitespace and strips punctuation from token edges.
// Tokens with interior digits or symbols ("gpt4", "c++") survive here and
// are rejected by the alphabetic filter, matching how a linguistic
// tokenizer treats them as single non-word tokens.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isAlphabetic(token string) bool {
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(token) > 0
}
