package vectorspace

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Model is a TF-IDF vector space fitted once over a fixed set of documents.
// Immutable after Fit; safe for concurrent reads.
type Model struct {
	vocab      map[string]int // term -> dimension index
	idf        []float64
	docVectors [][]float64 // one L2-normalized vector per fitted document
}

// Fit builds the vocabulary and IDF weights from the given documents and
// precomputes one normalized vector per document. Term frequency is the raw
// count, IDF is smoothed (ln((1+n)/(1+df))+1) and vectors are L2-normalized,
// so cosine similarity reduces to a dot product. Terms shorter than two
// characters are ignored.
func Fit(docs []string) (*Model, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("vectorspace: no documents to fit")
	}

	// Stable vocabulary: collect terms, then sort. Dimension order must not
	// depend on map iteration so repeated fits give identical vectors.
	termSet := make(map[string]struct{})
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
		for _, t := range tokenized[i] {
			termSet[t] = struct{}{}
		}
	}
	terms := make([]string, 0, len(termSet))
	for t := range termSet {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}

	df := make([]int, len(terms))
	for _, tokens := range tokenized {
		seen := make(map[int]struct{})
		for _, t := range tokens {
			idx := vocab[t]
			if _, ok := seen[idx]; !ok {
				seen[idx] = struct{}{}
				df[idx]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	m := &Model{vocab: vocab, idf: idf}
	for _, tokens := range tokenized {
		m.docVectors = append(m.docVectors, m.vectorize(tokens))
	}

	if len(m.docVectors) != len(docs) {
		return nil, fmt.Errorf("vectorspace: fitted %d vectors for %d documents", len(m.docVectors), len(docs))
	}
	return m, nil
}

// DocumentCount returns how many documents the model was fitted over.
func (m *Model) DocumentCount() int {
	return len(m.docVectors)
}

// VocabularySize returns the dimension shared by all vectors.
func (m *Model) VocabularySize() int {
	return len(m.vocab)
}

// Similarities projects the query text into the fitted space and returns the
// cosine similarity against every fitted document, in fit order. Text with no
// in-vocabulary terms yields all zeros; that is a valid result, not an error.
func (m *Model) Similarities(text string) []float64 {
	query := m.vectorize(tokenize(text))
	sims := make([]float64, len(m.docVectors))
	for i, doc := range m.docVectors {
		sims[i] = dot(query, doc)
	}
	return sims
}

// vectorize maps tokens to a L2-normalized tf-idf vector. Out-of-vocabulary
// tokens are dropped.
func (m *Model) vectorize(tokens []string) []float64 {
	vec := make([]float64, len(m.vocab))
	for _, t := range tokens {
		if idx, ok := m.vocab[t]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for i := range vec {
		if vec[i] > 0 {
			vec[i] *= m.idf[i]
			norm += vec[i] * vec[i]
		}
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
