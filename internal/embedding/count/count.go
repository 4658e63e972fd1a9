package count

import (
	"errors"
	"sort"

	"movierec/internal/embedding"
)

// Embedder is a bag-of-words vectorizer producing raw token counts
// over a vocabulary built from the whole corpus.
type Embedder struct {
	vocabulary map[string]int
	terms      []string
	prepared   bool
	tokenizer  *embedding.Tokenizer
}

// NewEmbedder creates an unprepared count embedder.
func NewEmbedder() *Embedder {
	return &Embedder{
		vocabulary: make(map[string]int),
		tokenizer:  embedding.NewTokenizer(),
	}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "count" }

// Prepare builds the sorted vocabulary from the corpus.
func (e *Embedder) Prepare(corpus []string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for count prepare")
	}
	seen := make(map[string]struct{})
	for _, text := range corpus {
		for _, tok := range e.tokenizer.Tokens(text) {
			seen[tok] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return errors.New("no tokens found in corpus")
	}
	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	e.vocabulary = make(map[string]int, len(terms))
	for i, term := range terms {
		e.vocabulary[term] = i
	}
	e.terms = terms
	e.prepared = true
	return nil
}

// Dimension returns the vocabulary size.
func (e *Embedder) Dimension() int { return len(e.terms) }

// Vocabulary returns the sorted vocabulary terms.
func (e *Embedder) Vocabulary() []string {
	out := make([]string, len(e.terms))
	copy(out, e.terms)
	return out
}

// Embed counts vocabulary tokens in text. Unknown tokens are ignored.
func (e *Embedder) Embed(text string) ([]float64, error) {
	if !e.prepared {
		return nil, errors.New("count embedder not prepared")
	}
	vec := make([]float64, len(e.terms))
	for _, tok := range e.tokenizer.Tokens(text) {
		if idx, ok := e.vocabulary[tok]; ok {
			vec[idx]++
		}
	}
	return vec, nil
}
