package responder

import (
	"context"
	"strings"

	"support-chat-backend/internal/faq"
)

// Pair binds one lowercase keyword to its canned answer. Order is priority:
// the first pair whose keyword is a substring of the lowercased input wins.
type Pair struct {
	Keyword string
	Answer  string
}

type KeywordResponder struct {
	pairs []Pair
}

// NewKeywordResponder builds the table from the FAQ catalog, keeping catalog
// order so earlier entries outrank later ones.
func NewKeywordResponder() *KeywordResponder {
	var pairs []Pair
	for _, entry := range faq.Entries() {
		for _, kw := range entry.Keywords {
			pairs = append(pairs, Pair{Keyword: strings.ToLower(kw), Answer: entry.Answer})
		}
	}
	return NewKeywordResponderWithPairs(pairs)
}

func NewKeywordResponderWithPairs(pairs []Pair) *KeywordResponder {
	copied := make([]Pair, len(pairs))
	copy(copied, pairs)
	return &KeywordResponder{pairs: copied}
}

func (r *KeywordResponder) Respond(_ context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return ValidationMessage, nil
	}

	lowered := strings.ToLower(message)
	for _, pair := range r.pairs {
		if strings.Contains(lowered, pair.Keyword) {
			return pair.Answer, nil
		}
	}

	return NoMatchMessage, nil
}
