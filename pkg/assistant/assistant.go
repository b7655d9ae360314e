// Package assistant answers learner questions about the video being watched.
//
// The default strategy, SearchAggregator, asks every knowledge provider at
// once and merges whatever came back in fixed priority order. A provider that
// fails, times out or panics contributes nothing, it never breaks the answer.
// The generative strategy lives in pkg/llm and satisfies the same Answerer
// contract, it is chosen explicitly by configuration.
//
// Sessions on top of an Answerer hold the chat transcript of one open panel.
package assistant

import (
	"context"

	"github.com/umputun/eduflow/pkg/domain"
)

//go:generate moq -out mocks/provider.go -pkg mocks -skip-ensure -fmt goimports . Provider Answerer

// FallbackText is returned when no provider produced any text
const FallbackText = "I couldn't find a precise answer. Try rephrasing your question or be more specific."

// DefaultMaxAnswerLen limits the merged answer, in characters
const DefaultMaxAnswerLen = 700

// Answerer answers a question in the context of a subject. It never fails, problems
// turn into a fallback text.
type Answerer interface {
	Answer(ctx context.Context, question, subject string) domain.Answer
}

// Provider is a knowledge source. Empty Text means no signal.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, query string) (Contribution, error)
}

// Contribution is what a single provider returned
type Contribution struct {
	Text   string
	Source *domain.Citation
}

// Empty reports whether the contribution carries no text
func (c Contribution) Empty() bool { return c.Text == "" }

func fallbackAnswer() domain.Answer {
	return domain.Answer{Text: FallbackText, Sources: []domain.Citation{}}
}
