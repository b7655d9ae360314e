// Package llm implements the generative answer strategy on top of an OpenAI-compatible API.
package llm

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/umputun/eduflow/pkg/config"
	"github.com/umputun/eduflow/pkg/domain"
)

// FailureText is returned when the completion call fails
const FailureText = "Sorry, something went wrong while contacting the AI tutor."

// Tutor answers with a single chat completion. Answers carry no citations.
type Tutor struct {
	client *openai.Client
	config config.LLMConfig
}

// NewTutor creates a new LLM tutor
func NewTutor(cfg config.LLMConfig) *Tutor {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	return &Tutor{client: openai.NewClientWithConfig(clientConfig), config: cfg}
}

// Answer asks the model. Any failure turns into FailureText.
func (t *Tutor) Answer(ctx context.Context, question, subject string) domain.Answer {
	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	text, err := t.complete(ctx, buildPrompt(question, subject))
	if err != nil {
		log.Printf("[WARN] tutor request failed: %v", err)
		return domain.Answer{Text: FailureText, Sources: []domain.Citation{}}
	}
	return domain.Answer{Text: text, Sources: []domain.Citation{}}
}

func (t *Tutor) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := t.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       t.config.Model,
		Temperature: float32(t.config.Temperature),
		MaxTokens:   t.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("empty response from llm")
	}
	return text, nil
}

// buildPrompt creates the single user prompt for the model
func buildPrompt(question, subject string) string {
	return fmt.Sprintf("You are an AI tutor for %s. The student asked: \"%s\". "+
		"Answer clearly and concisely, in a few short paragraphs suitable for a learner.", subject, question)
}
