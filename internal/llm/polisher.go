// Package llm wraps the OpenAI API for the single capability the
// recommendation engine consumes: rewriting a deterministic recommendation
// string more fluently. The output is untrusted; callers verify it preserved
// every time value before using it.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrUnavailable indicates the polishing service is not configured.
	ErrUnavailable = errors.New("polish service unavailable")
	// ErrRequest indicates an error during the API request.
	ErrRequest = errors.New("polish request failed")
	// ErrEmptyResponse indicates the model returned no usable text.
	ErrEmptyResponse = errors.New("polish response empty")
)

const polishSystemPrompt = `You rewrite short sleep recommendations to read more naturally.

Rules:
- Plain prose only. No bullets, no emoji, no markdown.
- Never change, add, or remove any time value (HH:MM) or number.
- Keep it concise: at most three sentences.
- Reply with the rewritten text only.`

// Polisher rewrites a recommendation text more fluently.
type Polisher interface {
	// Polish returns a reworded version of text. Implementations must be
	// bounded by ctx; any failure means the caller keeps the original.
	Polish(ctx context.Context, text string) (string, error)
}

// OpenAIPolisher implements Polisher using the OpenAI chat API.
type OpenAIPolisher struct {
	client openai.Client
	model  string
}

// NewOpenAIPolisher creates a polisher. Returns nil if apiKey is empty;
// a nil *OpenAIPolisher is safe to call and reports ErrUnavailable.
func NewOpenAIPolisher(apiKey, model string) *OpenAIPolisher {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIPolisher{
		client: client,
		model:  model,
	}
}

// Polish calls the model, retrying once on transient failure. The attempt
// budget stays small because the caller always has the deterministic text.
func (p *OpenAIPolisher) Polish(ctx context.Context, text string) (string, error) {
	if p == nil {
		return "", ErrUnavailable
	}

	var content string
	err := retry.Do(
		func() error {
			resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
				Model: p.model,
				Messages: []openai.ChatCompletionMessageParamUnion{
					openai.SystemMessage(polishSystemPrompt),
					openai.UserMessage(text),
				},
			})
			if err != nil {
				return fmt.Errorf("%w: %v", ErrRequest, err)
			}
			if len(resp.Choices) == 0 {
				return ErrEmptyResponse
			}
			content = strings.TrimSpace(resp.Choices[0].Message.Content)
			if content == "" {
				return ErrEmptyResponse
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", err
	}
	return content, nil
}
