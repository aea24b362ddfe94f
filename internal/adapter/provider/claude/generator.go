// Package claude implements text generation on the Anthropic Messages API.
package claude

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/dreamr-backend/internal/config"
	"github.com/heartmarshall/dreamr-backend/internal/domain"
)

// Generator sends single-turn or multi-turn prompts to Claude.
// SDK-level retries are disabled; callers own the retry policy.
type Generator struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Generator from LLM settings.
func New(cfg config.LLMConfig, logger *slog.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithMaxRetries(0),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Generator{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// Complete sends prompt as a single user message under the given system
// prompt and returns the concatenated text of the reply.
func (g *Generator) Complete(ctx context.Context, system, prompt string) (string, error) {
	return g.Converse(ctx, system, []domain.Turn{{Role: domain.RoleUser, Content: prompt}})
}

// Converse sends a whole conversation and returns the assistant's reply.
//
// Errors wrap domain.ErrProviderFailure. Rate limits, overload, server errors
// and network failures additionally wrap domain.ErrTransient. A reply with no
// text wraps domain.ErrGenerationEmpty.
func (g *Generator) Converse(ctx context.Context, system string, turns []domain.Turn) (string, error) {
	msgs := make([]anthropic.MessageParam, 0, len(turns))
	for _, t := range turns {
		block := anthropic.NewTextBlock(t.Content)
		if t.Role == domain.RoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: g.maxTokens,
		Messages:  msgs,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := g.client.Messages.New(ctx, params)
	if err != nil {
		transient := isTransient(ctx, err)
		g.log.WarnContext(ctx, "claude request failed",
			slog.Bool("transient", transient),
			slog.String("error", err.Error()),
		)
		if transient {
			return "", fmt.Errorf("claude: %w: %w: %w", domain.ErrProviderFailure, domain.ErrTransient, err)
		}
		return "", fmt.Errorf("claude: %w: %w", domain.ErrProviderFailure, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", fmt.Errorf("claude: %w", domain.ErrGenerationEmpty)
	}

	g.log.DebugContext(ctx, "claude reply",
		slog.String("stop_reason", string(msg.StopReason)),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return text, nil
}

// isTransient reports whether a failed call is worth retrying. A cancelled or
// expired caller context is never transient.
func isTransient(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		switch code := apiErr.StatusCode; {
		case code == http.StatusRequestTimeout,
			code == http.StatusConflict,
			code == http.StatusTooManyRequests,
			code >= http.StatusInternalServerError:
			return true
		default:
			return false
		}
	}

	// Per-request timeout from the SDK option, with the caller still waiting.
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}
