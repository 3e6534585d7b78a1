// Package summary condenses report text for email bodies. The panel may
// or may not have an LLM completion endpoint configured, so the
// summarizer is an injected capability with two variants: Available wraps
// a completion client, Unavailable falls back to plain truncation. Report
// code never branches on whether a client exists.
package summary

import (
	"context"
	"log/slog"
	"strings"
)

const maxFallbackLen = 500

// Client is anything that can turn a prompt into a short completion.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

type availableSummarizer struct {
	client Client
}

// Available returns a summarizer backed by a completion client. Client
// failures degrade to the truncation fallback instead of failing the
// report delivery.
func Available(client Client) Summarizer {
	return &availableSummarizer{client: client}
}

func (s *availableSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	prompt := "Summarize this payroll report in two or three sentences for a clinic manager:\n\n" + text
	result, err := s.client.Complete(ctx, prompt)
	if err != nil {
		slog.Warn("Summary client failed, falling back to truncation", "error", err)
		return truncate(text, maxFallbackLen), nil
	}
	result = strings.TrimSpace(result)
	if result == "" {
		return truncate(text, maxFallbackLen), nil
	}
	return result, nil
}

type unavailableSummarizer struct{}

// Unavailable returns the truncation-only summarizer used when no
// completion client is configured.
func Unavailable() Summarizer {
	return unavailableSummarizer{}
}

func (unavailableSummarizer) Summarize(_ context.Context, text string) (string, error) {
	return truncate(text, maxFallbackLen), nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
