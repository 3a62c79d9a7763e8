// Package describe generates item descriptions with Gemini. Without an
// API key it runs in offline mode and returns a deterministic template
// instead. Service failures never reach callers: every error path
// degrades to a fixed fallback string asking for manual entry.
package describe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"
)

// Fallback is returned whenever the external service fails. It is a
// value, not an error; callers never see generation failures.
const Fallback = "Error generating description. Please write one manually."

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator produces descriptions for lost and found reports.
type Generator struct {
	model string

	// generate performs the external call. Nil means offline mode.
	generate func(ctx context.Context, prompt string) (string, error)
}

// New creates a generator. An empty apiKey selects offline mode. A
// client that cannot be constructed behaves like a failing service: the
// generator stays usable and returns Fallback on every call.
func New(ctx context.Context, apiKey, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	g := &Generator{model: model}

	if apiKey == "" {
		slog.Warn("no Gemini API key configured, descriptions will be mocked")
		return g
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		slog.Error("failed to create Gemini client", "error", err)
		g.generate = func(context.Context, string) (string, error) {
			return "", fmt.Errorf("gemini client unavailable: %w", err)
		}
		return g
	}

	g.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			return "", fmt.Errorf("generating content: %w", err)
		}
		return resp.Text(), nil
	}
	return g
}

// Generate returns descriptive text for the given item details. In
// offline mode the result is deterministic. Never returns an error: any
// service failure or empty response yields Fallback.
func (g *Generator) Generate(ctx context.Context, name, category, location string) string {
	if g.generate == nil {
		return mockDescription(name, category, location)
	}

	text, err := g.generate(ctx, buildPrompt(name, category, location))
	if err != nil {
		slog.Warn("description generation failed", "item", name, "error", err)
		return Fallback
	}
	if strings.TrimSpace(text) == "" {
		slog.Warn("description generation returned no text", "item", name)
		return Fallback
	}
	return text
}

// mockDescription is the offline-mode output.
func mockDescription(name, category, location string) string {
	return fmt.Sprintf(
		"This is a mock description for a %s in the %s category, found at %s. It appears to be in good condition.",
		name, category, location,
	)
}

// buildPrompt asks for objective, identification-oriented phrasing
// without fabricated details.
func buildPrompt(name, category, location string) string {
	return fmt.Sprintf(`Generate a concise, professional, and helpful description for a lost and found item.

Item Name: %s
Category: %s
Location: %s

The description should be objective and helpful for identification, mentioning key potential features but without making up details. Start directly with the description. For example: "A [color] [item name] was found near [location]..." or "Missing [item name], last seen at [location]...".`,
		name, category, location,
	)
}
