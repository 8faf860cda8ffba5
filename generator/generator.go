// Package generator is the boundary to the external text-generation
// capability. Callers hand it a rendered prompt plus the scope's model and
// length budget; upstream failures surface as generation errors with no retry
// and no fallback text.
package generator

import (
	"context"
	"time"

	"google.golang.org/genai"

	"dream-journal/apperrors"
	"dream-journal/models"
	"dream-journal/repositories"
)

// TextGenerator is the contract services depend on. The scope tag selects the
// instruction framing; model and maxTokens come from the scope table.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, model, scope string, maxTokens int32) (string, error)
}

// Scope-specific system instructions. The prompt builder stays free of
// instruction framing for pattern scopes, so it lives here.
var scopeInstructions = map[string]string{
	"single": `You are a dream interpretation assistant. The user shares a single dream record.
Respond with a thoughtful interpretation in plain prose, addressed to the dreamer.`,
	"user-pattern": `You are a dream interpretation assistant. The user shares several of their own dream records.
Identify recurring symbols, themes, and emotional patterns across the dreams and what they may suggest, addressed to the dreamer.`,
	"community-pattern": `You are a dream interpretation assistant. The text contains dream summaries from many different people.
Describe the shared themes and collective patterns across the community. Do not address any individual dreamer.`,
}

// Gemini calls Google Gemini and records every call in ai_logs when a log
// repository is attached.
type Gemini struct {
	apiKey string
	logs   *repositories.AILogRepository
}

func NewGemini(apiKey string, logs *repositories.AILogRepository) *Gemini {
	return &Gemini{apiKey: apiKey, logs: logs}
}

func (g *Gemini) Generate(ctx context.Context, prompt, model, scope string, maxTokens int32) (string, error) {
	start := time.Now()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		g.record(ctx, scope, model, prompt, "", nil, start, err)
		return "", apperrors.Generation(err)
	}

	cfg := &genai.GenerateContentConfig{
		MaxOutputTokens: maxTokens,
	}
	if instruction, ok := scopeInstructions[scope]; ok {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: instruction}}}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		g.record(ctx, scope, model, prompt, "", nil, start, err)
		return "", apperrors.Generation(err)
	}

	text := result.Text()
	g.record(ctx, scope, model, prompt, text, result.UsageMetadata, start, nil)
	return text, nil
}

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

func (g *Gemini) record(ctx context.Context, scope, model, prompt, response string, usage *genai.GenerateContentResponseUsageMetadata, start time.Time, callErr error) {
	if g.logs == nil {
		return
	}

	doc := models.AILog{
		Scope:           scope,
		Model:           model,
		DurationMs:      time.Since(start).Milliseconds(),
		Success:         callErr == nil,
		PromptExcerpt:   truncate(prompt, 200),
		ResponseExcerpt: truncate(response, 200),
		RequestedAt:     start,
		CompletedAt:     time.Now(),
	}
	if usage != nil {
		doc.PromptTokens = int64(usage.PromptTokenCount)
		doc.OutputTokens = int64(usage.CandidatesTokenCount)
		doc.TotalTokens = int64(usage.TotalTokenCount)
	}
	if callErr != nil {
		msg := callErr.Error()
		doc.ErrorMessage = &msg
	}

	// Usage logging must never fail the request.
	_, _ = g.logs.Insert(ctx, doc)
}
