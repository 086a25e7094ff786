package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

// CompletionClient is the minimal language-model surface the remote
// strategies need. internal/llm provides the Anthropic implementation.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error)
}

// RemoteScorer delegates scoring to the language model, instructing it
// to return the five-field JSON shape. Malformed or partially-typed
// model output is defaulted field by field instead of failing the call;
// only transport errors propagate (the analyzer then falls back to the
// local strategy).
type RemoteScorer struct {
	client CompletionClient
}

func NewRemoteScorer(client CompletionClient) *RemoteScorer {
	return &RemoteScorer{client: client}
}

func (s *RemoteScorer) Score(ctx context.Context, jobDescription, candidateContext string) (*domain.FitResult, error) {
	systemPrompt := buildAnalysisPrompt(candidateContext)
	turns := []domain.ChatTurn{
		{Role: domain.RoleUser, Content: fmt.Sprintf("Analyze this job description:\n\n%s", jobDescription)},
	}

	raw, err := s.client.Complete(ctx, systemPrompt, turns)
	if err != nil {
		return nil, fmt.Errorf("remote scoring call failed: %w", err)
	}

	return parseAnalysis(raw), nil
}

func buildAnalysisPrompt(candidateContext string) string {
	var sb strings.Builder
	sb.WriteString("You are analyzing a job description to assess fit for the candidate described below.\n\n")
	sb.WriteString("Analyze the job description and return a JSON object with these EXACT fields:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"match_score\": <number 0-100>,\n")
	sb.WriteString("  \"recommendation\": \"good_fit\" | \"consider\" | \"not_ideal\",\n")
	sb.WriteString("  \"strengths\": [\"strength 1\", \"strength 2\", ...],\n")
	sb.WriteString("  \"gaps\": [\"gap 1\", \"gap 2\", ...],\n")
	sb.WriteString("  \"summary\": \"1-2 sentence assessment\"\n")
	sb.WriteString("}\n\n")
	sb.WriteString("CANDIDATE CONTEXT:\n")
	sb.WriteString(candidateContext)
	sb.WriteString("\n\nIMPORTANT: Return ONLY valid JSON, no markdown code blocks.")
	return sb.String()
}

// parseAnalysis validates the model output and defaults each field
// independently. It never fails: a completely unparseable reply yields
// the all-defaults result.
func parseAnalysis(raw string) *domain.FitResult {
	cleaned := stripCodeFences(raw)

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		payload = nil
	}

	score := 50
	var parsedScore float64
	if unmarshalField(payload, "match_score", &parsedScore) {
		score = clampScore(int(math.Round(parsedScore)))
	}

	strengths := []string{}
	var parsedStrengths []string
	if unmarshalField(payload, "strengths", &parsedStrengths) && parsedStrengths != nil {
		strengths = parsedStrengths
	}
	gaps := []string{}
	var parsedGaps []string
	if unmarshalField(payload, "gaps", &parsedGaps) && parsedGaps != nil {
		gaps = parsedGaps
	}

	summary := "Analysis complete."
	var parsedSummary string
	if unmarshalField(payload, "summary", &parsedSummary) && parsedSummary != "" {
		summary = parsedSummary
	}

	// Recommendation is recomputed from the score, never trusted from
	// the model, so the remote and local strategies always classify a
	// given score identically.
	return &domain.FitResult{
		MatchScore:     score,
		Recommendation: domain.RecommendationForScore(score),
		Strengths:      strengths,
		Gaps:           gaps,
		Summary:        summary,
	}
}

func unmarshalField(payload map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := payload[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

func stripCodeFences(raw string) string {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
