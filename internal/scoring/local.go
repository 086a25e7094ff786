// Package scoring implements the fit scoring engine: a remote strategy
// that delegates to the language model and a deterministic local
// fallback used when the model is unreachable or unconfigured. Both
// classify scores through domain.RecommendationForScore so a given
// score always yields the same recommendation.
package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

// Keyword match weights and the clamp bounds of the local heuristic
const (
	strongWeight   = 1.0
	moderateWeight = 0.6
	gapWeight      = 0.8
	baseScore      = 50
	minScore       = 20
	maxScore       = 95
)

// LocalScorer is the deterministic keyword/weight heuristic. It is
// side-effect free: identical input text always yields identical
// output, and Score never returns an error.
type LocalScorer struct{}

func NewLocalScorer() *LocalScorer {
	return &LocalScorer{}
}

// Score analyzes the job description against the fixed vocabularies.
// The candidate context parameter is accepted for interface parity
// with the remote strategy but plays no part in the heuristic.
func (s *LocalScorer) Score(_ context.Context, jobDescription, _ string) (*domain.FitResult, error) {
	lower := strings.ToLower(jobDescription)

	strongMatches := matchKeywords(lower, strongKeywords)
	moderateMatches := matchKeywords(lower, moderateKeywords)
	gapMatches := matchKeywords(lower, gapKeywords)

	total := len(strongMatches) + len(moderateMatches) + len(gapMatches)
	score := baseScore
	if total > 0 {
		positive := float64(len(strongMatches))*strongWeight + float64(len(moderateMatches))*moderateWeight
		negative := float64(len(gapMatches)) * gapWeight
		raw := (positive - negative) / float64(total)
		score = int(math.Round((raw + 1) * 50))
		if score < minScore {
			score = minScore
		}
		if score > maxScore {
			score = maxScore
		}
	}

	recommendation := domain.RecommendationForScore(score)

	strengths := applyRules(strengthRules, strongMatches, moderateMatches)
	if len(strengths) == 0 {
		strengths = append(strengths, genericStrength)
	}

	gaps := applyRules(gapRules, gapMatches, nil)
	if strings.Contains(lower, "director") && strings.Contains(lower, "product") {
		gaps = append(gaps, directorGap)
	}
	if len(gaps) == 0 && score < 70 {
		gaps = append(gaps, genericGap)
	}

	return &domain.FitResult{
		MatchScore:     score,
		Recommendation: recommendation,
		Strengths:      strengths,
		Gaps:           gaps,
		Summary:        summaryByRecommendation[recommendation],
	}, nil
}

func matchKeywords(lower string, keywords []string) map[string]bool {
	matched := make(map[string]bool)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matched[kw] = true
		}
	}
	return matched
}

func applyRules(rules []messageRule, primary, secondary map[string]bool) []string {
	var messages []string
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if primary[kw] || secondary[kw] {
				messages = append(messages, rule.message)
				break
			}
		}
	}
	return messages
}
