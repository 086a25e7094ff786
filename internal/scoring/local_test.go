package scoring_test

import (
	"context"
	"testing"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalScorerNoMatches(t *testing.T) {
	scorer := scoring.NewLocalScorer()

	for _, jd := range []string{
		"We need a marine biologist for our aquarium.",
		"Looking for a pastry chef with croissant experience.",
		"",
	} {
		result, err := scorer.Score(context.Background(), jd, "")
		require.NoError(t, err)
		assert.Equal(t, 50, result.MatchScore, "zero vocabulary matches must score exactly 50")
		assert.Equal(t, domain.RecommendationConsider, result.Recommendation)
		assert.Equal(t, []string{"General product management background"}, result.Strengths)
		// 50 < 70 with no mapped gap keyword matched: one generic gap sentence
		assert.Len(t, result.Gaps, 1)
	}
}

func TestLocalScorerClampBounds(t *testing.T) {
	scorer := scoring.NewLocalScorer()

	t.Run("All-gap description clamps to the floor", func(t *testing.T) {
		jd := "Engineering manager for B2B enterprise, long sales cycle, procurement heavy, coding required"
		result, err := scorer.Score(context.Background(), jd, "")
		require.NoError(t, err)
		assert.Equal(t, 20, result.MatchScore)
		assert.Equal(t, domain.RecommendationNotIdeal, result.Recommendation)
	})

	t.Run("All-strong description clamps to the ceiling", func(t *testing.T) {
		jd := "Product manager owning roadmap, strategy, user research, stakeholder work, metrics, OKR, KPI, consumer B2C, prioritization, cross-functional"
		result, err := scorer.Score(context.Background(), jd, "")
		require.NoError(t, err)
		assert.Equal(t, 95, result.MatchScore)
		assert.Equal(t, domain.RecommendationGoodFit, result.Recommendation)
	})

	t.Run("Any matching description stays within [20,95]", func(t *testing.T) {
		descriptions := []string{
			"sql analyst", "b2b product manager", "agile scrum coach",
			"machine learning engineer with roadmap ownership",
			"consumer app PM who knows amplitude and a/b test design",
		}
		for _, jd := range descriptions {
			result, err := scorer.Score(context.Background(), jd, "")
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.MatchScore, 20, jd)
			assert.LessOrEqual(t, result.MatchScore, 95, jd)
		}
	})
}

func TestLocalScorerDeterministic(t *testing.T) {
	scorer := scoring.NewLocalScorer()
	jd := "Senior product manager, roadmap and strategy, some SQL, B2B exposure a plus"

	first, err := scorer.Score(context.Background(), jd, "")
	require.NoError(t, err)
	second, err := scorer.Score(context.Background(), jd, "")
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must yield identical output")
}

func TestLocalScorerEnterpriseSalesDescription(t *testing.T) {
	scorer := scoring.NewLocalScorer()
	jd := "Looking for a B2B enterprise sales engineer with deep ML engineering experience"

	result, err := scorer.Score(context.Background(), jd, "")
	require.NoError(t, err)

	assert.Equal(t, 20, result.MatchScore)
	assert.Equal(t, domain.RecommendationNotIdeal, result.Recommendation)
	assert.Contains(t, result.Gaps, "Limited enterprise/B2B experience - background is consumer and SMB products")
	assert.Contains(t, result.Summary, "might not be the best fit")
}

func TestLocalScorerSeniorPMDescription(t *testing.T) {
	scorer := scoring.NewLocalScorer()
	jd := "Senior product manager, own roadmap and strategy, strong stakeholder management, consumer B2C product"

	result, err := scorer.Score(context.Background(), jd, "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.MatchScore, 75)
	assert.Equal(t, domain.RecommendationGoodFit, result.Recommendation)
	assert.Contains(t, result.Strengths, "7 years of product management experience (9/10 self-rating)")
	assert.Contains(t, result.Strengths, "Deep consumer/B2C product experience (3M+ MAU)")
	assert.Empty(t, result.Gaps)
}

func TestLocalScorerDirectorGap(t *testing.T) {
	scorer := scoring.NewLocalScorer()
	jd := "Director of Product to manage a team of PMs"

	result, err := scorer.Score(context.Background(), jd, "")
	require.NoError(t, err)
	assert.Contains(t, result.Gaps, "Haven't managed other PMs directly - cross-functional leadership only")
}

func TestLocalScorerCaseInsensitive(t *testing.T) {
	scorer := scoring.NewLocalScorer()

	lower, err := scorer.Score(context.Background(), "product manager with roadmap duties", "")
	require.NoError(t, err)
	upper, err := scorer.Score(context.Background(), "PRODUCT MANAGER WITH ROADMAP DUTIES", "")
	require.NoError(t, err)

	assert.Equal(t, lower.MatchScore, upper.MatchScore)
	assert.Equal(t, lower.Strengths, upper.Strengths)
}
