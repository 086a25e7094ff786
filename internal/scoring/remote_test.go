package scoring_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/scoring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a fixed completion or error
type stubClient struct {
	reply string
	err   error
}

func (s *stubClient) Complete(_ context.Context, _ string, _ []domain.ChatTurn) (string, error) {
	return s.reply, s.err
}

func TestRemoteScorerWellFormedReply(t *testing.T) {
	client := &stubClient{reply: `{
		"match_score": 82,
		"recommendation": "good_fit",
		"strengths": ["Consumer product depth"],
		"gaps": ["No enterprise background"],
		"summary": "Strong match for the consumer PM role."
	}`}
	scorer := scoring.NewRemoteScorer(client)

	result, err := scorer.Score(context.Background(), "Senior PM role", "context")
	require.NoError(t, err)

	assert.Equal(t, 82, result.MatchScore)
	assert.Equal(t, domain.RecommendationGoodFit, result.Recommendation)
	assert.Equal(t, []string{"Consumer product depth"}, result.Strengths)
	assert.Equal(t, []string{"No enterprise background"}, result.Gaps)
	assert.Equal(t, "Strong match for the consumer PM role.", result.Summary)
}

func TestRemoteScorerStripsCodeFences(t *testing.T) {
	client := &stubClient{reply: "```json\n{\"match_score\": 40, \"summary\": \"Meh.\"}\n```"}
	scorer := scoring.NewRemoteScorer(client)

	result, err := scorer.Score(context.Background(), "jd", "ctx")
	require.NoError(t, err)
	assert.Equal(t, 40, result.MatchScore)
	assert.Equal(t, "Meh.", result.Summary)
}

func TestRemoteScorerFieldDefaulting(t *testing.T) {
	t.Run("Completely malformed reply yields all defaults", func(t *testing.T) {
		scorer := scoring.NewRemoteScorer(&stubClient{reply: "I think this candidate is great!"})
		result, err := scorer.Score(context.Background(), "jd", "ctx")
		require.NoError(t, err)
		assert.Equal(t, 50, result.MatchScore)
		assert.Equal(t, domain.RecommendationConsider, result.Recommendation)
		assert.Empty(t, result.Strengths)
		assert.Empty(t, result.Gaps)
		assert.Equal(t, "Analysis complete.", result.Summary)
	})

	t.Run("Each mistyped field is defaulted independently", func(t *testing.T) {
		scorer := scoring.NewRemoteScorer(&stubClient{reply: `{
			"match_score": "eighty",
			"recommendation": "hire_immediately",
			"strengths": ["Knows the space"],
			"gaps": 7,
			"summary": null
		}`})
		result, err := scorer.Score(context.Background(), "jd", "ctx")
		require.NoError(t, err)
		assert.Equal(t, 50, result.MatchScore)
		assert.Equal(t, domain.RecommendationConsider, result.Recommendation)
		assert.Equal(t, []string{"Knows the space"}, result.Strengths)
		assert.Empty(t, result.Gaps)
		assert.Equal(t, "Analysis complete.", result.Summary)
	})

	t.Run("Out-of-range score is clamped to 0-100", func(t *testing.T) {
		scorer := scoring.NewRemoteScorer(&stubClient{reply: `{"match_score": 240}`})
		result, err := scorer.Score(context.Background(), "jd", "ctx")
		require.NoError(t, err)
		assert.Equal(t, 100, result.MatchScore)
	})
}

func TestRemoteScorerRecommendationMatchesLocalMapping(t *testing.T) {
	// The model's own recommendation field is ignored: classification
	// is recomputed from the score so both strategies always agree.
	cases := []struct {
		score int
		want  string
	}{
		{10, domain.RecommendationNotIdeal},
		{49, domain.RecommendationNotIdeal},
		{50, domain.RecommendationConsider},
		{74, domain.RecommendationConsider},
		{75, domain.RecommendationGoodFit},
		{95, domain.RecommendationGoodFit},
	}
	for _, tc := range cases {
		reply := `{"match_score": ` + strconv.Itoa(tc.score) + `, "recommendation": "not_ideal"}`
		scorer := scoring.NewRemoteScorer(&stubClient{reply: reply})
		result, err := scorer.Score(context.Background(), "jd", "ctx")
		require.NoError(t, err)
		assert.Equalf(t, tc.want, result.Recommendation, "score %d", tc.score)
		assert.Equal(t, domain.RecommendationForScore(tc.score), result.Recommendation)
	}
}

func TestRemoteScorerTransportError(t *testing.T) {
	scorer := scoring.NewRemoteScorer(&stubClient{err: errors.New("connection refused")})
	result, err := scorer.Score(context.Background(), "jd", "ctx")
	assert.Nil(t, result)
	assert.ErrorContains(t, err, "remote scoring call failed")
}
