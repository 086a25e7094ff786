package domain_test

import (
	"testing"

	"github.com/fenrirlabsnl/airesume/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestTierForRating(t *testing.T) {
	t.Run("Nil rating is a growth area", func(t *testing.T) {
		assert.Equal(t, domain.TierGrowth, domain.TierForRating(nil))
	})

	t.Run("Full rating range maps to the documented tiers", func(t *testing.T) {
		expected := map[int]domain.StrengthTier{
			1: domain.TierGrowth, 2: domain.TierGrowth, 3: domain.TierGrowth,
			4: domain.TierGrowth, 5: domain.TierModerate, 6: domain.TierModerate,
			7: domain.TierStrong, 8: domain.TierStrong, 9: domain.TierStrong,
			10: domain.TierStrong,
		}
		for rating, tier := range expected {
			assert.Equalf(t, tier, domain.TierForRating(intPtr(rating)), "rating %d", rating)
		}
	})

	t.Run("Skill.Tier and GroupSkillsByTier agree with TierForRating", func(t *testing.T) {
		skills := []domain.Skill{
			{SkillName: "Product Strategy", SelfRating: intPtr(9)},
			{SkillName: "SQL", SelfRating: intPtr(6)},
			{SkillName: "Enterprise Sales", SelfRating: intPtr(3)},
			{SkillName: "Unrated", SelfRating: nil},
		}
		grouped := domain.GroupSkillsByTier(skills)
		assert.Len(t, grouped[domain.TierStrong], 1)
		assert.Len(t, grouped[domain.TierModerate], 1)
		assert.Len(t, grouped[domain.TierGrowth], 2)
		assert.Equal(t, "Product Strategy", grouped[domain.TierStrong][0].SkillName)
	})
}

func TestSortExperiences(t *testing.T) {
	t.Run("Current role sorts first regardless of display order", func(t *testing.T) {
		exps := []domain.Experience{
			{CompanyName: "Old Co", IsCurrent: false, DisplayOrder: 1},
			{CompanyName: "Now Co", IsCurrent: true, DisplayOrder: 99},
		}
		domain.SortExperiences(exps)
		assert.Equal(t, "Now Co", exps[0].CompanyName)
		assert.Equal(t, "Old Co", exps[1].CompanyName)
	})

	t.Run("Past roles sort by display order ascending", func(t *testing.T) {
		exps := []domain.Experience{
			{CompanyName: "Third", IsCurrent: false, DisplayOrder: 3},
			{CompanyName: "Second", IsCurrent: false, DisplayOrder: 2},
			{CompanyName: "First", IsCurrent: false, DisplayOrder: 1},
		}
		domain.SortExperiences(exps)
		assert.Equal(t, []string{"First", "Second", "Third"},
			[]string{exps[0].CompanyName, exps[1].CompanyName, exps[2].CompanyName})
	})
}

func TestRecommendationForScore(t *testing.T) {
	cases := map[int]string{
		0:   domain.RecommendationNotIdeal,
		20:  domain.RecommendationNotIdeal,
		49:  domain.RecommendationNotIdeal,
		50:  domain.RecommendationConsider,
		74:  domain.RecommendationConsider,
		75:  domain.RecommendationGoodFit,
		95:  domain.RecommendationGoodFit,
		100: domain.RecommendationGoodFit,
	}
	for score, want := range cases {
		assert.Equalf(t, want, domain.RecommendationForScore(score), "score %d", score)
	}
}

func TestNeutralFitResult(t *testing.T) {
	r := domain.NeutralFitResult()
	assert.Equal(t, 50, r.MatchScore)
	assert.Equal(t, domain.RecommendationConsider, r.Recommendation)
	assert.NotEmpty(t, r.Summary)
}
