package prompt_test

import (
	"strings"
	"testing"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func snapshotFixture() *domain.KnowledgeSnapshot {
	return &domain.KnowledgeSnapshot{
		Profile: &domain.CandidateProfile{
			Name:            "Alex Morgan",
			Title:           "Senior Product Manager",
			CareerNarrative: "Seven years of consumer product work.",
			LookingFor:      "Consumer products with real metrics",
			NotLookingFor:   "Enterprise sales-led orgs",
		},
		Experiences: []domain.Experience{
			{
				CompanyName:  "Series A Startup",
				Title:        "Product Manager",
				StartDate:    "2019-08-01",
				EndDate:      strPtr("2022-02-28"),
				IsCurrent:    false,
				DisplayOrder: 2,
				BulletPoints: []string{"First PM hire"},
				WhyLeft:      strPtr("Company pivoted to enterprise."),
			},
			{
				CompanyName:  "Fintech Co",
				Title:        "Senior Product Manager",
				StartDate:    "2022-03-01",
				IsCurrent:    true,
				DisplayOrder: 1,
				BulletPoints: []string{"Own consumer payments vertical"},
				ManagerWouldSay: strPtr("Strong strategic thinker."),
			},
		},
		Skills: []domain.Skill{
			{SkillName: "Product Strategy", Category: "Product", SelfRating: intPtr(9), HonestNotes: strPtr("Best in B2C.")},
			{SkillName: "SQL", Category: "Technical", SelfRating: intPtr(6), Evidence: strPtr("Writes own queries.")},
			{SkillName: "Enterprise Sales", Category: "Business", SelfRating: intPtr(3)},
		},
		Gaps: []domain.GapWeakness{
			{Description: "Enterprise B2B", WhyItsAGap: strPtr("Consumer background only"), InterestInLearning: true},
		},
		Faqs: []domain.FaqResponse{
			{Question: "Why are you leaving?", Answer: "I'm not, yet."},
		},
		Instructions: []domain.AiInstruction{
			{Instruction: "Never discuss references before an offer.", Priority: 10},
			{Instruction: "Keep salary talk factual.", Priority: 5},
		},
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	out := prompt.BuildSystemPrompt(snapshotFixture())

	t.Run("Core directive comes before operator instructions", func(t *testing.T) {
		directiveIdx := strings.Index(out, "## YOUR CORE DIRECTIVE")
		customIdx := strings.Index(out, "## CUSTOM INSTRUCTIONS FROM Alex Morgan")
		require.GreaterOrEqual(t, directiveIdx, 0)
		require.GreaterOrEqual(t, customIdx, 0)
		assert.Less(t, directiveIdx, customIdx)
		assert.Contains(t, out, "You must be BRUTALLY HONEST.")
		assert.Contains(t, out, "Honesty builds trust. Overselling wastes everyone's time.")
	})

	t.Run("Operator instructions keep their stored order", func(t *testing.T) {
		first := strings.Index(out, "Never discuss references before an offer.")
		second := strings.Index(out, "Keep salary talk factual.")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
	})

	t.Run("Current role is serialized before older ones", func(t *testing.T) {
		current := strings.Index(out, "### Fintech Co")
		past := strings.Index(out, "### Series A Startup")
		require.GreaterOrEqual(t, current, 0)
		require.GreaterOrEqual(t, past, 0)
		assert.Less(t, current, past)
	})

	t.Run("Private reflective fields are labeled as grounding only", func(t *testing.T) {
		assert.Contains(t, out, "private - grounding only")
		assert.Contains(t, out, "Strong strategic thinker.")
		assert.Contains(t, out, "Company pivoted to enterprise.")
	})

	t.Run("Skills are grouped by derived tier, not category", func(t *testing.T) {
		strongIdx := strings.Index(out, "### Strong")
		moderateIdx := strings.Index(out, "### Moderate")
		growthIdx := strings.Index(out, "### Growth areas")
		strategy := strings.Index(out, "Product Strategy (9/10)")
		sqlIdx := strings.Index(out, "SQL (6/10)")
		sales := strings.Index(out, "Enterprise Sales (3/10)")
		assert.True(t, strongIdx < strategy && strategy < moderateIdx)
		assert.True(t, moderateIdx < sqlIdx && sqlIdx < growthIdx)
		assert.Greater(t, sales, growthIdx)
	})

	t.Run("FAQ pairs are included verbatim", func(t *testing.T) {
		assert.Contains(t, out, "Q: Why are you leaving?\nA: I'm not, yet.")
	})
}

func TestBuildSystemPromptEmptyCollections(t *testing.T) {
	out := prompt.BuildSystemPrompt(&domain.KnowledgeSnapshot{})

	// Every section still renders so downstream prompts stay well-formed.
	for _, heading := range []string{
		"## YOUR CORE DIRECTIVE",
		"## CUSTOM INSTRUCTIONS FROM the candidate",
		"## ABOUT the candidate",
		"## WORK EXPERIENCE",
		"## SKILLS SELF-ASSESSMENT",
		"## EXPLICIT GAPS & WEAKNESSES",
		"## PRE-WRITTEN ANSWERS TO COMMON QUESTIONS",
		"## RESPONSE GUIDELINES",
	} {
		assert.Contains(t, out, heading)
	}
	assert.Contains(t, out, "(none provided)")
}

func TestBuildCandidateContext(t *testing.T) {
	out := prompt.BuildCandidateContext(snapshotFixture())

	t.Run("Includes public record and gaps", func(t *testing.T) {
		assert.Contains(t, out, "## ABOUT Alex Morgan")
		assert.Contains(t, out, "### Fintech Co")
		assert.Contains(t, out, "Enterprise B2B")
	})

	t.Run("Omits private reflective fields", func(t *testing.T) {
		assert.NotContains(t, out, "PRIVATE CONTEXT")
		assert.NotContains(t, out, "Strong strategic thinker.")
	})

	t.Run("Assembly is pure", func(t *testing.T) {
		assert.Equal(t, out, prompt.BuildCandidateContext(snapshotFixture()))
	})
}
