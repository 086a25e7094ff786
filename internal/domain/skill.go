package domain

import (
	"context"
	"time"
)

// StrengthTier is the derived grouping of a skill by self-rating.
// It is deliberately separate from the Category field, which holds
// the skill's domain label ("Technical", "Leadership", ...).
type StrengthTier string

const (
	TierStrong   StrengthTier = "strong"
	TierModerate StrengthTier = "moderate"
	TierGrowth   StrengthTier = "growth"
)

// Skill is one self-assessed capability with honest commentary
type Skill struct {
	ID              string     `json:"id"`
	SkillName       string     `json:"skill_name"`
	Category        string     `json:"category"`
	SelfRating      *int       `json:"self_rating"`
	Evidence        *string    `json:"evidence"`
	HonestNotes     *string    `json:"honest_notes"`
	YearsExperience *int       `json:"years_experience"`
	LastUsed        *time.Time `json:"last_used"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Tier returns the derived strength tier for this skill
func (s *Skill) Tier() StrengthTier {
	return TierForRating(s.SelfRating)
}

// TierForRating maps a 1-10 self-rating to its strength tier:
// 7 and above is strong, 5-6 is moderate, anything below (or no
// rating at all) is a growth area. The public display, the admin
// grouping view and the scoring context all call this one function.
func TierForRating(rating *int) StrengthTier {
	if rating == nil {
		return TierGrowth
	}
	switch {
	case *rating >= 7:
		return TierStrong
	case *rating >= 5:
		return TierModerate
	default:
		return TierGrowth
	}
}

// GroupSkillsByTier buckets skills into the three derived tiers,
// preserving the input order within each bucket.
func GroupSkillsByTier(skills []Skill) map[StrengthTier][]Skill {
	grouped := map[StrengthTier][]Skill{
		TierStrong:   {},
		TierModerate: {},
		TierGrowth:   {},
	}
	for _, s := range skills {
		tier := s.Tier()
		grouped[tier] = append(grouped[tier], s)
	}
	return grouped
}

// SkillRequest is the admin payload for creating/updating a skill
type SkillRequest struct {
	SkillName       string  `json:"skill_name" binding:"required" validate:"no_emoji"`
	Category        string  `json:"category" binding:"required"`
	SelfRating      *int    `json:"self_rating" binding:"omitempty,min=1,max=10"`
	Evidence        *string `json:"evidence"`
	HonestNotes     *string `json:"honest_notes"`
	YearsExperience *int    `json:"years_experience" binding:"omitempty,min=0,max=60"`
	LastUsed        *string `json:"last_used" validate:"omitempty,iso_date"`
}

type SkillRepository interface {
	List(ctx context.Context) ([]Skill, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
	Delete(ctx context.Context, id string) error
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]Skill, error)
	ListSkillsByTier(ctx context.Context) (map[StrengthTier][]Skill, error)
	CreateSkill(ctx context.Context, req *SkillRequest) (*Skill, error)
	UpdateSkill(ctx context.Context, id string, req *SkillRequest) (*Skill, error)
	DeleteSkill(ctx context.Context, id string) error
}
