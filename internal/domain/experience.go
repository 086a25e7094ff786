package domain

import (
	"context"
	"sort"
	"time"
)

// Experience is one work stint. The bullet points are public; the
// reflective fields below them are private grounding for the assistant
// and are never rendered on the public site.
type Experience struct {
	ID                 string         `json:"id"`
	CompanyName        string         `json:"company_name"`
	Title              string         `json:"title"`
	TitleProgression   *string        `json:"title_progression"`
	StartDate          string         `json:"start_date"`
	EndDate            *string        `json:"end_date"`
	IsCurrent          bool           `json:"is_current"`
	BulletPoints       []string       `json:"bullet_points"`
	WhyJoined          *string        `json:"why_joined"`
	WhyLeft            *string        `json:"why_left"`
	ActualContribution *string        `json:"actual_contributions"`
	ProudestAchievement *string       `json:"proudest_achievement"`
	WouldDoDifferently *string        `json:"would_do_differently"`
	ChallengesFaced    *string        `json:"challenges_faced"`
	LessonsLearned     *string        `json:"lessons_learned"`
	ManagerWouldSay    *string        `json:"manager_would_say"`
	ReportsWouldSay    *string        `json:"reports_would_say"`
	QuantifiedImpact   map[string]any `json:"quantified_impact"`
	DisplayOrder       int            `json:"display_order"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// PublicExperience is the subset safe to serve to the marketing page
type PublicExperience struct {
	ID               string   `json:"id"`
	CompanyName      string   `json:"company_name"`
	Title            string   `json:"title"`
	TitleProgression *string  `json:"title_progression"`
	StartDate        string   `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	IsCurrent        bool     `json:"is_current"`
	BulletPoints     []string `json:"bullet_points"`
	ProudestAchievement *string `json:"proudest_achievement"`
	DisplayOrder     int      `json:"display_order"`
}

// Public strips the private grounding fields from an experience
func (e *Experience) Public() PublicExperience {
	return PublicExperience{
		ID:               e.ID,
		CompanyName:      e.CompanyName,
		Title:            e.Title,
		TitleProgression: e.TitleProgression,
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		IsCurrent:        e.IsCurrent,
		BulletPoints:     e.BulletPoints,
		ProudestAchievement: e.ProudestAchievement,
		DisplayOrder:     e.DisplayOrder,
	}
}

// SortExperiences orders experiences for presentation and for the
// assistant context: current roles first, ties broken by display_order
// ascending. Every consumer (public site, admin view, prompt assembly)
// must go through this function so the ordering can never diverge.
func SortExperiences(experiences []Experience) {
	sort.SliceStable(experiences, func(i, j int) bool {
		if experiences[i].IsCurrent != experiences[j].IsCurrent {
			return experiences[i].IsCurrent
		}
		return experiences[i].DisplayOrder < experiences[j].DisplayOrder
	})
}

// ExperienceRequest is the admin payload for creating/updating a stint
type ExperienceRequest struct {
	CompanyName         string         `json:"company_name" binding:"required" validate:"no_emoji"`
	Title               string         `json:"title" binding:"required"`
	TitleProgression    *string        `json:"title_progression"`
	StartDate           string         `json:"start_date" binding:"required" validate:"iso_date"`
	EndDate             *string        `json:"end_date" validate:"omitempty,iso_date"`
	IsCurrent           bool           `json:"is_current"`
	BulletPoints        []string       `json:"bullet_points"`
	WhyJoined           *string        `json:"why_joined"`
	WhyLeft             *string        `json:"why_left"`
	ActualContribution  *string        `json:"actual_contributions"`
	ProudestAchievement *string        `json:"proudest_achievement"`
	WouldDoDifferently  *string        `json:"would_do_differently"`
	ChallengesFaced     *string        `json:"challenges_faced"`
	LessonsLearned      *string        `json:"lessons_learned"`
	ManagerWouldSay     *string        `json:"manager_would_say"`
	ReportsWouldSay     *string        `json:"reports_would_say"`
	QuantifiedImpact    map[string]any `json:"quantified_impact"`
	DisplayOrder        int            `json:"display_order"`
}

type ExperienceRepository interface {
	List(ctx context.Context) ([]Experience, error)
	GetByID(ctx context.Context, id string) (*Experience, error)
	Create(ctx context.Context, exp *Experience) error
	Update(ctx context.Context, exp *Experience) error
	Delete(ctx context.Context, id string) error
}

type ExperienceUsecase interface {
	ListExperiences(ctx context.Context) ([]Experience, error)
	ListPublicExperiences(ctx context.Context) ([]PublicExperience, error)
	CreateExperience(ctx context.Context, req *ExperienceRequest) (*Experience, error)
	UpdateExperience(ctx context.Context, id string, req *ExperienceRequest) (*Experience, error)
	DeleteExperience(ctx context.Context, id string) error
}
