package domain

import (
	"context"
	"time"
)

// Availability status values for the candidate profile
const (
	AvailabilityActivelyLooking = "actively_looking"
	AvailabilityOpen            = "open"
	AvailabilityNotLooking      = "not_looking"
)

// CandidateProfile is the single candidate identity and narrative.
// Exactly one row exists per deployment; there is no multi-candidate support.
type CandidateProfile struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Title               string     `json:"title"`
	TargetTitles        []string   `json:"target_titles"`
	TargetCompanyStages []string   `json:"target_company_stages"`
	ElevatorPitch       string     `json:"elevator_pitch"`
	CareerNarrative     string     `json:"career_narrative"`
	LookingFor          string     `json:"looking_for"`
	NotLookingFor       string     `json:"not_looking_for"`
	SalaryMin           *int       `json:"salary_min"`
	SalaryMax           *int       `json:"salary_max"`
	AvailabilityStatus  string     `json:"availability_status"`
	AvailabilityDate    *time.Time `json:"availability_date"`
	Location            string     `json:"location"`
	RemotePreference    string     `json:"remote_preference"`
	GithubURL           *string    `json:"github_url"`
	LinkedinURL         *string    `json:"linkedin_url"`
	TwitterURL          *string    `json:"twitter_url"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// UpdateProfileRequest is the admin payload for upserting the profile
type UpdateProfileRequest struct {
	Name                string   `json:"name" binding:"required" validate:"valid_name,no_emoji"`
	Email               string   `json:"email" binding:"required,email"`
	Title               string   `json:"title" binding:"required"`
	TargetTitles        []string `json:"target_titles"`
	TargetCompanyStages []string `json:"target_company_stages"`
	ElevatorPitch       string   `json:"elevator_pitch"`
	CareerNarrative     string   `json:"career_narrative"`
	LookingFor          string   `json:"looking_for"`
	NotLookingFor       string   `json:"not_looking_for"`
	SalaryMin           *int     `json:"salary_min"`
	SalaryMax           *int     `json:"salary_max"`
	AvailabilityStatus  string   `json:"availability_status" binding:"required,oneof=actively_looking open not_looking"`
	AvailabilityDate    *string  `json:"availability_date" validate:"omitempty,iso_date"`
	Location            string   `json:"location"`
	RemotePreference    string   `json:"remote_preference" binding:"required,oneof=remote hybrid onsite flexible"`
	GithubURL           *string  `json:"github_url"`
	LinkedinURL         *string  `json:"linkedin_url"`
	TwitterURL          *string  `json:"twitter_url"`
}

// ProfileRepository is the read/write port for the candidate profile.
// Get returns (nil, nil) when no profile has been configured yet.
type ProfileRepository interface {
	Get(ctx context.Context) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

// ProfileUsecase exposes profile reads to the public site and
// the upsert to the admin console.
type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*CandidateProfile, error)
}
