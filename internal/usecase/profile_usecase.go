package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context) (*domain.CandidateProfile, error) {
	profile, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not configured")
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, req *domain.UpdateProfileRequest) (*domain.CandidateProfile, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	var availabilityDate *time.Time
	if req.AvailabilityDate != nil && *req.AvailabilityDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.AvailabilityDate)
		if err != nil {
			return nil, apperror.BadRequest("availability_date must be YYYY-MM-DD")
		}
		availabilityDate = &parsed
	}

	// Single-profile deployment: reuse the existing row's id so the
	// upsert always targets the same record.
	existing, err := u.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	id := uuid.NewString()
	if existing != nil {
		id = existing.ID
	}

	profile := &domain.CandidateProfile{
		ID:                  id,
		Name:                req.Name,
		Email:               req.Email,
		Title:               req.Title,
		TargetTitles:        req.TargetTitles,
		TargetCompanyStages: req.TargetCompanyStages,
		ElevatorPitch:       req.ElevatorPitch,
		CareerNarrative:     req.CareerNarrative,
		LookingFor:          req.LookingFor,
		NotLookingFor:       req.NotLookingFor,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		AvailabilityStatus:  req.AvailabilityStatus,
		AvailabilityDate:    availabilityDate,
		Location:            req.Location,
		RemotePreference:    req.RemotePreference,
		GithubURL:           req.GithubURL,
		LinkedinURL:         req.LinkedinURL,
		TwitterURL:          req.TwitterURL,
	}

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
