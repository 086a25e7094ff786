package usecase

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *experienceUsecase) ListExperiences(ctx context.Context) ([]domain.Experience, error) {
	experiences, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortExperiences(experiences)
	return experiences, nil
}

func (u *experienceUsecase) ListPublicExperiences(ctx context.Context) ([]domain.PublicExperience, error) {
	experiences, err := u.ListExperiences(ctx)
	if err != nil {
		return nil, err
	}
	public := make([]domain.PublicExperience, 0, len(experiences))
	for i := range experiences {
		public = append(public, experiences[i].Public())
	}
	return public, nil
}

func (u *experienceUsecase) CreateExperience(ctx context.Context, req *domain.ExperienceRequest) (*domain.Experience, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	exp := experienceFromRequest(req)
	exp.ID = uuid.NewString()
	if err := u.repo.Create(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) UpdateExperience(ctx context.Context, id string, req *domain.ExperienceRequest) (*domain.Experience, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Experience not found")
	}

	exp := experienceFromRequest(req)
	exp.ID = existing.ID
	exp.CreatedAt = existing.CreatedAt
	if err := u.repo.Update(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

func (u *experienceUsecase) DeleteExperience(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Experience not found")
		}
		return err
	}
	return nil
}

func experienceFromRequest(req *domain.ExperienceRequest) *domain.Experience {
	endDate := req.EndDate
	if req.IsCurrent {
		// A current role has no end date; normalize rather than persist
		// whatever the payload carried.
		endDate = nil
	}
	return &domain.Experience{
		CompanyName:         req.CompanyName,
		Title:               req.Title,
		TitleProgression:    req.TitleProgression,
		StartDate:           req.StartDate,
		EndDate:             endDate,
		IsCurrent:           req.IsCurrent,
		BulletPoints:        req.BulletPoints,
		WhyJoined:           req.WhyJoined,
		WhyLeft:             req.WhyLeft,
		ActualContribution:  req.ActualContribution,
		ProudestAchievement: req.ProudestAchievement,
		WouldDoDifferently:  req.WouldDoDifferently,
		ChallengesFaced:     req.ChallengesFaced,
		LessonsLearned:      req.LessonsLearned,
		ManagerWouldSay:     req.ManagerWouldSay,
		ReportsWouldSay:     req.ReportsWouldSay,
		QuantifiedImpact:    req.QuantifiedImpact,
		DisplayOrder:        req.DisplayOrder,
	}
}
