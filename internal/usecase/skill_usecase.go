package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/apperror"
)

type skillUsecase struct {
	repo     domain.SkillRepository
	validate *validator.Validate
}

func NewSkillUsecase(repo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *skillUsecase) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return u.repo.List(ctx)
}

func (u *skillUsecase) ListSkillsByTier(ctx context.Context) (map[domain.StrengthTier][]domain.Skill, error) {
	skills, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupSkillsByTier(skills), nil
}

func (u *skillUsecase) CreateSkill(ctx context.Context, req *domain.SkillRequest) (*domain.Skill, error) {
	skill, err := u.skillFromRequest(req)
	if err != nil {
		return nil, err
	}
	skill.ID = uuid.NewString()
	if err := u.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) UpdateSkill(ctx context.Context, id string, req *domain.SkillRequest) (*domain.Skill, error) {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Skill not found")
	}

	skill, err := u.skillFromRequest(req)
	if err != nil {
		return nil, err
	}
	skill.ID = existing.ID
	skill.CreatedAt = existing.CreatedAt
	if err := u.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) DeleteSkill(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NotFound("Skill not found")
		}
		return err
	}
	return nil
}

func (u *skillUsecase) skillFromRequest(req *domain.SkillRequest) (*domain.Skill, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	var lastUsed *time.Time
	if req.LastUsed != nil && *req.LastUsed != "" {
		parsed, err := time.Parse("2006-01-02", *req.LastUsed)
		if err != nil {
			return nil, apperror.BadRequest("last_used must be YYYY-MM-DD")
		}
		lastUsed = &parsed
	}

	return &domain.Skill{
		SkillName:       req.SkillName,
		Category:        req.Category,
		SelfRating:      req.SelfRating,
		Evidence:        req.Evidence,
		HonestNotes:     req.HonestNotes,
		YearsExperience: req.YearsExperience,
		LastUsed:        lastUsed,
	}, nil
}
