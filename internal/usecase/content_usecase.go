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

type contentUsecase struct {
	gaps         domain.GapRepository
	faqs         domain.FaqRepository
	instructions domain.InstructionRepository
	validate     *validator.Validate
}

func NewContentUsecase(
	gaps domain.GapRepository,
	faqs domain.FaqRepository,
	instructions domain.InstructionRepository,
	validate *validator.Validate,
) domain.ContentUsecase {
	return &contentUsecase{
		gaps:         gaps,
		faqs:         faqs,
		instructions: instructions,
		validate:     validate,
	}
}

func (u *contentUsecase) ListGaps(ctx context.Context) ([]domain.GapWeakness, error) {
	return u.gaps.List(ctx)
}

func (u *contentUsecase) CreateGap(ctx context.Context, req *domain.GapRequest) (*domain.GapWeakness, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	gap := &domain.GapWeakness{
		ID:                 uuid.NewString(),
		GapType:            req.GapType,
		Description:        req.Description,
		WhyItsAGap:         req.WhyItsAGap,
		InterestInLearning: req.InterestInLearning,
	}
	if err := u.gaps.Create(ctx, gap); err != nil {
		return nil, err
	}
	return gap, nil
}

func (u *contentUsecase) UpdateGap(ctx context.Context, id string, req *domain.GapRequest) (*domain.GapWeakness, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	gap := &domain.GapWeakness{
		ID:                 id,
		GapType:            req.GapType,
		Description:        req.Description,
		WhyItsAGap:         req.WhyItsAGap,
		InterestInLearning: req.InterestInLearning,
	}
	if err := u.gaps.Update(ctx, gap); err != nil {
		return nil, notFoundOr(err, "Gap not found")
	}
	return gap, nil
}

func (u *contentUsecase) DeleteGap(ctx context.Context, id string) error {
	if err := u.gaps.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Gap not found")
	}
	return nil
}

func (u *contentUsecase) ListFaqs(ctx context.Context) ([]domain.FaqResponse, error) {
	return u.faqs.List(ctx)
}

func (u *contentUsecase) ListCommonFaqs(ctx context.Context) ([]domain.FaqResponse, error) {
	faqs, err := u.faqs.List(ctx)
	if err != nil {
		return nil, err
	}
	common := make([]domain.FaqResponse, 0, len(faqs))
	for _, f := range faqs {
		if f.IsCommonQuestion {
			common = append(common, f)
		}
	}
	return common, nil
}

func (u *contentUsecase) CreateFaq(ctx context.Context, req *domain.FaqRequest) (*domain.FaqResponse, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	faq := &domain.FaqResponse{
		ID:               uuid.NewString(),
		Question:         req.Question,
		Answer:           req.Answer,
		IsCommonQuestion: req.IsCommonQuestion,
	}
	if err := u.faqs.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (u *contentUsecase) UpdateFaq(ctx context.Context, id string, req *domain.FaqRequest) (*domain.FaqResponse, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	faq := &domain.FaqResponse{
		ID:               id,
		Question:         req.Question,
		Answer:           req.Answer,
		IsCommonQuestion: req.IsCommonQuestion,
	}
	if err := u.faqs.Update(ctx, faq); err != nil {
		return nil, notFoundOr(err, "FAQ not found")
	}
	return faq, nil
}

func (u *contentUsecase) DeleteFaq(ctx context.Context, id string) error {
	if err := u.faqs.Delete(ctx, id); err != nil {
		return notFoundOr(err, "FAQ not found")
	}
	return nil
}

func (u *contentUsecase) ListInstructions(ctx context.Context) ([]domain.AiInstruction, error) {
	return u.instructions.List(ctx)
}

func (u *contentUsecase) CreateInstruction(ctx context.Context, req *domain.InstructionRequest) (*domain.AiInstruction, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	instruction := &domain.AiInstruction{
		ID:              uuid.NewString(),
		InstructionType: req.InstructionType,
		Instruction:     req.Instruction,
		Priority:        req.Priority,
	}
	if err := u.instructions.Create(ctx, instruction); err != nil {
		return nil, err
	}
	return instruction, nil
}

func (u *contentUsecase) UpdateInstruction(ctx context.Context, id string, req *domain.InstructionRequest) (*domain.AiInstruction, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	instruction := &domain.AiInstruction{
		ID:              id,
		InstructionType: req.InstructionType,
		Instruction:     req.Instruction,
		Priority:        req.Priority,
	}
	if err := u.instructions.Update(ctx, instruction); err != nil {
		return nil, notFoundOr(err, "Instruction not found")
	}
	return instruction, nil
}

func (u *contentUsecase) DeleteInstruction(ctx context.Context, id string) error {
	if err := u.instructions.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Instruction not found")
	}
	return nil
}

func notFoundOr(err error, message string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(message)
	}
	return err
}
