package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/usecase"
	"github.com/fenrirlabsnl/airesume/pkg/validation"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateProfileValidation(t *testing.T) {
	repo := new(MockProfileRepo)
	uc := usecase.NewProfileUsecase(repo, validation.New())

	t.Run("Should reject emoji in name", func(t *testing.T) {
		req := &domain.UpdateProfileRequest{
			Name:               "Jane 🚀 Doe",
			Email:              "jane@example.com",
			Title:              "Engineering Manager",
			AvailabilityStatus: domain.AvailabilityOpen,
			RemotePreference:   "remote",
		}
		_, err := uc.UpdateProfile(context.Background(), req)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("Should reject malformed availability date", func(t *testing.T) {
		req := &domain.UpdateProfileRequest{
			Name:               "Jane Doe",
			Email:              "jane@example.com",
			Title:              "Engineering Manager",
			AvailabilityStatus: domain.AvailabilityOpen,
			RemotePreference:   "remote",
			AvailabilityDate:   strPtr("March 1st"),
		}
		_, err := uc.UpdateProfile(context.Background(), req)
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})
}

func TestUpdateProfileReusesExistingRow(t *testing.T) {
	repo := new(MockProfileRepo)
	repo.On("Get", mock.Anything).Return(&domain.CandidateProfile{ID: "existing-id"}, nil)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
		return p.ID == "existing-id"
	})).Return(nil)

	uc := usecase.NewProfileUsecase(repo, validation.New())
	profile, err := uc.UpdateProfile(context.Background(), &domain.UpdateProfileRequest{
		Name:               "Jane Doe",
		Email:              "jane@example.com",
		Title:              "Engineering Manager",
		AvailabilityStatus: domain.AvailabilityActivelyLooking,
		RemotePreference:   "remote",
		AvailabilityDate:   strPtr("2026-10-01"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "existing-id", profile.ID)
	repo.AssertExpectations(t)
}

func TestListSkillsByTier(t *testing.T) {
	repo := new(MockSkillRepo)
	repo.On("List", mock.Anything).Return([]domain.Skill{
		{SkillName: "Team Leadership", SelfRating: intPtr(9)},
		{SkillName: "System Design", SelfRating: intPtr(6)},
		{SkillName: "Rust", SelfRating: intPtr(2)},
		{SkillName: "Public Speaking"},
	}, nil)

	uc := usecase.NewSkillUsecase(repo, validation.New())
	grouped, err := uc.ListSkillsByTier(context.Background())

	assert.NoError(t, err)
	assert.Len(t, grouped[domain.TierStrong], 1)
	assert.Len(t, grouped[domain.TierModerate], 1)
	assert.Len(t, grouped[domain.TierGrowth], 2)
}

func TestListCommonFaqsFilters(t *testing.T) {
	faqs := new(MockFaqRepo)
	faqs.On("List", mock.Anything).Return([]domain.FaqResponse{
		{Question: "Why are you leaving?", IsCommonQuestion: true},
		{Question: "Obscure detail", IsCommonQuestion: false},
	}, nil)

	uc := usecase.NewContentUsecase(new(MockGapRepo), faqs, new(MockInstructionRepo), validation.New())
	common, err := uc.ListCommonFaqs(context.Background())

	assert.NoError(t, err)
	assert.Len(t, common, 1)
	assert.Equal(t, "Why are you leaving?", common[0].Question)
}

func TestCreateExperienceAssignsID(t *testing.T) {
	repo := new(MockExperienceRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Experience) bool {
		return e.ID != "" && e.CompanyName == "Acme Corp"
	})).Return(nil)

	uc := usecase.NewExperienceUsecase(repo, validation.New())
	exp, err := uc.CreateExperience(context.Background(), &domain.ExperienceRequest{
		CompanyName: "Acme Corp",
		Title:       "Staff Engineer",
		StartDate:   "2021-04-01",
		IsCurrent:   true,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, exp.ID)
	repo.AssertExpectations(t)
}

func TestCreateExperienceCurrentRoleClearsEndDate(t *testing.T) {
	repo := new(MockExperienceRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.Experience) bool {
		return e.IsCurrent && e.EndDate == nil
	})).Return(nil)

	uc := usecase.NewExperienceUsecase(repo, validation.New())
	exp, err := uc.CreateExperience(context.Background(), &domain.ExperienceRequest{
		CompanyName: "Acme Corp",
		Title:       "Staff Engineer",
		StartDate:   "2021-04-01",
		EndDate:     strPtr("2024-12-31"),
		IsCurrent:   true,
	})

	assert.NoError(t, err)
	assert.Nil(t, exp.EndDate)
	repo.AssertExpectations(t)
}

func TestUpdateExperienceCurrentRoleClearsEndDate(t *testing.T) {
	repo := new(MockExperienceRepo)
	repo.On("GetByID", mock.Anything, "exp-1").Return(&domain.Experience{ID: "exp-1", CompanyName: "Acme Corp"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(e *domain.Experience) bool {
		return e.ID == "exp-1" && e.IsCurrent && e.EndDate == nil
	})).Return(nil)

	uc := usecase.NewExperienceUsecase(repo, validation.New())
	exp, err := uc.UpdateExperience(context.Background(), "exp-1", &domain.ExperienceRequest{
		CompanyName: "Acme Corp",
		Title:       "Principal Engineer",
		StartDate:   "2021-04-01",
		EndDate:     strPtr("2024-12-31"),
		IsCurrent:   true,
	})

	assert.NoError(t, err)
	assert.Nil(t, exp.EndDate)
	repo.AssertExpectations(t)
}
