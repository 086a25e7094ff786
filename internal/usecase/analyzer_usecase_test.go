package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/usecase"
)

func analyzerMocksWithProfile() (*MockProfileRepo, *MockExperienceRepo, *MockSkillRepo, *MockGapRepo) {
	profiles := new(MockProfileRepo)
	profiles.On("Get", mock.Anything).Return(&domain.CandidateProfile{
		ID:    "p1",
		Name:  "Jane Doe",
		Title: "Engineering Manager",
	}, nil)
	experiences := new(MockExperienceRepo)
	experiences.On("List", mock.Anything).Return([]domain.Experience{}, nil)
	skills := new(MockSkillRepo)
	skills.On("List", mock.Anything).Return([]domain.Skill{}, nil)
	gaps := new(MockGapRepo)
	gaps.On("List", mock.Anything).Return([]domain.GapWeakness{}, nil)
	return profiles, experiences, skills, gaps
}

func TestAnalyzeFitRejectsBlankJobDescription(t *testing.T) {
	profiles := new(MockProfileRepo)
	primary := new(MockScorer)
	uc := usecase.NewAnalyzerUsecase(profiles, new(MockExperienceRepo), new(MockSkillRepo), new(MockGapRepo), primary, nil)

	_, err := uc.AnalyzeFit(context.Background(), "  \n ")

	assert.ErrorIs(t, err, domain.ErrEmptyJobDescription)
	profiles.AssertNotCalled(t, "Get", mock.Anything)
	primary.AssertNotCalled(t, "Score", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeFitReturnsNeutralResultWithoutProfile(t *testing.T) {
	profiles := new(MockProfileRepo)
	profiles.On("Get", mock.Anything).Return(nil, nil)
	primary := new(MockScorer)

	uc := usecase.NewAnalyzerUsecase(profiles, new(MockExperienceRepo), new(MockSkillRepo), new(MockGapRepo), primary, nil)
	result, err := uc.AnalyzeFit(context.Background(), "Senior Engineering Manager role")

	assert.NoError(t, err)
	assert.Equal(t, domain.NeutralFitResult(), result)
	primary.AssertNotCalled(t, "Score", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnalyzeFitUsesPrimaryScorer(t *testing.T) {
	profiles, experiences, skills, gaps := analyzerMocksWithProfile()

	expected := &domain.FitResult{
		MatchScore:     82,
		Recommendation: domain.RecommendationGoodFit,
		Summary:        "Strong alignment.",
	}
	primary := new(MockScorer)
	primary.On("Score", mock.Anything, "Engineering Manager, fintech", mock.Anything).Return(expected, nil)

	uc := usecase.NewAnalyzerUsecase(profiles, experiences, skills, gaps, primary, nil)
	result, err := uc.AnalyzeFit(context.Background(), "Engineering Manager, fintech")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	primary.AssertExpectations(t)
}

func TestAnalyzeFitFallsBackWhenPrimaryFails(t *testing.T) {
	profiles, experiences, skills, gaps := analyzerMocksWithProfile()

	primary := new(MockScorer)
	primary.On("Score", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("api unreachable"))

	fallbackResult := &domain.FitResult{
		MatchScore:     55,
		Recommendation: domain.RecommendationConsider,
	}
	fallback := new(MockScorer)
	fallback.On("Score", mock.Anything, mock.Anything, mock.Anything).Return(fallbackResult, nil)

	uc := usecase.NewAnalyzerUsecase(profiles, experiences, skills, gaps, primary, fallback)
	result, err := uc.AnalyzeFit(context.Background(), "Engineering Manager role")

	assert.NoError(t, err)
	assert.Equal(t, fallbackResult, result)
	fallback.AssertExpectations(t)
}

func TestAnalyzeFitPropagatesErrorWithoutFallback(t *testing.T) {
	profiles, experiences, skills, gaps := analyzerMocksWithProfile()

	primary := new(MockScorer)
	primary.On("Score", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("api unreachable"))

	uc := usecase.NewAnalyzerUsecase(profiles, experiences, skills, gaps, primary, nil)
	_, err := uc.AnalyzeFit(context.Background(), "Engineering Manager role")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "api unreachable")
}
