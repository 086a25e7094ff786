package usecase_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Get(ctx context.Context) (*domain.CandidateProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockExperienceRepo struct {
	mock.Mock
}

func (m *MockExperienceRepo) List(ctx context.Context) ([]domain.Experience, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experience), args.Error(1)
}

func (m *MockExperienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	return m.Called(ctx, exp).Error(0)
}

func (m *MockExperienceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}

func (m *MockSkillRepo) Create(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}

func (m *MockSkillRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockGapRepo struct {
	mock.Mock
}

func (m *MockGapRepo) List(ctx context.Context) ([]domain.GapWeakness, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GapWeakness), args.Error(1)
}

func (m *MockGapRepo) Create(ctx context.Context, gap *domain.GapWeakness) error {
	return m.Called(ctx, gap).Error(0)
}

func (m *MockGapRepo) Update(ctx context.Context, gap *domain.GapWeakness) error {
	return m.Called(ctx, gap).Error(0)
}

func (m *MockGapRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockFaqRepo struct {
	mock.Mock
}

func (m *MockFaqRepo) List(ctx context.Context) ([]domain.FaqResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FaqResponse), args.Error(1)
}

func (m *MockFaqRepo) Create(ctx context.Context, faq *domain.FaqResponse) error {
	return m.Called(ctx, faq).Error(0)
}

func (m *MockFaqRepo) Update(ctx context.Context, faq *domain.FaqResponse) error {
	return m.Called(ctx, faq).Error(0)
}

func (m *MockFaqRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockInstructionRepo struct {
	mock.Mock
}

func (m *MockInstructionRepo) List(ctx context.Context) ([]domain.AiInstruction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AiInstruction), args.Error(1)
}

func (m *MockInstructionRepo) Create(ctx context.Context, instruction *domain.AiInstruction) error {
	return m.Called(ctx, instruction).Error(0)
}

func (m *MockInstructionRepo) Update(ctx context.Context, instruction *domain.AiInstruction) error {
	return m.Called(ctx, instruction).Error(0)
}

func (m *MockInstructionRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockChatRepo struct {
	mock.Mock
}

func (m *MockChatRepo) Append(ctx context.Context, messages []domain.ChatMessage) error {
	return m.Called(ctx, messages).Error(0)
}

func (m *MockChatRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

type MockResponder struct {
	mock.Mock
}

func (m *MockResponder) Respond(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error) {
	args := m.Called(ctx, systemPrompt, turns)
	return args.String(0), args.Error(1)
}

type MockScorer struct {
	mock.Mock
}

func (m *MockScorer) Score(ctx context.Context, jobDescription, candidateContext string) (*domain.FitResult, error) {
	args := m.Called(ctx, jobDescription, candidateContext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FitResult), args.Error(1)
}
