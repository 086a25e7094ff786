package domain

import (
	"context"
	"time"
)

// GapWeakness is a named deficiency the candidate is upfront about.
// It seeds both the honesty content on the site and the known-gaps
// vocabulary of the scoring context.
type GapWeakness struct {
	ID                 string    `json:"id"`
	GapType            string    `json:"gap_type"`
	Description        string    `json:"description"`
	WhyItsAGap         *string   `json:"why_its_a_gap"`
	InterestInLearning bool      `json:"interest_in_learning"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// FaqResponse is a canonical question/answer pair used verbatim as
// grounding so repeated questions get consistent answers.
type FaqResponse struct {
	ID               string    `json:"id"`
	Question         string    `json:"question"`
	Answer           string    `json:"answer"`
	IsCommonQuestion bool      `json:"is_common_question"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AiInstruction is an operator-supplied behavioral directive. Higher
// priority instructions are listed first in the system prompt; there
// is no conflict resolution beyond that ordering.
type AiInstruction struct {
	ID              string    `json:"id"`
	InstructionType string    `json:"instruction_type"`
	Instruction     string    `json:"instruction"`
	Priority        int       `json:"priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type GapRequest struct {
	GapType            string  `json:"gap_type" binding:"required"`
	Description        string  `json:"description" binding:"required"`
	WhyItsAGap         *string `json:"why_its_a_gap"`
	InterestInLearning bool    `json:"interest_in_learning"`
}

type FaqRequest struct {
	Question         string `json:"question" binding:"required"`
	Answer           string `json:"answer" binding:"required"`
	IsCommonQuestion bool   `json:"is_common_question"`
}

type InstructionRequest struct {
	InstructionType string `json:"instruction_type" binding:"required"`
	Instruction     string `json:"instruction" binding:"required"`
	Priority        int    `json:"priority"`
}

type GapRepository interface {
	List(ctx context.Context) ([]GapWeakness, error)
	Create(ctx context.Context, gap *GapWeakness) error
	Update(ctx context.Context, gap *GapWeakness) error
	Delete(ctx context.Context, id string) error
}

type FaqRepository interface {
	List(ctx context.Context) ([]FaqResponse, error)
	Create(ctx context.Context, faq *FaqResponse) error
	Update(ctx context.Context, faq *FaqResponse) error
	Delete(ctx context.Context, id string) error
}

// InstructionRepository lists instructions ordered by priority descending
type InstructionRepository interface {
	List(ctx context.Context) ([]AiInstruction, error)
	Create(ctx context.Context, instruction *AiInstruction) error
	Update(ctx context.Context, instruction *AiInstruction) error
	Delete(ctx context.Context, id string) error
}

// KnowledgeSnapshot is everything the Context Assembler needs, read
// fresh from the store for every chat turn and every analysis. It is
// never cached across admin writes.
type KnowledgeSnapshot struct {
	Profile      *CandidateProfile
	Experiences  []Experience
	Skills       []Skill
	Gaps         []GapWeakness
	Faqs         []FaqResponse
	Instructions []AiInstruction
}

// ContentUsecase is the admin console surface for the honesty content
// (gaps, FAQs and AI instructions).
type ContentUsecase interface {
	ListGaps(ctx context.Context) ([]GapWeakness, error)
	CreateGap(ctx context.Context, req *GapRequest) (*GapWeakness, error)
	UpdateGap(ctx context.Context, id string, req *GapRequest) (*GapWeakness, error)
	DeleteGap(ctx context.Context, id string) error

	ListFaqs(ctx context.Context) ([]FaqResponse, error)
	ListCommonFaqs(ctx context.Context) ([]FaqResponse, error)
	CreateFaq(ctx context.Context, req *FaqRequest) (*FaqResponse, error)
	UpdateFaq(ctx context.Context, id string, req *FaqRequest) (*FaqResponse, error)
	DeleteFaq(ctx context.Context, id string) error

	ListInstructions(ctx context.Context) ([]AiInstruction, error)
	CreateInstruction(ctx context.Context, req *InstructionRequest) (*AiInstruction, error)
	UpdateInstruction(ctx context.Context, id string, req *InstructionRequest) (*AiInstruction, error)
	DeleteInstruction(ctx context.Context, id string) error
}
