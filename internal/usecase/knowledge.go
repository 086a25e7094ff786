package usecase

import (
	"context"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

// knowledgeReader loads a fresh snapshot of everything the assistant
// and the analyzer know about the candidate. Reads happen per request
// so admin edits are visible on the very next turn.
type knowledgeReader struct {
	profiles     domain.ProfileRepository
	experiences  domain.ExperienceRepository
	skills       domain.SkillRepository
	gaps         domain.GapRepository
	faqs         domain.FaqRepository
	instructions domain.InstructionRepository
}

func (k *knowledgeReader) Snapshot(ctx context.Context) (*domain.KnowledgeSnapshot, error) {
	profile, err := k.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	experiences, err := k.experiences.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortExperiences(experiences)

	skills, err := k.skills.List(ctx)
	if err != nil {
		return nil, err
	}

	gaps, err := k.gaps.List(ctx)
	if err != nil {
		return nil, err
	}

	faqs, err := k.faqs.List(ctx)
	if err != nil {
		return nil, err
	}

	instructions, err := k.instructions.List(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.KnowledgeSnapshot{
		Profile:      profile,
		Experiences:  experiences,
		Skills:       skills,
		Gaps:         gaps,
		Faqs:         faqs,
		Instructions: instructions,
	}, nil
}
