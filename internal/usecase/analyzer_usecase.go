package usecase

import (
	"context"
	"strings"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/prompt"
	"github.com/fenrirlabsnl/airesume/pkg/logger"
)

type analyzerUsecase struct {
	profiles    domain.ProfileRepository
	experiences domain.ExperienceRepository
	skills      domain.SkillRepository
	gaps        domain.GapRepository
	primary     domain.FitScorer
	fallback    domain.FitScorer
}

// NewAnalyzerUsecase wires the fit analyzer. The fallback scorer runs
// when the primary one errors; pass nil when the primary is already
// the local heuristic.
func NewAnalyzerUsecase(
	profiles domain.ProfileRepository,
	experiences domain.ExperienceRepository,
	skills domain.SkillRepository,
	gaps domain.GapRepository,
	primary domain.FitScorer,
	fallback domain.FitScorer,
) domain.AnalyzerUsecase {
	return &analyzerUsecase{
		profiles:    profiles,
		experiences: experiences,
		skills:      skills,
		gaps:        gaps,
		primary:     primary,
		fallback:    fallback,
	}
}

func (u *analyzerUsecase) AnalyzeFit(ctx context.Context, jobDescription string) (*domain.FitResult, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return nil, domain.ErrEmptyJobDescription
	}

	profile, err := u.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		// Nothing to score against. A fixed neutral verdict beats an
		// error page on an empty deployment.
		return domain.NeutralFitResult(), nil
	}

	experiences, err := u.experiences.List(ctx)
	if err != nil {
		return nil, err
	}
	domain.SortExperiences(experiences)

	skills, err := u.skills.List(ctx)
	if err != nil {
		return nil, err
	}

	gaps, err := u.gaps.List(ctx)
	if err != nil {
		return nil, err
	}

	candidateContext := prompt.BuildCandidateContext(&domain.KnowledgeSnapshot{
		Profile:     profile,
		Experiences: experiences,
		Skills:      skills,
		Gaps:        gaps,
	})

	result, err := u.primary.Score(ctx, jobDescription, candidateContext)
	if err != nil {
		if u.fallback == nil {
			return nil, err
		}
		logger.Log.Warn("primary fit scorer failed, falling back to local heuristic", "error", err)
		return u.fallback.Score(ctx, jobDescription, candidateContext)
	}
	return result, nil
}
