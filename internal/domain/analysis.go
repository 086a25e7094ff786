package domain

import (
	"context"
	"errors"
)

// Fit recommendations, a pure function of the match score
const (
	RecommendationGoodFit  = "good_fit"
	RecommendationConsider = "consider"
	RecommendationNotIdeal = "not_ideal"
)

// ErrEmptyJobDescription is returned when the analyzer receives blank
// input. No score is produced and no strategy runs.
var ErrEmptyJobDescription = errors.New("job description is required")

// FitResult is the outcome of analyzing a job description against the
// candidate's knowledge context.
type FitResult struct {
	MatchScore     int      `json:"match_score"`
	Recommendation string   `json:"recommendation"`
	Strengths      []string `json:"strengths"`
	Gaps           []string `json:"gaps"`
	Summary        string   `json:"summary"`
}

// RecommendationForScore maps a match score to its recommendation:
// 75 and above is good_fit, below 50 is not_ideal, the band between
// is consider. Both scoring strategies classify through this function
// so they can never disagree on the same score.
func RecommendationForScore(score int) string {
	switch {
	case score >= 75:
		return RecommendationGoodFit
	case score < 50:
		return RecommendationNotIdeal
	default:
		return RecommendationConsider
	}
}

// NeutralFitResult is the fixed degraded result returned when no
// candidate profile has been configured. Scoring short-circuits to
// this instead of failing the caller.
func NeutralFitResult() *FitResult {
	return &FitResult{
		MatchScore:     50,
		Recommendation: RecommendationConsider,
		Strengths:      []string{"Unable to analyze - no candidate profile found"},
		Gaps:           []string{"Please add profile data first"},
		Summary:        "No candidate profile available for analysis.",
	}
}

// AnalyzeRequest is the public analyzer payload
type AnalyzeRequest struct {
	JobDescription string `json:"job_description" binding:"required"`
}

// FitScorer is a scoring strategy. The remote variant delegates to the
// language model with the candidate context; the local variant is a
// deterministic keyword heuristic used when the remote service is
// unreachable or unconfigured.
type FitScorer interface {
	Score(ctx context.Context, jobDescription, candidateContext string) (*FitResult, error)
}

// AnalyzerUsecase exposes fit analysis to the UI
type AnalyzerUsecase interface {
	AnalyzeFit(ctx context.Context, jobDescription string) (*FitResult, error)
}
