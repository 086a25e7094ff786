package postgres

import (
	"context"
	"errors"

	"github.com/fenrirlabsnl/airesume/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

// Get returns the single candidate profile, or (nil, nil) when none
// has been configured yet. Callers degrade gracefully on nil.
func (r *profileRepo) Get(ctx context.Context) (*domain.CandidateProfile, error) {
	query := `
		SELECT id, name, email, title, target_titles, target_company_stages,
			COALESCE(elevator_pitch, ''), COALESCE(career_narrative, ''),
			COALESCE(looking_for, ''), COALESCE(not_looking_for, ''),
			salary_min, salary_max, availability_status, availability_date,
			COALESCE(location, ''), COALESCE(remote_preference, 'flexible'),
			github_url, linkedin_url, twitter_url, created_at, updated_at
		FROM candidate_profile
		LIMIT 1`

	var p domain.CandidateProfile
	var targetTitles, targetStages []string

	err := r.db.QueryRow(ctx, query).Scan(
		&p.ID, &p.Name, &p.Email, &p.Title,
		pq.Array(&targetTitles), pq.Array(&targetStages),
		&p.ElevatorPitch, &p.CareerNarrative,
		&p.LookingFor, &p.NotLookingFor,
		&p.SalaryMin, &p.SalaryMax, &p.AvailabilityStatus, &p.AvailabilityDate,
		&p.Location, &p.RemotePreference,
		&p.GithubURL, &p.LinkedinURL, &p.TwitterURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.TargetTitles = targetTitles
	p.TargetCompanyStages = targetStages
	return &p, nil
}

// Upsert writes the single profile row. The table holds at most one
// row; the fixed id keeps the upsert honest about that.
func (r *profileRepo) Upsert(ctx context.Context, p *domain.CandidateProfile) error {
	query := `
		INSERT INTO candidate_profile (
			id, name, email, title, target_titles, target_company_stages,
			elevator_pitch, career_narrative, looking_for, not_looking_for,
			salary_min, salary_max, availability_status, availability_date,
			location, remote_preference, github_url, linkedin_url, twitter_url,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,NOW(),NOW())
		ON CONFLICT (id) DO UPDATE SET
			name=$2, email=$3, title=$4, target_titles=$5, target_company_stages=$6,
			elevator_pitch=$7, career_narrative=$8, looking_for=$9, not_looking_for=$10,
			salary_min=$11, salary_max=$12, availability_status=$13, availability_date=$14,
			location=$15, remote_preference=$16, github_url=$17, linkedin_url=$18,
			twitter_url=$19, updated_at=NOW()
		RETURNING created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		p.ID, p.Name, p.Email, p.Title,
		pq.Array(p.TargetTitles), pq.Array(p.TargetCompanyStages),
		p.ElevatorPitch, p.CareerNarrative, p.LookingFor, p.NotLookingFor,
		p.SalaryMin, p.SalaryMax, p.AvailabilityStatus, p.AvailabilityDate,
		p.Location, p.RemotePreference, p.GithubURL, p.LinkedinURL, p.TwitterURL,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}
