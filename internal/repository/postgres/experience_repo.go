package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fenrirlabsnl/airesume/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type experienceRepo struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepo{db: db}
}

const experienceColumns = `
	id, company_name, title, title_progression, start_date, end_date, is_current,
	bullet_points, why_joined, why_left, actual_contributions, proudest_achievement,
	would_do_differently, challenges_faced, lessons_learned, manager_would_say,
	reports_would_say, quantified_impact, display_order, created_at, updated_at`

// List returns all experiences ordered by display_order. Presentation
// order (current-first) is applied by domain.SortExperiences in the
// callers, not in SQL, so the rule lives in exactly one place.
func (r *experienceRepo) List(ctx context.Context) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences ORDER BY display_order ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch experiences: %w", err)
	}
	defer rows.Close()

	var experiences []domain.Experience
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, *exp)
	}
	return experiences, rows.Err()
}

func (r *experienceRepo) GetByID(ctx context.Context, id string) (*domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1`
	exp, err := scanExperience(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return exp, nil
}

func (r *experienceRepo) Create(ctx context.Context, exp *domain.Experience) error {
	impact, err := json.Marshal(exp.QuantifiedImpact)
	if err != nil {
		return fmt.Errorf("failed to encode quantified_impact: %w", err)
	}
	query := `
		INSERT INTO experiences (
			id, company_name, title, title_progression, start_date, end_date, is_current,
			bullet_points, why_joined, why_left, actual_contributions, proudest_achievement,
			would_do_differently, challenges_faced, lessons_learned, manager_would_say,
			reports_would_say, quantified_impact, display_order, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,NOW(),NOW())
		RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		exp.ID, exp.CompanyName, exp.Title, exp.TitleProgression, exp.StartDate, exp.EndDate,
		exp.IsCurrent, pq.Array(exp.BulletPoints), exp.WhyJoined, exp.WhyLeft,
		exp.ActualContribution, exp.ProudestAchievement, exp.WouldDoDifferently,
		exp.ChallengesFaced, exp.LessonsLearned, exp.ManagerWouldSay, exp.ReportsWouldSay,
		impact, exp.DisplayOrder,
	).Scan(&exp.CreatedAt, &exp.UpdatedAt)
}

func (r *experienceRepo) Update(ctx context.Context, exp *domain.Experience) error {
	impact, err := json.Marshal(exp.QuantifiedImpact)
	if err != nil {
		return fmt.Errorf("failed to encode quantified_impact: %w", err)
	}
	query := `
		UPDATE experiences SET
			company_name=$2, title=$3, title_progression=$4, start_date=$5, end_date=$6,
			is_current=$7, bullet_points=$8, why_joined=$9, why_left=$10,
			actual_contributions=$11, proudest_achievement=$12, would_do_differently=$13,
			challenges_faced=$14, lessons_learned=$15, manager_would_say=$16,
			reports_would_say=$17, quantified_impact=$18, display_order=$19, updated_at=NOW()
		WHERE id=$1
		RETURNING updated_at`
	return r.db.QueryRow(ctx, query,
		exp.ID, exp.CompanyName, exp.Title, exp.TitleProgression, exp.StartDate, exp.EndDate,
		exp.IsCurrent, pq.Array(exp.BulletPoints), exp.WhyJoined, exp.WhyLeft,
		exp.ActualContribution, exp.ProudestAchievement, exp.WouldDoDifferently,
		exp.ChallengesFaced, exp.LessonsLearned, exp.ManagerWouldSay, exp.ReportsWouldSay,
		impact, exp.DisplayOrder,
	).Scan(&exp.UpdatedAt)
}

func (r *experienceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var exp domain.Experience
	var bullets []string
	var impact []byte

	err := row.Scan(
		&exp.ID, &exp.CompanyName, &exp.Title, &exp.TitleProgression,
		&exp.StartDate, &exp.EndDate, &exp.IsCurrent,
		pq.Array(&bullets), &exp.WhyJoined, &exp.WhyLeft,
		&exp.ActualContribution, &exp.ProudestAchievement, &exp.WouldDoDifferently,
		&exp.ChallengesFaced, &exp.LessonsLearned, &exp.ManagerWouldSay,
		&exp.ReportsWouldSay, &impact, &exp.DisplayOrder,
		&exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	exp.BulletPoints = bullets
	if len(impact) > 0 {
		if err := json.Unmarshal(impact, &exp.QuantifiedImpact); err != nil {
			return nil, fmt.Errorf("failed to decode quantified_impact: %w", err)
		}
	}
	return &exp, nil
}
