package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/fenrirlabsnl/airesume/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

const skillColumns = `id, skill_name, category, self_rating, evidence, honest_notes,
	years_experience, last_used, created_at, updated_at`

func (r *skillRepo) List(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY self_rating DESC NULLS LAST, skill_name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(
			&s.ID, &s.SkillName, &s.Category, &s.SelfRating, &s.Evidence,
			&s.HonestNotes, &s.YearsExperience, &s.LastUsed, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	var s domain.Skill
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.SkillName, &s.Category, &s.SelfRating, &s.Evidence,
		&s.HonestNotes, &s.YearsExperience, &s.LastUsed, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Create(ctx context.Context, s *domain.Skill) error {
	query := `
		INSERT INTO skills (id, skill_name, category, self_rating, evidence, honest_notes,
			years_experience, last_used, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
		RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		s.ID, s.SkillName, s.Category, s.SelfRating, s.Evidence,
		s.HonestNotes, s.YearsExperience, s.LastUsed,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `
		UPDATE skills SET skill_name=$2, category=$3, self_rating=$4, evidence=$5,
			honest_notes=$6, years_experience=$7, last_used=$8, updated_at=NOW()
		WHERE id=$1
		RETURNING updated_at`
	return r.db.QueryRow(ctx, query,
		s.ID, s.SkillName, s.Category, s.SelfRating, s.Evidence,
		s.HonestNotes, s.YearsExperience, s.LastUsed,
	).Scan(&s.UpdatedAt)
}

func (r *skillRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
