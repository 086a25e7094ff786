package postgres

import (
	"context"
	"fmt"

	"github.com/fenrirlabsnl/airesume/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories for the honesty content: gaps, FAQ responses and AI
// instructions. They share the same thin CRUD shape.

type gapRepo struct {
	db *pgxpool.Pool
}

func NewGapRepository(db *pgxpool.Pool) domain.GapRepository {
	return &gapRepo{db: db}
}

func (r *gapRepo) List(ctx context.Context) ([]domain.GapWeakness, error) {
	query := `SELECT id, gap_type, description, why_its_a_gap, interest_in_learning, created_at, updated_at
		FROM gaps_weaknesses ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gaps: %w", err)
	}
	defer rows.Close()

	var gaps []domain.GapWeakness
	for rows.Next() {
		var g domain.GapWeakness
		if err := rows.Scan(&g.ID, &g.GapType, &g.Description, &g.WhyItsAGap,
			&g.InterestInLearning, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		gaps = append(gaps, g)
	}
	return gaps, rows.Err()
}

func (r *gapRepo) Create(ctx context.Context, g *domain.GapWeakness) error {
	query := `INSERT INTO gaps_weaknesses (id, gap_type, description, why_its_a_gap, interest_in_learning, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW()) RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query, g.ID, g.GapType, g.Description, g.WhyItsAGap, g.InterestInLearning).
		Scan(&g.CreatedAt, &g.UpdatedAt)
}

func (r *gapRepo) Update(ctx context.Context, g *domain.GapWeakness) error {
	query := `UPDATE gaps_weaknesses SET gap_type=$2, description=$3, why_its_a_gap=$4,
		interest_in_learning=$5, updated_at=NOW() WHERE id=$1 RETURNING updated_at`
	return r.db.QueryRow(ctx, query, g.ID, g.GapType, g.Description, g.WhyItsAGap, g.InterestInLearning).
		Scan(&g.UpdatedAt)
}

func (r *gapRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "gaps_weaknesses", id)
}

type faqRepo struct {
	db *pgxpool.Pool
}

func NewFaqRepository(db *pgxpool.Pool) domain.FaqRepository {
	return &faqRepo{db: db}
}

func (r *faqRepo) List(ctx context.Context) ([]domain.FaqResponse, error) {
	query := `SELECT id, question, answer, is_common_question, created_at, updated_at
		FROM faq_responses ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch faqs: %w", err)
	}
	defer rows.Close()

	var faqs []domain.FaqResponse
	for rows.Next() {
		var f domain.FaqResponse
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.IsCommonQuestion,
			&f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

func (r *faqRepo) Create(ctx context.Context, f *domain.FaqResponse) error {
	query := `INSERT INTO faq_responses (id, question, answer, is_common_question, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW()) RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query, f.ID, f.Question, f.Answer, f.IsCommonQuestion).
		Scan(&f.CreatedAt, &f.UpdatedAt)
}

func (r *faqRepo) Update(ctx context.Context, f *domain.FaqResponse) error {
	query := `UPDATE faq_responses SET question=$2, answer=$3, is_common_question=$4,
		updated_at=NOW() WHERE id=$1 RETURNING updated_at`
	return r.db.QueryRow(ctx, query, f.ID, f.Question, f.Answer, f.IsCommonQuestion).
		Scan(&f.UpdatedAt)
}

func (r *faqRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "faq_responses", id)
}

type instructionRepo struct {
	db *pgxpool.Pool
}

func NewInstructionRepository(db *pgxpool.Pool) domain.InstructionRepository {
	return &instructionRepo{db: db}
}

// List returns instructions highest-priority first, the order in which
// they are concatenated into the system directive.
func (r *instructionRepo) List(ctx context.Context) ([]domain.AiInstruction, error) {
	query := `SELECT id, instruction_type, instruction, priority, created_at, updated_at
		FROM ai_instructions ORDER BY priority DESC, created_at ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instructions: %w", err)
	}
	defer rows.Close()

	var instructions []domain.AiInstruction
	for rows.Next() {
		var i domain.AiInstruction
		if err := rows.Scan(&i.ID, &i.InstructionType, &i.Instruction, &i.Priority,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, err
		}
		instructions = append(instructions, i)
	}
	return instructions, rows.Err()
}

func (r *instructionRepo) Create(ctx context.Context, i *domain.AiInstruction) error {
	query := `INSERT INTO ai_instructions (id, instruction_type, instruction, priority, created_at, updated_at)
		VALUES ($1,$2,$3,$4,NOW(),NOW()) RETURNING created_at, updated_at`
	return r.db.QueryRow(ctx, query, i.ID, i.InstructionType, i.Instruction, i.Priority).
		Scan(&i.CreatedAt, &i.UpdatedAt)
}

func (r *instructionRepo) Update(ctx context.Context, i *domain.AiInstruction) error {
	query := `UPDATE ai_instructions SET instruction_type=$2, instruction=$3, priority=$4,
		updated_at=NOW() WHERE id=$1 RETURNING updated_at`
	return r.db.QueryRow(ctx, query, i.ID, i.InstructionType, i.Instruction, i.Priority).
		Scan(&i.UpdatedAt)
}

func (r *instructionRepo) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.db, "ai_instructions", id)
}

func deleteByID(ctx context.Context, db *pgxpool.Pool, table, id string) error {
	tag, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
