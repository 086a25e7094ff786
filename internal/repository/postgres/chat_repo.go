package postgres

import (
	"context"
	"fmt"

	"github.com/fenrirlabsnl/airesume/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type chatRepo struct {
	db *pgxpool.Pool
}

func NewChatRepository(db *pgxpool.Pool) domain.ChatRepository {
	return &chatRepo{db: db}
}

// Append inserts messages in slice order. The log is append-only:
// there is no update or delete path on chat_history.
func (r *chatRepo) Append(ctx context.Context, messages []domain.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, m := range messages {
		batch.Queue(
			`INSERT INTO chat_history (id, session_id, role, content, created_at) VALUES ($1,$2,$3,$4,$5)`,
			m.ID, m.SessionID, m.Role, m.Content, m.CreatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for range messages {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to append chat message: %w", err)
		}
	}
	return nil
}

// ListBySession returns the last `limit` messages for the session in
// chronological order. created_at ties are broken by seq, the identity
// column assigned in insertion order, so a turn pair written in the
// same instant still reads back user-then-assistant. limit <= 0 means
// no bound.
const listBySessionQuery = `SELECT id, session_id, role, content, created_at FROM chat_history WHERE session_id = $1 ORDER BY created_at DESC, seq DESC`

func (r *chatRepo) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	query := listBySessionQuery
	args := []any{sessionID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chat history: %w", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Fetched newest-first to apply the bound; callers want oldest-first.
	reverseChronological(messages)
	return messages, nil
}

func reverseChronological(messages []domain.ChatMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}
