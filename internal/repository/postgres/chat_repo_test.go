package postgres

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

func TestReverseChronologicalKeepsTurnPairOrder(t *testing.T) {
	// A turn pair written in the same batch can share a created_at
	// stamp; the query breaks that tie on seq, so the window arrives
	// newest-first as assistant-then-user. Reversal must hand callers
	// the pair back as user-then-assistant.
	stamp := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	window := []domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: "answer", CreatedAt: stamp},
		{Role: domain.RoleUser, Content: "question", CreatedAt: stamp},
		{Role: domain.RoleAssistant, Content: "older answer", CreatedAt: stamp.Add(-time.Minute)},
	}

	reverseChronological(window)

	assert.Equal(t, "older answer", window[0].Content)
	assert.Equal(t, domain.RoleUser, window[1].Role)
	assert.Equal(t, domain.RoleAssistant, window[2].Role)
}

func TestListQueryBreaksTimestampTiesOnSeq(t *testing.T) {
	// The tie-break must be the insertion-ordered identity column, not
	// the random message UUID.
	assert.Contains(t, listBySessionQuery, "ORDER BY created_at DESC, seq DESC")
	assert.False(t, strings.Contains(listBySessionQuery, "id DESC"))
}
