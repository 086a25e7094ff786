package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/usecase"
)

func TestExportTranscriptCSV(t *testing.T) {
	repo := new(MockChatRepo)
	repo.On("ListBySession", mock.Anything, "session_1", 0).Return([]domain.ChatMessage{
		{Role: domain.RoleUser, Content: "What's your biggest weakness?", CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		{Role: domain.RoleAssistant, Content: "Honestly, delegation.", CreatedAt: time.Date(2026, 3, 1, 12, 0, 2, 0, time.UTC)},
	}, nil)

	uc := usecase.NewExportUsecase(repo)
	data, filename, err := uc.ExportTranscript(context.Background(), "session_1", domain.ExportFormatCSV)

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "transcript_session_1_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "timestamp,role,message", lines[0])
	// Commas and quotes in message bodies must survive the round trip.
	assert.Contains(t, lines[2], `"Honestly, delegation."`)
}

func TestExportTranscriptEmptySession(t *testing.T) {
	repo := new(MockChatRepo)
	repo.On("ListBySession", mock.Anything, "session_empty", 0).Return([]domain.ChatMessage{}, nil)

	uc := usecase.NewExportUsecase(repo)
	_, _, err := uc.ExportTranscript(context.Background(), "session_empty", domain.ExportFormatXLSX)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "No messages")
}

func TestExportTranscriptUnsupportedFormat(t *testing.T) {
	repo := new(MockChatRepo)
	repo.On("ListBySession", mock.Anything, "session_1", 0).Return([]domain.ChatMessage{
		{Role: domain.RoleUser, Content: "hi", CreatedAt: time.Now()},
	}, nil)

	uc := usecase.NewExportUsecase(repo)
	_, _, err := uc.ExportTranscript(context.Background(), "session_1", "pdf")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
