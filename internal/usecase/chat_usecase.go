package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fenrirlabsnl/airesume/internal/domain"
	"github.com/fenrirlabsnl/airesume/internal/prompt"
	"github.com/fenrirlabsnl/airesume/pkg/logger"
)

type chatUsecase struct {
	messages      domain.ChatRepository
	knowledge     *knowledgeReader
	responder     domain.Responder
	historyWindow int
}

func NewChatUsecase(
	messages domain.ChatRepository,
	profiles domain.ProfileRepository,
	experiences domain.ExperienceRepository,
	skills domain.SkillRepository,
	gaps domain.GapRepository,
	faqs domain.FaqRepository,
	instructions domain.InstructionRepository,
	responder domain.Responder,
	historyWindow int,
) domain.ChatUsecase {
	if historyWindow <= 0 {
		historyWindow = 20
	}
	return &chatUsecase{
		messages: messages,
		knowledge: &knowledgeReader{
			profiles:     profiles,
			experiences:  experiences,
			skills:       skills,
			gaps:         gaps,
			faqs:         faqs,
			instructions: instructions,
		},
		responder:     responder,
		historyWindow: historyWindow,
	}
}

func (u *chatUsecase) SendMessage(ctx context.Context, sessionID, text string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, domain.ErrEmptySessionID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}

	// Replay window is read before the new turn is written, so the
	// strategy sees prior turns plus the incoming message exactly once.
	history, err := u.messages.ListBySession(ctx, sessionID, u.historyWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}

	userMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleUser,
		Content:   text,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.messages.Append(ctx, []domain.ChatMessage{userMsg}); err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	// From here on the user turn is on disk. Whatever goes wrong, the
	// session still gets its assistant turn so no user message is left
	// unanswered in the log.
	reply := u.produceReply(ctx, history, userMsg)

	assistantMsg := domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      domain.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.messages.Append(ctx, []domain.ChatMessage{assistantMsg}); err != nil {
		return nil, fmt.Errorf("failed to persist assistant message: %w", err)
	}

	return &assistantMsg, nil
}

// produceReply assembles the knowledge context and runs the response
// strategy. Failures degrade to a visible error message instead of
// bubbling up, because the paired assistant turn must be written.
func (u *chatUsecase) produceReply(ctx context.Context, history []domain.ChatMessage, userMsg domain.ChatMessage) string {
	snapshot, err := u.knowledge.Snapshot(ctx)
	if err != nil {
		logger.Log.Error("failed to assemble knowledge context", "error", err, "session_id", userMsg.SessionID)
		return fmt.Sprintf("Sorry, I encountered an error: %v. Please try again.", err)
	}

	systemPrompt := prompt.BuildSystemPrompt(snapshot)

	turns := make([]domain.ChatTurn, 0, len(history)+1)
	for _, m := range history {
		turns = append(turns, domain.ChatTurn{Role: m.Role, Content: m.Content})
	}
	turns = append(turns, domain.ChatTurn{Role: userMsg.Role, Content: userMsg.Content})

	reply, err := u.responder.Respond(ctx, systemPrompt, turns)
	if err != nil {
		logger.Log.Error("response strategy failed", "error", err, "session_id", userMsg.SessionID)
		return fmt.Sprintf("Sorry, I encountered an error: %v. Please try again.", err)
	}
	return reply
}

func (u *chatUsecase) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, domain.ErrEmptySessionID
	}
	return u.messages.ListBySession(ctx, sessionID, 0)
}

func (u *chatUsecase) ClearSession(ctx context.Context, sessionID string) (string, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", domain.ErrEmptySessionID
	}
	// The old log stays in place untouched; the caller simply starts
	// writing under a fresh identifier.
	return "session_" + uuid.NewString(), nil
}
