package responder

import (
	"context"
	"fmt"

	"github.com/fenrirlabsnl/airesume/internal/domain"
)

// CompletionClient matches the language-model surface provided by
// internal/llm.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error)
}

// RemoteResponder delegates to the language model. Transport errors
// propagate to the session manager, which surfaces them as a visible
// assistant message rather than dropping the turn.
type RemoteResponder struct {
	client CompletionClient
}

func NewRemoteResponder(client CompletionClient) *RemoteResponder {
	return &RemoteResponder{client: client}
}

func (r *RemoteResponder) Respond(ctx context.Context, systemPrompt string, turns []domain.ChatTurn) (string, error) {
	reply, err := r.client.Complete(ctx, systemPrompt, turns)
	if err != nil {
		return "", fmt.Errorf("response strategy failed: %w", err)
	}
	return reply, nil
}
