package domain

import (
	"context"
	"errors"
	"time"
)

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrEmptyMessage is returned when a chat turn is blank. The rejection
// happens before any state change.
var ErrEmptyMessage = errors.New("message text is required")

// ErrEmptySessionID is returned when no session identifier is supplied
var ErrEmptySessionID = errors.New("session id is required")

// ChatMessage is one turn in a conversation session. The log is
// append-only: messages are never updated or deleted, and a session
// never merges with another.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatTurn is the role/content pair handed to a response strategy
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SendMessageRequest is the public chat payload
type SendMessageRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// ChatRepository is the persistence port for the conversation log.
// Append writes messages in slice order; ListBySession returns the
// last `limit` messages ordered by created_at ascending, ties broken
// by insertion order.
type ChatRepository interface {
	Append(ctx context.Context, messages []ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
}

// Responder is a chat response strategy: the remote variant delegates
// to the language model, the local variant serves canned replies when
// no credentials are configured. Implementations may return transport
// errors; the session manager turns those into a visible assistant
// message rather than dropping the turn.
type Responder interface {
	Respond(ctx context.Context, systemPrompt string, turns []ChatTurn) (string, error)
}

// ChatUsecase orchestrates turn-taking for a session.
//
// The manager provides no per-session mutual exclusion: concurrent
// SendMessage calls for the same session are expected to be serialized
// by the caller, and if they are not, turns interleave in storage
// (created_at) order.
type ChatUsecase interface {
	// SendMessage appends the user turn, invokes the response strategy
	// with the assembled context plus the bounded replay window, appends
	// the assistant turn and returns it. Blank input is rejected before
	// any write. Every persisted user turn ends up paired with exactly
	// one assistant turn, even when the strategy fails.
	SendMessage(ctx context.Context, sessionID, text string) (*ChatMessage, error)

	// History returns the persisted log for a session, oldest first.
	History(ctx context.Context, sessionID string) ([]ChatMessage, error)

	// ClearSession hands the caller a fresh session identifier. The
	// persisted history of the old session is append-only and is not
	// deleted.
	ClearSession(ctx context.Context, sessionID string) (string, error)
}
