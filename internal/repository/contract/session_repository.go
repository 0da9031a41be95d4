package contract

import (
	"context"

	"pomodoro-bot-be/internal/entity"
)

// SessionRepository stores at most one active session per chat.
type SessionRepository interface {
	// Get returns (nil, nil) when the chat has no session.
	Get(ctx context.Context, chatID int64) (*entity.Session, error)
	Save(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, chatID int64) error
}
