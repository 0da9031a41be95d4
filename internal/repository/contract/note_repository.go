package contract

import (
	"context"

	"pomodoro-bot-be/internal/entity"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
}
