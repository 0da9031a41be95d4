package contract

import (
	"context"

	"pomodoro-bot-be/internal/entity"
)

type IngestionRepository interface {
	Create(ctx context.Context, payload *entity.IngestionPayload) error
}
