package implementation

import (
	"context"
	"encoding/json"
	"fmt"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/model"
	"pomodoro-bot-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// IngestionRepositoryImpl buffers completed sessions as JSON rows for
// downstream consumers to pick up.
type IngestionRepositoryImpl struct {
	db *gorm.DB
}

func NewIngestionRepository(db *gorm.DB) contract.IngestionRepository {
	return &IngestionRepositoryImpl{db: db}
}

func (r *IngestionRepositoryImpl) Create(ctx context.Context, payload *entity.IngestionPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize session payload: %w", err)
	}

	m := model.IngestionEntry{
		Id:      uuid.New(),
		Payload: datatypes.JSON(data),
	}
	return r.db.WithContext(ctx).Create(&m).Error
}
