package service

import (
	"context"
	"time"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/repository/contract"
)

// IIngestionService buffers completed sessions for downstream consumers.
type IIngestionService interface {
	Ingest(ctx context.Context, session entity.Session, endTime time.Time) (entity.IngestionPayload, error)
}

type ingestionService struct {
	ingestionRepo contract.IngestionRepository
}

func NewIngestionService(ingestionRepo contract.IngestionRepository) IIngestionService {
	return &ingestionService{ingestionRepo: ingestionRepo}
}

func (s *ingestionService) Ingest(ctx context.Context, session entity.Session, endTime time.Time) (entity.IngestionPayload, error) {
	payload := entity.IngestionPayload{
		Task:         session.Task,
		Role:         session.Role,
		ProductType:  session.ProductType,
		UsageContext: session.UsageContext,
		WorkContext:  session.WorkContext,
		Resources:    session.Resources,
		Constraints:  session.Constraints,
		StartTime:    session.StartTime,
		EndTime:      endTime,
		Duration:     session.Duration,
		EnergyLevel:  session.EnergyLevel,
		FocusLevel:   session.FocusLevel,
		QualityLevel: session.QualityLevel,
		Summary:      session.Summary,
		NextStep:     session.NextStep,
	}
	return payload, s.ingestionRepo.Create(ctx, &payload)
}
