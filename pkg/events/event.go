package events

import (
	"time"

	"pomodoro-bot-be/internal/entity"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "session.completed").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewSessionCompleted is emitted after a finished session has been archived.
func NewSessionCompleted(chatID int64, payload entity.IngestionPayload) Event {
	return BaseEvent{
		Type: "session.completed",
		Data: map[string]interface{}{
			"chat_id":      chatID,
			"task":         payload.Task,
			"role":         payload.Role,
			"product_type": payload.ProductType,
			"start_time":   payload.StartTime,
			"end_time":     payload.EndTime,
			"duration":     payload.Duration,
			"summary":      payload.Summary,
			"next_step":    payload.NextStep,
		},
		OccurredAt: payload.EndTime,
	}
}
