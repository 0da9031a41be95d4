package dto

// TimerCallbackRequest is the scheduled-timer payload shape delivered to
// the webhook endpoint by an external scheduler.
type TimerCallbackRequest struct {
	Action string `json:"action" validate:"required"`
	ChatID int64  `json:"chatId" validate:"required"`
}
