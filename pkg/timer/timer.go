package timer

import "context"

// DoneAction is the fixed marker carried by a fired-timer payload, both on
// the internal topic and on the external callback endpoint.
const DoneAction = "TIMER_DONE"

// DonePayload is the message published when a scheduled timer fires.
type DonePayload struct {
	Action string `json:"action"`
	ChatID int64  `json:"chatId"`
}

// Service schedules one-shot session timers. The returned handle is opaque
// and only used for cancellation.
type Service interface {
	CreateTimer(ctx context.Context, chatID int64, minutes int) (string, error)
	CancelTimer(ctx context.Context, handle string) error
}
