package flow

// EventKind classifies an inbound event after the transport has parsed it.
type EventKind int

const (
	EventStart EventKind = iota
	EventStop
	EventCallback
	EventText
	EventTimerDone
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventStop:
		return "stop"
	case EventCallback:
		return "callback"
	case EventText:
		return "text"
	case EventTimerDone:
		return "timer_done"
	default:
		return "unknown"
	}
}

// Event is one classified inbound event for a chat.
type Event struct {
	Kind         EventKind
	ChatID       int64
	Text         string
	CallbackData string
}
