package flow

import (
	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/pkg/telegram"
)

// Note is a document to persist to the note archive.
type Note struct {
	FileName string
	Content  string
}

// Outcome is the full effect list of one routing decision. The dispatcher
// executes the non-zero fields in a fixed order: cancel timer, create timer,
// upload note, persist session, send reply. A zero Outcome is a no-op.
type Outcome struct {
	// Save is the next session value to persist, nil when the state does
	// not change. When StartTimer is set the dispatcher attaches the new
	// timer handle to Save before persisting.
	Save        *entity.Session
	Delete      bool
	StartTimer  int    // minutes; 0 means no new timer
	CancelTimer string // timer handle to cancel; "" means none

	// Note, when set, is uploaded before the session change applies. On
	// upload failure the session change is discarded, FailureReply is sent
	// and nothing else happens, so the triggering step can be resubmitted.
	Note         *Note
	FailureReply string

	// Completed carries the fully collected session on the final transition
	// for ingestion and event fan-out.
	Completed *entity.Session

	Reply   string
	Buttons []telegram.Button

	// Log is a diagnostic for events that arrive in a state that does not
	// expect them; the session stays untouched.
	Log string
}
