package entity

import "time"

// SessionStatus is the lifecycle state of a chat's work session. It is
// persisted as a plain string so the session survives process restarts.
type SessionStatus string

const (
	StatusIdle                   SessionStatus = "IDLE"
	StatusWaitingForDuration     SessionStatus = "WAITING_FOR_DURATION"
	StatusWaitingForTask         SessionStatus = "WAITING_FOR_TASK"
	StatusWaitingForRole         SessionStatus = "WAITING_FOR_ROLE"
	StatusWaitingForProductType  SessionStatus = "WAITING_FOR_PRODUCT_TYPE"
	StatusWaitingForUsageContext SessionStatus = "WAITING_FOR_USAGE_CONTEXT"
	StatusWaitingForContext      SessionStatus = "WAITING_FOR_CONTEXT"
	StatusWaitingForResources    SessionStatus = "WAITING_FOR_RESOURCES"
	StatusWaitingForConstraints  SessionStatus = "WAITING_FOR_CONSTRAINTS"
	StatusWorking                SessionStatus = "WORKING"
	StatusWaitingForExtension    SessionStatus = "WAITING_FOR_EXTENSION"
	StatusWaitingForEnergy       SessionStatus = "WAITING_FOR_ENERGY"
	StatusWaitingForFocus        SessionStatus = "WAITING_FOR_FOCUS"
	StatusWaitingForQuality      SessionStatus = "WAITING_FOR_QUALITY"
	StatusWaitingForSummary      SessionStatus = "WAITING_FOR_SUMMARY"
	StatusWaitingForNextStep     SessionStatus = "WAITING_FOR_NEXT_STEP"
)

// Session is one chat's in-progress work session. Values are never mutated
// in place: every transition method returns a fresh copy with exactly the
// fields of the target state populated, so the repository always performs
// load -> transform -> save.
type Session struct {
	ChatID      int64         `json:"chat_id"`
	Status      SessionStatus `json:"status"`
	Duration    int           `json:"duration,omitempty"`
	TimerHandle string        `json:"timer_handle,omitempty"`

	Task         string     `json:"task,omitempty"`
	Role         string     `json:"role,omitempty"`
	ProductType  string     `json:"product_type,omitempty"`
	UsageContext string     `json:"usage_context,omitempty"`
	WorkContext  string     `json:"work_context,omitempty"`
	Resources    string     `json:"resources,omitempty"`
	Constraints  string     `json:"constraints,omitempty"`
	StartTime    *time.Time `json:"start_time,omitempty"`
	EnergyLevel  string     `json:"energy_level,omitempty"`
	FocusLevel   string     `json:"focus_level,omitempty"`
	QualityLevel string     `json:"quality_level,omitempty"`
	Summary      string     `json:"summary,omitempty"`
	NextStep     string     `json:"next_step,omitempty"`
}

// Idle returns an empty session for a chat with no active flow.
func Idle(chatID int64) Session {
	return Session{ChatID: chatID, Status: StatusIdle}
}

// WaitingForDuration starts a fresh flow, discarding any collected data.
func (s Session) WaitingForDuration() Session {
	return Session{ChatID: s.ChatID, Status: StatusWaitingForDuration}
}

func (s Session) WaitingForTask(duration int) Session {
	next := s
	next.Status = StatusWaitingForTask
	next.Duration = duration
	return next
}

func (s Session) WaitingForRole(task string) Session {
	next := s
	next.Status = StatusWaitingForRole
	next.Task = task
	return next
}

func (s Session) WaitingForProductType(role string) Session {
	next := s
	next.Status = StatusWaitingForProductType
	next.Role = role
	return next
}

func (s Session) WaitingForUsageContext(productType string) Session {
	next := s
	next.Status = StatusWaitingForUsageContext
	next.ProductType = productType
	return next
}

func (s Session) WaitingForContext(usageContext string) Session {
	next := s
	next.Status = StatusWaitingForContext
	next.UsageContext = usageContext
	return next
}

func (s Session) WaitingForResources(workContext string) Session {
	next := s
	next.Status = StatusWaitingForResources
	next.WorkContext = workContext
	return next
}

func (s Session) WaitingForConstraints(resources string) Session {
	next := s
	next.Status = StatusWaitingForConstraints
	next.Resources = resources
	return next
}

// Working records the constraints answer and the session start. The timer
// handle is attached separately once the timer actually exists.
func (s Session) Working(constraints string, start time.Time) Session {
	next := s
	next.Status = StatusWorking
	next.Constraints = constraints
	next.StartTime = &start
	next.TimerHandle = ""
	return next
}

// WorkingExtended returns to WORKING after an extension. The original
// start time is kept; only the timer handle changes.
func (s Session) WorkingExtended() Session {
	next := s
	next.Status = StatusWorking
	next.TimerHandle = ""
	return next
}

// WaitingForExtension is entered when the timer fires; the handle is
// consumed and cleared.
func (s Session) WaitingForExtension() Session {
	next := s
	next.Status = StatusWaitingForExtension
	next.TimerHandle = ""
	return next
}

// WaitingForEnergy begins the reflection phase. Any timer handle has been
// cancelled or consumed by this point.
func (s Session) WaitingForEnergy() Session {
	next := s
	next.Status = StatusWaitingForEnergy
	next.TimerHandle = ""
	return next
}

func (s Session) WaitingForFocus(energy string) Session {
	next := s
	next.Status = StatusWaitingForFocus
	next.EnergyLevel = energy
	return next
}

func (s Session) WaitingForQuality(focus string) Session {
	next := s
	next.Status = StatusWaitingForQuality
	next.FocusLevel = focus
	return next
}

func (s Session) WaitingForSummary(quality string) Session {
	next := s
	next.Status = StatusWaitingForSummary
	next.QualityLevel = quality
	return next
}

func (s Session) WaitingForNextStep(summary string) Session {
	next := s
	next.Status = StatusWaitingForNextStep
	next.Summary = summary
	return next
}

// Completed holds the final answer; the session row itself is deleted once
// the note is archived.
func (s Session) Completed(nextStep string) Session {
	next := s
	next.Status = StatusIdle
	next.NextStep = nextStep
	return next
}

// WithTimerHandle attaches the handle of a freshly created timer.
func (s Session) WithTimerHandle(handle string) Session {
	next := s
	next.TimerHandle = handle
	return next
}
