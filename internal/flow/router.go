package flow

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"pomodoro-bot-be/internal/entity"
)

const quickNoteTitle = "Quick Note"

// Route is the whole decision logic of the bot: given the chat's current
// session and one classified event it produces the next session and the
// effects to execute. It performs no I/O; now is the routing timestamp.
//
// Events that arrive in a state that does not expect them produce an
// Outcome carrying only a diagnostic Log: the session stays unchanged and
// no error is raised, the sender is expected to retry or the user to take
// the expected action.
func Route(s entity.Session, e Event, now time.Time) Outcome {
	switch e.Kind {
	case EventStart:
		return routeStart(s)
	case EventStop:
		return routeStop(s)
	case EventTimerDone:
		return routeTimerDone(s)
	case EventCallback:
		return routeCallback(s, e.CallbackData)
	case EventText:
		return routeText(s, e.Text, now)
	default:
		return Outcome{Log: fmt.Sprintf("unhandled event kind %d", e.Kind)}
	}
}

// A start command restarts the flow from any state. An existing timer is
// cancelled before the old session is discarded.
func routeStart(s entity.Session) Outcome {
	out := Outcome{
		Reply:   MsgChooseDuration,
		Buttons: DurationButtons,
	}
	if s.Status == entity.StatusWorking && s.TimerHandle != "" {
		out.CancelTimer = s.TimerHandle
	}
	next := entity.Idle(s.ChatID).WaitingForDuration()
	out.Save = &next
	return out
}

// A stop command is only meaningful while WORKING: it cancels the timer and
// jumps straight to the reflection phase.
func routeStop(s entity.Session) Outcome {
	if s.Status != entity.StatusWorking {
		return Outcome{Reply: MsgNoActiveSession}
	}
	next := s.WaitingForEnergy()
	return Outcome{
		Save:        &next,
		CancelTimer: s.TimerHandle,
		Reply:       MsgSessionStopped,
		Buttons:     EnergyButtons,
	}
}

func routeTimerDone(s entity.Session) Outcome {
	if s.Status != entity.StatusWorking {
		return Outcome{Log: fmt.Sprintf("timer done ignored, session is in state %s", s.Status)}
	}
	next := s.WaitingForExtension()
	return Outcome{
		Save:    &next,
		Reply:   MsgTimeIsUp,
		Buttons: ExtensionButtons,
	}
}

func routeCallback(s entity.Session, data string) Outcome {
	category, value, ok := strings.Cut(data, ":")
	if !ok {
		return Outcome{Log: fmt.Sprintf("malformed callback payload %q", data)}
	}

	switch {
	case category == "duration" && s.Status == entity.StatusWaitingForDuration:
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return Outcome{Log: fmt.Sprintf("non-numeric duration payload %q", data)}
		}
		next := s.WaitingForTask(minutes)
		return Outcome{Save: &next, Reply: MsgAskTask}

	case category == "role" && s.Status == entity.StatusWaitingForRole:
		return roleChosen(s, value)

	case category == "extension" && s.Status == entity.StatusWaitingForExtension:
		if value == "finish" {
			next := s.WaitingForEnergy()
			return Outcome{Save: &next, Reply: MsgAskEnergy, Buttons: EnergyButtons}
		}
		minutes, err := strconv.Atoi(value)
		if err != nil {
			return Outcome{Log: fmt.Sprintf("non-numeric extension payload %q", data)}
		}
		next := s.WorkingExtended()
		return Outcome{
			Save:       &next,
			StartTimer: minutes,
			Reply:      fmt.Sprintf(MsgExtendedFmt, minutes),
		}

	case category == "energy" && s.Status == entity.StatusWaitingForEnergy:
		next := s.WaitingForFocus(value)
		return Outcome{Save: &next, Reply: MsgAskFocus, Buttons: FocusButtons}

	case category == "focus" && s.Status == entity.StatusWaitingForFocus:
		next := s.WaitingForQuality(value)
		return Outcome{Save: &next, Reply: MsgAskQuality, Buttons: QualityButtons}

	case category == "quality" && s.Status == entity.StatusWaitingForQuality:
		next := s.WaitingForSummary(value)
		return Outcome{Save: &next, Reply: MsgAskSummary}
	}

	return Outcome{Log: fmt.Sprintf("unhandled callback %q in state %s", data, s.Status)}
}

func routeText(s entity.Session, text string, now time.Time) Outcome {
	switch s.Status {
	case entity.StatusWaitingForTask:
		next := s.WaitingForRole(text)
		return Outcome{Save: &next, Reply: MsgAskRole, Buttons: RoleButtons}

	case entity.StatusWaitingForRole:
		// The role can be chosen from the keyboard or typed freely.
		return roleChosen(s, text)

	case entity.StatusWaitingForProductType:
		next := s.WaitingForUsageContext(text)
		return Outcome{Save: &next, Reply: MsgAskUsageContext}

	case entity.StatusWaitingForUsageContext:
		next := s.WaitingForContext(text)
		return Outcome{Save: &next, Reply: MsgAskWorkContext}

	case entity.StatusWaitingForContext:
		next := s.WaitingForResources(text)
		return Outcome{Save: &next, Reply: MsgAskResources}

	case entity.StatusWaitingForResources:
		next := s.WaitingForConstraints(text)
		return Outcome{Save: &next, Reply: MsgAskConstraints}

	case entity.StatusWaitingForConstraints:
		next := s.Working(text, now)
		return Outcome{
			Save:       &next,
			StartTimer: s.Duration,
			Reply:      fmt.Sprintf(MsgTimerStartedFmt, s.Duration),
		}

	case entity.StatusWaitingForSummary:
		next := s.WaitingForNextStep(text)
		return Outcome{Save: &next, Reply: MsgAskNextStep}

	case entity.StatusWaitingForNextStep:
		completed := s.Completed(text)
		start := now
		if completed.StartTime != nil {
			start = *completed.StartTime
		}
		return Outcome{
			Delete: true,
			Note: &Note{
				FileName: FileName(start, completed.Task),
				Content:  Render(completed, now),
			},
			Completed:    &completed,
			Reply:        MsgSessionSaved,
			FailureReply: MsgSaveFailed,
		}

	case entity.StatusIdle:
		// Quick note: free text while no flow is active is archived verbatim
		// and no session is created.
		return Outcome{
			Note: &Note{
				FileName: FileName(now, quickNoteTitle),
				Content:  text,
			},
			Reply:        MsgQuickNoteSaved,
			FailureReply: MsgQuickNoteFailed,
		}
	}

	return Outcome{Log: fmt.Sprintf("unhandled text message in state %s", s.Status)}
}

func roleChosen(s entity.Session, role string) Outcome {
	next := s.WaitingForProductType(role)
	return Outcome{Save: &next, Reply: MsgAskProductType}
}
