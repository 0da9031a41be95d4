package service

import (
	"context"
	"time"

	"pomodoro-bot-be/internal/entity"
	"pomodoro-bot-be/internal/flow"
	"pomodoro-bot-be/internal/pkg/logger"
	"pomodoro-bot-be/internal/repository/contract"
	"pomodoro-bot-be/pkg/events"
	"pomodoro-bot-be/pkg/telegram"
	"pomodoro-bot-be/pkg/timer"
)

// IDispatcherService is the event dispatcher: it authorizes the chat, loads
// the session, classifies the inbound event, routes it and executes the
// resulting effects. It never returns an error to its caller; every failure
// is logged and swallowed so the webhook can always be acknowledged (the
// transport redelivers on non-success, and redelivery of a non-idempotent
// state machine is unsafe).
type IDispatcherService interface {
	HandleWebhook(ctx context.Context, body []byte)
	HandleTimerDone(ctx context.Context, chatID int64)
}

// IEventPublisher is the best-effort domain event fan-out; a nil publisher
// disables it.
type IEventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type dispatcherService struct {
	adminChatID int64
	telegram    telegram.API
	sessions    contract.SessionRepository
	timers      timer.Service
	archive     INoteArchiveService
	ingestion   IIngestionService
	publisher   IEventPublisher
	logger      logger.ILogger
	now         func() time.Time
}

func NewDispatcherService(
	adminChatID int64,
	tg telegram.API,
	sessions contract.SessionRepository,
	timers timer.Service,
	archive INoteArchiveService,
	ingestion IIngestionService,
	publisher IEventPublisher,
	sysLogger logger.ILogger,
) IDispatcherService {
	return &dispatcherService{
		adminChatID: adminChatID,
		telegram:    tg,
		sessions:    sessions,
		timers:      timers,
		archive:     archive,
		ingestion:   ingestion,
		publisher:   publisher,
		logger:      sysLogger,
		now:         time.Now,
	}
}

func (d *dispatcherService) HandleWebhook(ctx context.Context, body []byte) {
	update, err := d.telegram.ParseUpdate(body)
	if err != nil {
		d.logger.Error("dispatcher", "failed to parse update", map[string]interface{}{"error": err.Error()})
		return
	}
	if update == nil {
		return
	}

	if update.ChatID != d.adminChatID {
		d.logger.Warn("dispatcher", "unauthorized access attempt", map[string]interface{}{"chat_id": update.ChatID})
		return
	}

	session, ok := d.loadSession(ctx, update.ChatID)
	if !ok {
		return
	}

	d.logger.Info("dispatcher", "processing update", map[string]interface{}{
		"chat_id": update.ChatID,
		"status":  string(session.Status),
	})

	if update.IsCallback {
		if err := d.telegram.AnswerCallbackQuery(ctx, update.CallbackQueryID); err != nil {
			d.logger.Warn("dispatcher", "failed to answer callback query", map[string]interface{}{"error": err.Error()})
		}
	}

	event, ok := classify(update)
	if !ok {
		d.logger.Debug("dispatcher", "ignoring update", map[string]interface{}{"text": update.Text})
		return
	}

	d.apply(ctx, session, event)
}

func (d *dispatcherService) HandleTimerDone(ctx context.Context, chatID int64) {
	if chatID != d.adminChatID {
		d.logger.Warn("dispatcher", "unauthorized timer callback", map[string]interface{}{"chat_id": chatID})
		return
	}

	session, ok := d.loadSession(ctx, chatID)
	if !ok {
		return
	}

	d.apply(ctx, session, flow.Event{Kind: flow.EventTimerDone, ChatID: chatID})
}

// classify maps a parsed transport update onto a flow event. Commands other
// than /start and /stop are ignored.
func classify(u *telegram.Update) (flow.Event, bool) {
	switch {
	case u.IsStartCommand():
		return flow.Event{Kind: flow.EventStart, ChatID: u.ChatID}, true
	case u.IsStopCommand():
		return flow.Event{Kind: flow.EventStop, ChatID: u.ChatID}, true
	case u.IsCallback:
		return flow.Event{Kind: flow.EventCallback, ChatID: u.ChatID, CallbackData: u.CallbackData}, true
	case u.IsTextMessage() && !u.IsCommand():
		return flow.Event{Kind: flow.EventText, ChatID: u.ChatID, Text: u.Text}, true
	default:
		return flow.Event{}, false
	}
}

func (d *dispatcherService) loadSession(ctx context.Context, chatID int64) (entity.Session, bool) {
	session, err := d.sessions.Get(ctx, chatID)
	if err != nil {
		d.logger.Error("dispatcher", "failed to load session", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
		return entity.Session{}, false
	}
	if session == nil {
		return entity.Idle(chatID), true
	}
	return *session, true
}

// apply executes one routing outcome against the adapters. The order is
// fixed: cancel timer, create timer, upload note, persist session, send the
// reply. Messages go out only after the state change persisted, so a storage
// failure never tells the user a step succeeded when it did not.
func (d *dispatcherService) apply(ctx context.Context, session entity.Session, event flow.Event) {
	out := flow.Route(session, event, d.now())

	if out.Log != "" {
		d.logger.Info("dispatcher", out.Log, map[string]interface{}{"chat_id": session.ChatID, "event": event.Kind.String()})
	}

	if out.CancelTimer != "" {
		if err := d.timers.CancelTimer(ctx, out.CancelTimer); err != nil {
			d.logger.Warn("dispatcher", "failed to cancel timer", map[string]interface{}{
				"handle": out.CancelTimer,
				"error":  err.Error(),
			})
		}
	}

	next := out.Save
	if out.StartTimer > 0 && next != nil {
		handle, err := d.timers.CreateTimer(ctx, session.ChatID, out.StartTimer)
		if err != nil {
			d.logger.Error("dispatcher", "failed to create timer", map[string]interface{}{
				"chat_id": session.ChatID,
				"error":   err.Error(),
			})
			return
		}
		withTimer := next.WithTimerHandle(handle)
		next = &withTimer
	}

	if out.Note != nil {
		if _, err := d.archive.Upload(ctx, out.Note.FileName, out.Note.Content); err != nil {
			// The session is deliberately left untouched so the triggering
			// step can be resubmitted.
			d.logger.Error("dispatcher", "failed to upload note", map[string]interface{}{
				"file_name": out.Note.FileName,
				"error":     err.Error(),
			})
			if out.FailureReply != "" {
				d.send(ctx, session.ChatID, out.FailureReply, nil)
			}
			return
		}
		d.logger.Info("dispatcher", "note uploaded", map[string]interface{}{"file_name": out.Note.FileName})
	}

	if next != nil {
		if err := d.sessions.Save(ctx, next); err != nil {
			d.logger.Error("dispatcher", "failed to save session", map[string]interface{}{
				"chat_id": session.ChatID,
				"error":   err.Error(),
			})
			return
		}
	}

	if out.Delete {
		if err := d.sessions.Delete(ctx, session.ChatID); err != nil {
			d.logger.Error("dispatcher", "failed to delete session", map[string]interface{}{
				"chat_id": session.ChatID,
				"error":   err.Error(),
			})
			return
		}
	}

	if out.Completed != nil {
		d.afterCompletion(ctx, *out.Completed)
	}

	if out.Reply != "" {
		d.send(ctx, session.ChatID, out.Reply, out.Buttons)
	}
}

// afterCompletion buffers the finished session for downstream consumers and
// fans it out on the event bus. Both are best-effort; the note is already
// archived by this point.
func (d *dispatcherService) afterCompletion(ctx context.Context, completed entity.Session) {
	payload, err := d.ingestion.Ingest(ctx, completed, d.now())
	if err != nil {
		d.logger.Error("dispatcher", "failed to ingest completed session", map[string]interface{}{
			"chat_id": completed.ChatID,
			"error":   err.Error(),
		})
		return
	}

	if d.publisher == nil {
		return
	}
	if err := d.publisher.Publish(ctx, events.NewSessionCompleted(completed.ChatID, payload)); err != nil {
		d.logger.Warn("dispatcher", "failed to publish session.completed", map[string]interface{}{
			"chat_id": completed.ChatID,
			"error":   err.Error(),
		})
	}
}

func (d *dispatcherService) send(ctx context.Context, chatID int64, text string, buttons []telegram.Button) {
	var err error
	if len(buttons) > 0 {
		err = d.telegram.SendMessageWithKeyboard(ctx, chatID, text, buttons)
	} else {
		err = d.telegram.SendMessage(ctx, chatID, text)
	}
	if err != nil {
		d.logger.Error("dispatcher", "failed to send message", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
	}
}
