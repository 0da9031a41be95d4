package telegram

import (
	"context"
	"strings"
)

// Button is one inline-keyboard option. Data carries the callback payload
// in the "<category>:<value>" format.
type Button struct {
	Label string
	Data  string
}

// Update is the simplified view of an incoming Telegram update that the
// dispatcher works with.
type Update struct {
	ChatID          int64
	Text            string
	IsCallback      bool
	CallbackQueryID string
	CallbackData    string
}

func (u Update) IsCommand() bool {
	return strings.HasPrefix(u.Text, "/")
}

func (u Update) IsStartCommand() bool {
	return u.Text == "/start" || strings.HasPrefix(u.Text, "/start ")
}

func (u Update) IsStopCommand() bool {
	return u.Text == "/stop" || strings.HasPrefix(u.Text, "/stop ")
}

func (u Update) IsTextMessage() bool {
	return !u.IsCallback && u.Text != ""
}

// API is the chat transport contract consumed by the dispatcher.
type API interface {
	// ParseUpdate decodes a raw webhook body. A (nil, nil) result means the
	// update is of a kind the bot does not handle (edited messages, channel
	// posts and so on).
	ParseUpdate(body []byte) (*Update, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, buttons []Button) error
	AnswerCallbackQuery(ctx context.Context, callbackQueryID string) error
}
