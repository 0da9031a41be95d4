package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUpdate(t *testing.T) {
	client := NewClient("test-token")

	tests := []struct {
		name string
		body string
		want *Update
	}{
		{
			name: "text message",
			body: `{"update_id":1,"message":{"chat":{"id":42},"text":"/start"}}`,
			want: &Update{ChatID: 42, Text: "/start"},
		},
		{
			name: "callback query",
			body: `{"update_id":2,"callback_query":{"id":"cb-9","data":"duration:30","message":{"chat":{"id":42}}}}`,
			want: &Update{ChatID: 42, IsCallback: true, CallbackQueryID: "cb-9", CallbackData: "duration:30"},
		},
		{
			name: "callback without original message is dropped",
			body: `{"callback_query":{"id":"cb-9","data":"duration:30"}}`,
			want: nil,
		},
		{
			name: "edited message is dropped",
			body: `{"update_id":3,"edited_message":{"chat":{"id":42},"text":"typo"}}`,
			want: nil,
		},
		{
			name: "empty update is dropped",
			body: `{"update_id":4}`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := client.ParseUpdate([]byte(tt.body))

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUpdateRejectsInvalidJSON(t *testing.T) {
	client := NewClient("test-token")

	got, err := client.ParseUpdate([]byte(`{"message":`))

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestSendMessageWithKeyboardLaysOutOneButtonPerRow(t *testing.T) {
	var captured struct {
		ChatID      int64  `json:"chat_id"`
		Text        string `json:"text"`
		ReplyMarkup *struct {
			InlineKeyboard [][]struct {
				Text         string `json:"text"`
				CallbackData string `json:"callback_data"`
			} `json:"inline_keyboard"`
		} `json:"reply_markup"`
	}
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.SendMessageWithKeyboard(context.Background(), 42, "Выберите:", []Button{
		{Label: "5 минут", Data: "duration:5"},
		{Label: "30 минут", Data: "duration:30"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/bottest-token/sendMessage", path)
	assert.Equal(t, int64(42), captured.ChatID)
	assert.Equal(t, "Выберите:", captured.Text)
	require.NotNil(t, captured.ReplyMarkup)
	require.Len(t, captured.ReplyMarkup.InlineKeyboard, 2)
	require.Len(t, captured.ReplyMarkup.InlineKeyboard[0], 1)
	assert.Equal(t, "5 минут", captured.ReplyMarkup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "duration:5", captured.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "duration:30", captured.ReplyMarkup.InlineKeyboard[1][0].CallbackData)
}

func TestSendMessageOmitsKeyboard(t *testing.T) {
	var rawBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rawBody))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("test-token", srv.URL)
	err := client.SendMessage(context.Background(), 42, "Работаем.")

	require.NoError(t, err)
	assert.NotContains(t, rawBody, "reply_markup")
}

func TestCallSurfacesAPIErrors(t *testing.T) {
	t.Run("api-level failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
		}))
		defer srv.Close()

		client := NewClientWithBaseURL("test-token", srv.URL)
		err := client.SendMessage(context.Background(), 42, "hi")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "chat not found")
	})

	t.Run("http-level failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		client := NewClientWithBaseURL("test-token", srv.URL)
		err := client.AnswerCallbackQuery(context.Background(), "cb-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})
}
