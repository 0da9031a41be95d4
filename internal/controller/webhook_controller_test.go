package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"pomodoro-bot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	webhookBodies []string
	timerChatIDs  []int64
}

func (f *fakeDispatcher) HandleWebhook(_ context.Context, body []byte) {
	f.webhookBodies = append(f.webhookBodies, string(body))
}

func (f *fakeDispatcher) HandleTimerDone(_ context.Context, chatID int64) {
	f.timerChatIDs = append(f.timerChatIDs, chatID)
}

func newTestApp(secret string) (*fiber.App, *fakeDispatcher) {
	dispatcher := &fakeDispatcher{}
	app := fiber.New()
	NewWebhookController(dispatcher, secret, logger.NopLogger{}).RegisterRoutes(app.Group("/api"))
	return app, dispatcher
}

func postWebhook(t *testing.T, app *fiber.App, body string, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/bot/v1/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestWebhookForwardsTelegramUpdates(t *testing.T) {
	app, dispatcher := newTestApp("")
	body := `{"update_id":1,"message":{"chat":{"id":42},"text":"/start"}}`

	status, ack := postWebhook(t, app, body, nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"ok": true}, ack)
	assert.Equal(t, []string{body}, dispatcher.webhookBodies)
	assert.Empty(t, dispatcher.timerChatIDs)
}

func TestWebhookRecognizesTimerCallbacks(t *testing.T) {
	app, dispatcher := newTestApp("")

	status, ack := postWebhook(t, app, `{"action":"TIMER_DONE","chatId":42}`, nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"ok": true}, ack)
	assert.Equal(t, []int64{42}, dispatcher.timerChatIDs)
	assert.Empty(t, dispatcher.webhookBodies, "timer callbacks must not reach the telegram path")
}

func TestWebhookTimerCallbackWithoutChatIDFallsThrough(t *testing.T) {
	app, dispatcher := newTestApp("")
	body := `{"action":"TIMER_DONE"}`

	status, _ := postWebhook(t, app, body, nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, dispatcher.timerChatIDs)
	assert.Equal(t, []string{body}, dispatcher.webhookBodies)
}

func TestWebhookSecretToken(t *testing.T) {
	t.Run("matching secret is accepted", func(t *testing.T) {
		app, dispatcher := newTestApp("s3cret")

		status, _ := postWebhook(t, app, `{"update_id":1}`, map[string]string{
			"X-Telegram-Bot-Api-Secret-Token": "s3cret",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, dispatcher.webhookBodies, 1)
	})

	t.Run("missing secret is dropped but still acknowledged", func(t *testing.T) {
		app, dispatcher := newTestApp("s3cret")

		status, ack := postWebhook(t, app, `{"update_id":1}`, nil)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, map[string]interface{}{"ok": true}, ack)
		assert.Empty(t, dispatcher.webhookBodies)
		assert.Empty(t, dispatcher.timerChatIDs)
	})

	t.Run("wrong secret is dropped", func(t *testing.T) {
		app, dispatcher := newTestApp("s3cret")

		status, _ := postWebhook(t, app, `{"update_id":1}`, map[string]string{
			"X-Telegram-Bot-Api-Secret-Token": "guess",
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Empty(t, dispatcher.webhookBodies)
	})

	t.Run("empty configured secret disables the check", func(t *testing.T) {
		app, dispatcher := newTestApp("")

		status, _ := postWebhook(t, app, `{"update_id":1}`, nil)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, dispatcher.webhookBodies, 1)
	})
}

func TestWebhookMalformedBodyStillForwarded(t *testing.T) {
	// Body-level validation is the dispatcher's job; the transport only acks.
	app, dispatcher := newTestApp("")
	body := `{"message":`

	status, ack := postWebhook(t, app, body, nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"ok": true}, ack)
	assert.Equal(t, []string{body}, dispatcher.webhookBodies)
}
