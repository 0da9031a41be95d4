package controller

import (
	"encoding/json"

	"pomodoro-bot-be/internal/dto"
	"pomodoro-bot-be/internal/pkg/logger"
	"pomodoro-bot-be/internal/pkg/serverutils"
	"pomodoro-bot-be/internal/service"
	"pomodoro-bot-be/pkg/timer"

	"github.com/gofiber/fiber/v2"
)

const secretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Handle(ctx *fiber.Ctx) error
}

type webhookController struct {
	dispatcher    service.IDispatcherService
	webhookSecret string
	logger        logger.ILogger
}

func NewWebhookController(dispatcher service.IDispatcherService, webhookSecret string, sysLogger logger.ILogger) IWebhookController {
	return &webhookController{
		dispatcher:    dispatcher,
		webhookSecret: webhookSecret,
		logger:        sysLogger,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bot/v1")
	h.Post("webhook", c.Handle)
}

// Handle accepts both inbound shapes on one endpoint: the scheduled-timer
// payload (identified by its fixed action marker) and an opaque Telegram
// update body. It always acknowledges with 200 {"ok":true}.
func (c *webhookController) Handle(ctx *fiber.Ctx) error {
	// Telegram echoes the configured secret back on every delivery.
	if c.webhookSecret != "" && ctx.Get(secretTokenHeader) != c.webhookSecret {
		c.logger.Warn("webhook", "dropped request with bad secret token", nil)
		return ctx.JSON(serverutils.Ack())
	}

	body := ctx.Body()

	var cb dto.TimerCallbackRequest
	if err := json.Unmarshal(body, &cb); err == nil && cb.Action == timer.DoneAction {
		if err := serverutils.ValidateRequest(cb); err == nil {
			c.dispatcher.HandleTimerDone(ctx.Context(), cb.ChatID)
			return ctx.JSON(serverutils.Ack())
		}
	}

	c.dispatcher.HandleWebhook(ctx.Context(), body)
	return ctx.JSON(serverutils.Ack())
}
