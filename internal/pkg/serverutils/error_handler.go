package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts anything escaping a handler into the
// success acknowledgement. The chat transport redelivers the update on any
// non-success reply, and replaying events against the session state machine
// is unsafe, so the webhook must always be acknowledged.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err != nil {
			log.Printf("[ERROR] Unhandled error on %s: %v", ctx.Path(), err)
			return ctx.Status(fiber.StatusOK).JSON(Ack())
		}
		return nil
	}
}
