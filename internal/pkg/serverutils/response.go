package serverutils

import "github.com/gofiber/fiber/v2"

// Ack is the fixed acknowledgement body every inbound call receives,
// whatever happened internally.
func Ack() fiber.Map {
	return fiber.Map{"ok": true}
}
