package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackRequest annotates the request with the client IP and device info and
// logs them. The values live in the request locals; nothing is stashed in
// package-level state.
func TrackRequest(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := clientIP(c)
		device := c.Get("User-Agent")

		c.Locals("client_ip", ip)
		c.Locals("device_info", device)

		log.Info("request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", ip),
			zap.String("device", device),
		)

		return c.Next()
	}
}

// clientIP prefers the first hop of X-Forwarded-For, falling back to the
// connection's remote address.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	return c.IP()
}
