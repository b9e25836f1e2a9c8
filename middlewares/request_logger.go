package middlewares

import (
	"time"

	"nfckart.link/configs/configslog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger her isteği zap ile loglar. Handler hata döndürürse önce uygulamanın
// ErrorHandler'ı çalıştırılır ki loglanan durum kodu istemcinin gördüğüyle aynı olsun.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if hErr := c.App().Config().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.Any("request_id", c.Locals("requestid")),
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			configslog.Log.Error("HTTP isteği", fields...)
		case status >= fiber.StatusBadRequest:
			configslog.Log.Warn("HTTP isteği", fields...)
		default:
			configslog.Log.Info("HTTP isteği", fields...)
		}
		return nil
	}
}
