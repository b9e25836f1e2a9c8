package middlewares

import (
	"crypto/subtle"

	"nfckart.link/configs/configslog"
	"nfckart.link/handlers/response"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// AdminKeyHeader sipariş durumu API'si için paylaşılan gizli anahtar başlığı.
	AdminKeyHeader = "x-admin-key"
	// AdminSessionCookie yönetici oturum çerezinin adı.
	AdminSessionCookie = "admin_session"

	LocalsAdminID   = "adminID"
	LocalsAdminName = "adminName"
)

// AdminKeyMiddleware x-admin-key başlığını yapılandırılmış anahtarla sabit zamanlı karşılaştırır.
// Anahtar yapılandırılmamışsa tüm istekler reddedilir.
func AdminKeyMiddleware(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		provided := c.Get(AdminKeyHeader)
		if expected == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			configslog.Log.Warn("Geçersiz yönetici anahtarı",
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			return response.Unauthorized(c)
		}
		return c.Next()
	}
}

// AdminSessionMiddleware admin_session çerezindeki oturumu doğrular ve yönetici bilgisini
// Locals'a yazar.
func AdminSessionMiddleware(adminService services.IAdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := adminService.ParseToken(c.Cookies(AdminSessionCookie))
		if err != nil {
			return response.Unauthorized(c)
		}
		c.Locals(LocalsAdminID, claims.Subject)
		c.Locals(LocalsAdminName, claims.Name)
		return c.Next()
	}
}
