package handlers

import (
	"errors"
	"time"

	"nfckart.link/dto"
	"nfckart.link/handlers/response"
	"nfckart.link/middlewares"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
)

// AdminAuthHandler yönetici giriş/çıkış ve parola işlemleri.
type AdminAuthHandler struct {
	service      services.IAdminService
	cookieSecure bool
}

// NewAdminAuthHandler yeni bir AdminAuthHandler örneği oluşturur.
func NewAdminAuthHandler(service services.IAdminService, cookieSecure bool) *AdminAuthHandler {
	return &AdminAuthHandler{service: service, cookieSecure: cookieSecure}
}

// Login POST /api/admin/login: başarılı girişte HTTP-only oturum çerezi yazar.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidBody(c)
	}

	res, err := h.service.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return response.FromError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminSessionCookie,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{
		"success":   true,
		"username":  res.Admin.Username,
		"expiresAt": res.ExpiresAt,
	})
}

// Logout POST /api/admin/logout: oturum çerezini siler.
func (h *AdminAuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middlewares.AdminSessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(fiber.Map{"success": true})
}

// Me GET /api/admin/me: oturumdaki yönetici.
func (h *AdminAuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"id":       c.Locals(middlewares.LocalsAdminID),
		"username": c.Locals(middlewares.LocalsAdminName),
	})
}

// ChangePassword POST /api/admin/change-password (oturum çerezi gerekir).
func (h *AdminAuthHandler) ChangePassword(c *fiber.Ctx) error {
	adminID, _ := c.Locals(middlewares.LocalsAdminID).(string)
	if adminID == "" {
		return response.Unauthorized(c)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidBody(c)
	}

	err := h.service.ChangePassword(c.UserContext(), adminID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		// Oturum geçerli; burada hatalı olan sadece formdaki mevcut parola
		if errors.Is(err, services.ErrInvalidCredentials) {
			return response.Validation(c, "currentPassword", "Mevcut parola hatalı")
		}
		return response.FromError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
