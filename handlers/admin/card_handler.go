package handlers

import (
	"nfckart.link/dto"
	"nfckart.link/handlers/response"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
)

// AdminCardHandler kartvizit yayın durumunu yönetir.
type AdminCardHandler struct {
	service services.ICardService
}

func NewAdminCardHandler(service services.ICardService) *AdminCardHandler {
	return &AdminCardHandler{service: service}
}

// SetCardActive PATCH /api/admin/cards/:cardId {"isActive": bool}
func (h *AdminCardHandler) SetCardActive(c *fiber.Ctx) error {
	var req dto.SetCardActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidBody(c)
	}
	if req.IsActive == nil {
		return response.Validation(c, "isActive", "isActive alanı zorunludur")
	}

	card, err := h.service.SetCardActive(c.UserContext(), c.Params("cardId"), *req.IsActive)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(card)
}
