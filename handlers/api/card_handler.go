package handlers

import (
	"errors"
	"fmt"

	"nfckart.link/dto"
	"nfckart.link/handlers/response"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
)

// CardHandler herkese açık kartvizit API'si.
type CardHandler struct {
	service services.ICardService
}

// NewCardHandler yeni bir CardHandler örneği oluşturur.
func NewCardHandler(service services.ICardService) *CardHandler {
	return &CardHandler{service: service}
}

// CreateCard POST /api/cards: kartviziti ve siparişini birlikte oluşturur.
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	var req dto.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidBody(c)
	}

	result, err := h.service.CreateCardWithOrder(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"cardId":  result.CardID,
		"slug":    result.Slug,
		"orderId": result.OrderID,
	})
}

// GetCard GET /api/cards/:slug: aktif kartviziti döndürür ve görüntülenme sayısını artırır.
func (h *CardHandler) GetCard(c *fiber.Ctx) error {
	card, err := h.service.GetPublicCard(c.UserContext(), c.Params("slug"))
	if err != nil {
		return response.FromError(c, err)
	}
	card.Orders = nil // Müşteri bilgileri herkese açık değildir
	return c.JSON(card)
}

// GetVCard GET /api/vcard/:cardId: kartviziti .vcf eki olarak indirir.
func (h *CardHandler) GetVCard(c *fiber.Ctx) error {
	card, err := h.service.GetCardForVCard(c.UserContext(), c.Params("cardId"))
	if err != nil {
		if errors.Is(err, services.ErrCardNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.ServerError(c, err)
	}

	body, err := services.BuildVCard(card)
	if err != nil {
		return response.ServerError(c, err)
	}

	c.Set(fiber.HeaderContentType, services.VCardContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, services.VCardFilename(card)))
	return c.Send(body)
}
