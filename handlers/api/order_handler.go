package handlers

import (
	"nfckart.link/dto"
	"nfckart.link/handlers/response"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
)

// OrderHandler sipariş takip ve durum API'si.
type OrderHandler struct {
	service services.IOrderService
}

// NewOrderHandler yeni bir OrderHandler örneği oluşturur.
func NewOrderHandler(service services.IOrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// GetOrder GET /api/orders/:orderId: sipariş, kartı ve ilerleme adımı.
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return response.FromError(c, err)
	}
	order.Consents = nil // IP/UA bilgisi sadece yönetim panelinde
	return c.JSON(dto.NewOrderResponse(order))
}

// UpdateOrderStatus PATCH /api/orders/:orderId (x-admin-key ile korunur).
func (h *OrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidBody(c)
	}

	order, err := h.service.UpdateOrderStatus(c.UserContext(), c.Params("orderId"), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// RecordConsents POST /api/orders/:orderId/consents: yasal metin onaylarını ekler.
func (h *OrderHandler) RecordConsents(c *fiber.Ctx) error {
	var req dto.RecordConsentsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.InvalidBody(c)
	}

	consents, err := h.service.RecordConsents(c.UserContext(), c.Params("orderId"), req, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"consents": consents,
	})
}
