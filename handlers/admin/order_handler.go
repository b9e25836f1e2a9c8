package handlers

import (
	"nfckart.link/configs/configslog"
	"nfckart.link/dto"
	"nfckart.link/handlers/response"
	"nfckart.link/pkg/queryparams"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminOrderHandler yönetim panelindeki sipariş işlemleri.
type AdminOrderHandler struct {
	service services.IOrderService
}

func NewAdminOrderHandler(service services.IOrderService) *AdminOrderHandler {
	return &AdminOrderHandler{service: service}
}

// ListOrders GET /api/admin/orders?page=&perPage=&status=&name=&sortBy=&orderBy=
func (h *AdminOrderHandler) ListOrders(c *fiber.Ctx) error {
	params := queryparams.DefaultListParams()
	if err := c.QueryParser(&params); err != nil {
		configslog.Log.Warn("Admin ListOrders: Query parse error", zap.Error(err))
		params = queryparams.DefaultListParams()
	}

	result, err := h.service.ListOrders(c.UserContext(), params)
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(result)
}

// GetOrder GET /api/admin/orders/:orderId (onaylar dahil).
func (h *AdminOrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.service.GetOrder(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// UpdateOrderStatus PATCH /api/admin/orders/:orderId
func (h *AdminOrderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
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

// ListConsents GET /api/admin/orders/:orderId/consents
func (h *AdminOrderHandler) ListConsents(c *fiber.Ctx) error {
	consents, err := h.service.ListConsents(c.UserContext(), c.Params("orderId"))
	if err != nil {
		return response.FromError(c, err)
	}
	return c.JSON(fiber.Map{"data": consents})
}
