package routes

import (
	"nfckart.link/configs/configsapp"
	api_handlers "nfckart.link/handlers/api"
	"nfckart.link/middlewares"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAPIRoutes vitrin (storefront) JSON API'sini tanımlar.
func registerAPIRoutes(app *fiber.App, db *gorm.DB, cfg *configsapp.AppConfig) {
	cardHandler := api_handlers.NewCardHandler(services.NewCardService(db))
	orderHandler := api_handlers.NewOrderHandler(services.NewOrderService(db))

	api := app.Group("/api")

	api.Post("/cards", cardHandler.CreateCard)  // POST /api/cards
	api.Get("/cards/:slug", cardHandler.GetCard) // GET /api/cards/{slug}
	api.Get("/vcard/:cardId", cardHandler.GetVCard)

	api.Get("/orders/:orderId", orderHandler.GetOrder)
	api.Post("/orders/:orderId/consents", orderHandler.RecordConsents)
	api.Patch("/orders/:orderId", middlewares.AdminKeyMiddleware(cfg.Admin.APIKey), orderHandler.UpdateOrderStatus) // x-admin-key
}
