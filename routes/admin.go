package routes

import (
	"nfckart.link/configs/configsapp"
	admin_handlers "nfckart.link/handlers/admin"
	"nfckart.link/middlewares"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerAdminRoutes /api/admin altındaki rotaları tanımlar.
// login/logout dışındaki tüm rotalar geçerli admin_session çerezi ister.
func registerAdminRoutes(app *fiber.App, db *gorm.DB, cfg *configsapp.AppConfig) {
	adminService := services.NewAdminService(db, cfg.Admin.JWTSecret, cfg.Admin.SessionTTL)

	authHandler := admin_handlers.NewAdminAuthHandler(adminService, cfg.Admin.CookieSecure)
	orderHandler := admin_handlers.NewAdminOrderHandler(services.NewOrderService(db))
	cardHandler := admin_handlers.NewAdminCardHandler(services.NewCardService(db))

	adminGroup := app.Group("/api/admin")
	adminGroup.Post("/login", authHandler.Login)
	adminGroup.Post("/logout", authHandler.Logout)

	secured := adminGroup.Group("", middlewares.AdminSessionMiddleware(adminService))
	secured.Get("/me", authHandler.Me)
	secured.Post("/change-password", authHandler.ChangePassword)

	// --- Siparişler ---
	secured.Get("/orders", orderHandler.ListOrders)                   // GET /api/admin/orders
	secured.Get("/orders/:orderId", orderHandler.GetOrder)            // GET /api/admin/orders/{id}
	secured.Patch("/orders/:orderId", orderHandler.UpdateOrderStatus) // PATCH /api/admin/orders/{id}
	secured.Get("/orders/:orderId/consents", orderHandler.ListConsents)

	// --- Kartvizitler ---
	secured.Patch("/cards/:cardId", cardHandler.SetCardActive) // PATCH /api/admin/cards/{id}
}
