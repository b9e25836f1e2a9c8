package routes

import (
	public_handlers "nfckart.link/handlers/public"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// registerPublicRoutes NFC kartın yönlendirdiği HTML kartvizit sayfasını tanımlar.
func registerPublicRoutes(app *fiber.App, db *gorm.DB) {
	pageHandler := public_handlers.NewCardPageHandler(services.NewCardService(db))

	app.Get("/c/:slug", pageHandler.ShowCard) // GET /c/{slug}
}
