package routes

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"nfckart.link/configs/configsapp"
	"nfckart.link/configs/configslog"
	public_handlers "nfckart.link/handlers/public"
	"nfckart.link/handlers/response"
	"nfckart.link/middlewares"
	"nfckart.link/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	bodyLimit  = 8 * 1024 * 1024 // base64 fotoğraf içeren kart gövdeleri için
	healthWait = 2 * time.Second
)

// NewApp şablon motoru ve ortak hata işleyicisi kurulmuş bir Fiber uygulaması döndürür.
func NewApp(cfg *configsapp.AppConfig) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	engine.Reload(cfg.IsDevelopment())

	return fiber.New(fiber.Config{
		AppName:      "nfckart",
		Views:        engine,
		BodyLimit:    bodyLimit,
		ErrorHandler: errorHandler,
	})
}

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configsapp.AppConfig) {
	// --- Genel Middleware'ler ---
	app.Use(requestid.New())
	app.Use(middlewares.RequestLogger())
	app.Use(recoverMiddleware.New(recoverMiddleware.Config{EnableStackTrace: cfg.IsDevelopment()}))

	// --- Sistem ---
	app.Get("/healthz", healthHandler(db))
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// --- Rota Grupları ---
	registerAdminRoutes(app, db, cfg) // /api/admin, /api altındaki genel rotalardan önce
	registerAPIRoutes(app, db, cfg)
	registerPublicRoutes(app, db)

	// --- 404 Handler ---
	app.Use(notFoundHandler)
}

func healthHandler(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), healthWait)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			configslog.Log.Error("Sağlık kontrolü: veritabanına ulaşılamıyor", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}

func isAPIRequest(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Path(), "/api/")
}

// notFoundHandler eşleşmeyen tüm rotaları yakalar.
func notFoundHandler(c *fiber.Ctx) error {
	if isAPIRequest(c) {
		return response.NotFound(c, "Kaynak bulunamadı")
	}
	return public_handlers.RenderNotFound(c, "Aradığınız sayfa bulunamadı.")
}

// errorHandler handler'lardan dönen hataları (fiber.Error, recover'dan gelen panikler)
// ortak JSON hata biçimine çevirir.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	switch {
	case code == fiber.StatusNotFound:
		if isAPIRequest(c) {
			return response.NotFound(c, fe.Message)
		}
		return public_handlers.RenderNotFound(c, "Aradığınız sayfa bulunamadı.")
	case code == fiber.StatusUnauthorized:
		return response.Unauthorized(c)
	case code >= fiber.StatusBadRequest && code < fiber.StatusInternalServerError:
		return c.Status(code).JSON(response.ErrorBody{Error: response.CodeValidation, Message: fe.Message})
	default:
		return response.ServerError(c, err)
	}
}
