// Package response JSON API hata ve başarı yanıtlarının ortak biçimini üretir.
package response

import (
	"errors"

	"nfckart.link/configs/configslog"
	"nfckart.link/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Makine tarafından okunan hata kodları. İstemci bunları yerelleştirilmiş metne çevirir.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeServer       = "SERVER_ERROR"
)

// GenericServerMessage 500 yanıtlarında istemciye gösterilen tek mesaj.
const GenericServerMessage = "Beklenmeyen bir hata oluştu, lütfen daha sonra tekrar deneyin."

// ErrorBody tüm hata yanıtlarının gövdesi.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Field   string `json:"field,omitempty"`
}

func Validation(c *fiber.Ctx, field, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: CodeValidation, Message: message, Field: field})
}

// InvalidBody JSON çözülemediğinde kullanılır.
func InvalidBody(c *fiber.Ctx) error {
	return Validation(c, "body", "İstek gövdesi geçerli bir JSON değil")
}

func Unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(ErrorBody{Error: CodeUnauthorized, Message: "Yetkisiz erişim"})
}

func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorBody{Error: CodeNotFound, Message: message})
}

// ServerError asıl hatayı sadece sunucu tarafında loglar; istemci genel mesaj görür.
func ServerError(c *fiber.Ctx, err error) error {
	configslog.Log.Error("İstek işlenirken beklenmeyen hata",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorBody{Error: CodeServer, Message: GenericServerMessage})
}

// FromError servis hatasını uygun HTTP yanıtına çevirir.
func FromError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return Validation(c, verr.Field, verr.Message)
	case errors.Is(err, services.ErrCardNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrAdminNotFound):
		return NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidSession):
		return Unauthorized(c)
	default:
		return ServerError(c, err)
	}
}
