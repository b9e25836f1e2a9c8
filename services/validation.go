package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError istemci kaynaklı, alan bazlı doğrulama hatası (HTTP 400).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError yeni bir alan hatası oluşturur.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Hata mesajlarında Go alan adı yerine JSON adı görünsün
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct ilk doğrulama hatasını ValidationError olarak döndürür.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return NewValidationError(fe.Field(), validationMessage(fe))
	}
	return err
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s alanı zorunludur", fe.Field())
	case "min":
		return fmt.Sprintf("%s en az %s olmalıdır", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s en fazla %s olabilir", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s şu değerlerden biri olmalıdır: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s geçersiz", fe.Field())
	}
}
