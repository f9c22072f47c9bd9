package middleware

import (
	"github.com/fieldmap/backend/internal/domain/mapping"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator registers custom validations on gin's binding engine.
// Must be called once during startup before routes are served.
func SetupValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fieldtype", validFieldType)
	}
}

// validFieldType accepts only the known schema field types
func validFieldType(fl validator.FieldLevel) bool {
	return mapping.IsValidFieldType(fl.Field().String())
}
