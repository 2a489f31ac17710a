// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"boxtrack/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports JSON field names and knows the shipment enums.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}

		return fld.Name
	})

	_ = validate.RegisterValidation("shipment_status", func(fl validator.FieldLevel) bool {
		return entity.ShipmentStatus(strings.ToUpper(fl.Field().String())).IsValid()
	})
	_ = validate.RegisterValidation("priority", func(fl validator.FieldLevel) bool {
		return entity.Priority(strings.ToUpper(fl.Field().String())).IsValid()
	})

	return &CustomValidator{validate: validate}
}

// Validate runs the struct tags of i.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Fields flattens a validation failure into per-field details. It returns nil for any other error.
func Fields(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, FieldError{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return fields
}
