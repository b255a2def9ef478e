// Package validator wraps go-playground/validator with the request-DTO
// rules used by the service layer.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse describes a single failed validation rule on a struct field.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// `required` treats uuid.Nil as present, so UUID fields get their own rule.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

// ValidateStruct checks the struct's validate tags and returns one entry per
// failed field, empty when everything passes.
func ValidateStruct(data interface{}) []ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var out []ErrorResponse
	for _, fieldErr := range err.(validator.ValidationErrors) {
		out = append(out, ErrorResponse{
			FailedField: fieldErr.StructNamespace(),
			Tag:         fieldErr.Tag(),
			Value:       fieldErr.Param(),
		})
	}
	return out
}
