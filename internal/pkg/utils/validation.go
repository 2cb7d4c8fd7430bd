package utils

import (
	"platform-client/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the validate tags on a request DTO and wraps the first
// failure as a precondition error. Runs before any I/O.
func ValidateStruct(request interface{}) error {
	if err := validate.Struct(request); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
