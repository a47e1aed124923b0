// Package validator wraps go-playground/validator for request struct
// validation.
package validator

import (
	"sync"

	ierr "github.com/clinicore/clinicore/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags and
// converts the first failure into a marked validation error.
func ValidateRequest(req any) error {
	if err := getValidator().Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ierr.WithError(err).
				WithHint("Request validation failed").
				Mark(ierr.ErrValidation)
		}

		details := make(map[string]any, len(validationErrors))
		for _, fe := range validationErrors {
			details[fe.Field()] = fe.Tag()
		}
		return ierr.NewError("request validation failed").
			WithHint("One or more request fields are invalid").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}
