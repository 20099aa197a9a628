// Package validator holds the request validators of the API: field presence,
// ranges, dates and text sanitization, plus custom tags for Gin's binding engine.
package validator

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "orbit/internal/errors"

	_ "time/tzdata" // timezone names must resolve without system zoneinfo
)

// validate backs the checks that run outside of Gin binding.
var validate = validator.New()

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso_date", validateISODate)
	}
}

func validateISODate(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

// IsValidTimezone reports whether tz is an IANA time zone name.
func IsValidTimezone(tz string) bool {
	return validate.Var(tz, "required,timezone") == nil
}

// QueryError maps a query binding failure to the error reported to clients.
func QueryError(err error) *apperrors.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		switch verrs[0].Field() {
		case "StartDate":
			return apperrors.ErrInvalidStartDate
		case "EndDate":
			return apperrors.ErrInvalidEndDate
		}
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}
