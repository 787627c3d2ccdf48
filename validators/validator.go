package validators

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator wires go-playground/validator into Echo's c.Validate.
type RequestValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new RequestValidator
func NewValidator() *RequestValidator {
	return &RequestValidator{validator: validator.New()}
}

// Validate checks a bound request struct and reports failures as 400s.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
