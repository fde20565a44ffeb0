// Package validator adapts go-playground validation to Echo's Validator interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by the Echo server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Handlers decide how a failure maps
// onto the response envelope.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
