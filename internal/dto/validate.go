package dto

import (
	"github.com/ahmetcoskunkizilkaya/characters-backend/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate runs struct-tag validation and converts failures into the
// Validation error kind.
func Validate(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return apperrors.Wrap(apperrors.Validation, "invalid request payload", err)
	}
	return nil
}
