package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "service-hub/pkg/errors"
)

// Validator оборачивает go-playground/validator для echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.NewHttpError(
			http.StatusBadRequest,
			"Ошибка валидации данных запроса",
			err,
			nil,
		)
	}
	return nil
}
