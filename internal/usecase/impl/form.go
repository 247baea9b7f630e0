package impl

import (
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/errors"

	"github.com/go-playground/validator/v10"
)

// formMessages maps a struct field name to its display message.
type formMessages map[string]string

// validateForm runs the struct tags of form and returns the failures as an
// ErrValidationFailed carrying one message per failing field, in field order.
func validateForm(validate *validator.Validate, form any, messages formMessages) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate form")
	}

	result := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.StructField()]
		if !ok {
			msg = fe.Error()
		}
		result = append(result, msg)
	}

	return domainerrors.NewValidationError(result)
}
