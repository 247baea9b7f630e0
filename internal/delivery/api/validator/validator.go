// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates bound request bodies by their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New reports fields by their json names.
func New() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed listing one "<field> <tag>" entry per
// failing field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg := fe.Field() + " " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		messages = append(messages, msg)
	}

	return domainerrors.NewValidationError(messages)
}
