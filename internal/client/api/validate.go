package api

import (
	"sync"

	"satoru/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is returned, wrapped, when input fails validation before any request is sent.
var ErrInvalidInput = errors.New("invalid input")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validateInput(input any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if err := validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return errors.Wrapf(ErrInvalidInput, "%s failed on %q", fieldErrs[0].Field(), fieldErrs[0].Tag())
		}

		return errors.Wrap(ErrInvalidInput, err.Error())
	}

	return nil
}
