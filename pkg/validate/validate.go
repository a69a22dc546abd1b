package validate

import (
	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewCustomValidator returns an echo.Validator backed by go-playground/validator.
// Extra tags can be registered through fns.
func NewCustomValidator(fns ...func(v *validator.Validate) error) *CustomValidator {
	v := validator.New()
	for _, fn := range fns {
		if err := fn(v); err != nil {
			panic(err)
		}
	}
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
