package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// StructValidator plugs go-playground/validator into echo.Validator and
// translates tag failures into this package's sentinel errors.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("shortcode", func(fl validator.FieldLevel) bool {
		return IsValidAlias(fl.Field().String())
	})
	_ = v.RegisterValidation("notreserved", func(fl validator.FieldLevel) bool {
		return !IsReservedAlias(fl.Field().String())
	})

	return &StructValidator{validate: v}
}

func (v *StructValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].Tag() {
	case "required":
		return ErrMissingField
	case "notreserved":
		return ErrReservedAlias
	default:
		return ErrInvalidAlias
	}
}
