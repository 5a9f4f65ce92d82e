package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/money_archetype/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

// isoCurrencyInput is the argument set of Create.
type isoCurrencyInput struct {
	Currency string `json:"currency" validate:"currency"`
}

// numericCurrencyInput is the argument set of CreateFromNumeric.
type numericCurrencyInput struct {
	Currency int `json:"currency" validate:"currency_numeric"`
}

var inputValidator = newInputValidator()

// newInputValidator registers the registry-backed "currency" and
// "currency_numeric" tags. Field errors are named after the json tag.
func newInputValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return IsValidISOCode(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register currency validation: %v", err))
	}
	if err := v.RegisterValidation("currency_numeric", func(fl validator.FieldLevel) bool {
		return IsValidNumericCode(int(fl.Field().Int()))
	}); err != nil {
		panic(fmt.Sprintf("register currency_numeric validation: %v", err))
	}
	return v
}

// validateInput checks a tagged input struct and reports the first failing
// field as an *apperrors.ArgumentError.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperrors.NewArgumentError(fieldErrs[0].Field(), fieldErrs[0].Value())
	}
	return fmt.Errorf("validate %T: %w", input, err)
}
