package common

import (
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Strong password rule: at least 8 characters with an upper-case
	// letter, a lower-case letter, a digit and a symbol.
	validate.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if len(password) < 8 {
			return false
		}
		var upper, lower, digit, symbol bool
		for _, r := range password {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			default:
				symbol = true
			}
		}
		return upper && lower && digit && symbol
	})
}

// ValidateStruct runs the struct-tag validation rules on a request
// value and returns the combined validation errors, if any.
func ValidateStruct(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return validationErrors
		}
		return err
	}
	return nil
}
