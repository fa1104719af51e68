package validator

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Param       string
}

var validate = validator.New()

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\- ]{6,18}[0-9]$`)

func init() {
	// Loose international phone format, matching what clients actually send
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})

	// Password complexity: lower + upper + digit + special
	validate.RegisterValidation("complexity", func(fl validator.FieldLevel) bool {
		var lower, upper, digit, special bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				special = true
			}
		}
		return lower && upper && digit && special
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Param = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}
