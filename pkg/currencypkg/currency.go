// Package currencypkg provides common currency related functionality for apps.
package currencypkg

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"
)

// IsISOCode reports whether code is a well formed ISO 4217 currency code.
func IsISOCode(code string) bool {
	if len(code) != 3 {
		return false
	}

	_, err := currency.ParseISO(strings.ToUpper(code))

	return err == nil
}

// ValidCurrency validates whether the field holds an ISO 4217 currency code.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if c, ok := fl.Field().Interface().(string); ok {
		return IsISOCode(c)
	}

	return false
}
