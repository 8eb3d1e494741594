package currencypkg

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestIsISOCode(t *testing.T) {
	for _, code := range []string{"USD", "eur", "JPY", "GBP", "XTS"} {
		require.True(t, IsISOCode(code), code)
	}

	for _, code := range []string{"", "US", "USDT", "ZZZ", "12$"} {
		require.False(t, IsISOCode(code), code)
	}
}

func TestValidCurrency(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("currency", ValidCurrency))

	type request struct {
		Code string `validate:"currency"`
	}

	require.NoError(t, v.Struct(request{Code: "EUR"}))
	require.Error(t, v.Struct(request{Code: "RUBX"}))
}
