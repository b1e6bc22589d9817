package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ValidAmount reports whether the bound field is a positive exact decimal.
// Binary floats never enter the app; amounts travel as strings end to end.
var ValidAmount validator.Func = func(fieldLevel validator.FieldLevel) bool {
	amount, ok := fieldLevel.Field().Interface().(string)
	if !ok {
		return false
	}

	amountDecimal, err := decimal.NewFromString(amount)
	if err != nil {
		return false
	}

	return amountDecimal.GreaterThan(decimal.Zero)
}
