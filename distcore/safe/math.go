package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when a denominator is zero.
var ErrDivisionByZero = errors.New("division by zero")

var hundred = decimal.NewFromInt(100)

// Divide returns numerator/denominator, or ErrDivisionByZero when the
// denominator is zero.
func Divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Div(denominator), nil
}

// DivideOrZero returns numerator/denominator, treating a zero denominator as
// a zero result. Catalog rates use this: an empty catalog has a zero rate,
// not an error.
func DivideOrZero(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}

	return numerator.Div(denominator)
}

// Percentage returns (numerator/denominator)*100, or ErrDivisionByZero when
// the denominator is zero.
func Percentage(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	ratio, err := Divide(numerator, denominator)
	if err != nil {
		return decimal.Zero, err
	}

	return ratio.Mul(hundred), nil
}

// PercentageOrZero returns (numerator/denominator)*100, treating a zero
// denominator as a zero result. This is the form catalog summaries use for
// their satisfiable and classified rates.
func PercentageOrZero(numerator, denominator decimal.Decimal) decimal.Decimal {
	return DivideOrZero(numerator, denominator).Mul(hundred)
}
