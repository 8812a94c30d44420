package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to two decimal places using banker's
// rounding (half to even), matching the billing reference behavior.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return f
}

// Mul multiplies two amounts and rounds the product to two decimal places.
func Mul(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).RoundBank(2).Float64()
	return f
}

// Add sums two amounts and rounds the result to two decimal places.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).RoundBank(2).Float64()
	return f
}

// Sub subtracts b from a and rounds the result to two decimal places.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).RoundBank(2).Float64()
	return f
}

// LineTotal multiplies a unit price by an integer quantity without rounding:
// two-decimal prices times whole quantities stay exact.
func LineTotal(unitPrice float64, quantity int) float64 {
	f, _ := decimal.NewFromFloat(unitPrice).Mul(decimal.NewFromInt(int64(quantity))).Float64()
	return f
}

// Sum adds line totals together without intermediate rounding.
func Sum(values ...float64) float64 {
	acc := decimal.Zero
	for _, v := range values {
		acc = acc.Add(decimal.NewFromFloat(v))
	}
	f, _ := acc.Float64()
	return f
}
