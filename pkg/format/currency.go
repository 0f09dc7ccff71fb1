// Package format renders monetary values and dates for operator-facing
// messages and exports (pt-BR conventions).
package format

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// RoundCurrency rounds v half away from zero to two decimal places.
func RoundCurrency(v float64) float64 {
	r, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return r
}

// Cents converts v to integer centavos after rounding.
func Cents(v float64) int64 {
	return decimal.NewFromFloat(v).Round(2).Shift(2).IntPart()
}

// BRL formats v as Brazilian reais, e.g. R$3.800,00.
func BRL(v float64) string {
	return money.New(Cents(v), money.BRL).Display()
}
