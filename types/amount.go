package types

import "github.com/shopspring/decimal"

// DisplayAmount converts a raw integer currency amount into its
// human-readable value by shifting it decimalPlaces digits to the right.
// Raw amounts are never mutated; this is purely a presentation conversion.
func DisplayAmount(raw int64, decimalPlaces int32) decimal.Decimal {
	return decimal.New(raw, -decimalPlaces)
}

// RawAmount is the inverse of DisplayAmount. It round-trips exactly for any
// value produced by DisplayAmount with the same decimalPlaces.
func RawAmount(display decimal.Decimal, decimalPlaces int32) int64 {
	return display.Shift(decimalPlaces).Round(0).IntPart()
}
