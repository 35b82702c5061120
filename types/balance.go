package types

import "github.com/shopspring/decimal"

// Balance is a snapshot of the authenticated user's holdings at fetch time.
// Currency values are raw integer amounts (see DisplayAmount); stock values
// are share counts. The maps are owned by the caller once returned and the
// symbol groupings are exactly what the server sent.
type Balance struct {
	Currencies map[string]int64 `json:"currencies"`
	Stocks     map[string]int64 `json:"stocks"`
}

// DisplayCurrency returns the display value of one currency holding. Unknown
// symbols display as zero.
func (b *Balance) DisplayCurrency(symbol string, decimalPlaces int32) decimal.Decimal {
	return DisplayAmount(b.Currencies[symbol], decimalPlaces)
}
