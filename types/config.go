package types

// CurrencyInfo is the public record of a currency.
type CurrencyInfo struct {
	ID          int64   `json:"id"`
	Symbol      string  `json:"symbol"`
	Name        string  `json:"name"`
	Supply      int64   `json:"supply"`
	IssuerID    *int64  `json:"issuer_id"`
	Description *string `json:"description"`
}

// StockInfo is the public record of a stock.
type StockInfo struct {
	ID       int64   `json:"id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Supply   int64   `json:"supply"`
	IssuerID *int64  `json:"issuer_id"`
	Industry *string `json:"industry"`
	Overview *string `json:"overview"`
}

// Config is the server-side configuration. DecimalPlaces is the scale factor
// applied to every raw currency amount for display (see DisplayAmount).
type Config struct {
	DecimalPlaces int32        `json:"decimal_places"`
	BaseCurrency  CurrencyInfo `json:"base_currency"`
}
