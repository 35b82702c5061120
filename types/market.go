package types

// UserOrder is one of the authenticated user's active sell orders.
type UserOrder struct {
	OrderID     int64  `json:"order_id"`
	StockSymbol string `json:"stock_symbol"`
	Price       int64  `json:"price"`
	Amount      int64  `json:"amount"`
	Timestamp   int64  `json:"timestamp"`
}

// OrderbookEntry is one price level of a stock's sell-order book. Price is a
// raw currency amount per share.
type OrderbookEntry struct {
	Price  int64 `json:"price"`
	Amount int64 `json:"amount"`
}

// Orderbook is the current sell-order book of a stock.
type Orderbook struct {
	StockSymbol string           `json:"stock_symbol"`
	Orders      []OrderbookEntry `json:"orders"`
}

// LiquidityInfo describes a currency's liquidity pool against the base
// currency.
type LiquidityInfo struct {
	CurrencySymbol string `json:"currency_symbol"`
	BaseLiquidity  int64  `json:"base_liquidity"`
	PairLiquidity  int64  `json:"pair_liquidity"`
	TotalLPPoints  int64  `json:"total_lp_points"`
}
