package client

import "fmt"

// API endpoint constants.
const (
	// Server info
	EndpointVersion = "/version"
	EndpointConfig  = "/config"

	// Account endpoints
	EndpointBalance     = "/account/balance"
	EndpointHistory     = "/account/history"
	EndpointStockOrders = "/account/stock/orders"

	// Public info endpoints
	EndpointCurrencyInfo = "/currency/"
	EndpointStockInfo    = "/stock/"

	// Transfer endpoints
	EndpointTransferCurrency = "/currency/transfer"
	EndpointTransferStock    = "/stock/transfer"

	// Trading endpoints
	EndpointSellOrder    = "/market/stock/sell-order"
	EndpointMarketBuy    = "/market/stock/market-buy"
	EndpointLiquidity    = "/market/currency/liquidity/"
	EndpointBuyCurrency  = "/market/currency/buy"
	EndpointSellCurrency = "/market/currency/sell"
)

// endpointOrderbook builds the per-stock orderbook path.
func endpointOrderbook(symbol string) string {
	return fmt.Sprintf("/stock/%s/orderbook", symbol)
}

// endpointCancelOrder builds the per-order cancellation path.
func endpointCancelOrder(orderID int64) string {
	return fmt.Sprintf("%s/%d", EndpointSellOrder, orderID)
}
