package client

import (
	"context"
	"net/http"

	"github.com/rapidwire/go-rapidwire/pkg/ratelimit"
	"github.com/rapidwire/go-rapidwire/types"
)

// GetOrderbook returns the current sell-order book of a stock.
func (c *Client) GetOrderbook(ctx context.Context, symbol string) (*types.Orderbook, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.Orderbook
	if err := c.http.do(ctx, http.MethodGet, endpointOrderbook(symbol), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type sellOrderRequest struct {
	StockSymbol string `json:"stock_symbol"`
	Price       int64  `json:"price"`
	Amount      int64  `json:"amount"`
}

// CreateSellOrder places a new sell order for a stock. Price is a raw
// currency amount per share.
func (c *Client) CreateSellOrder(ctx context.Context, symbol string, price, amount int64) (*types.SuccessResponse, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if price <= 0 {
		return nil, &ValidationError{Field: "price", Reason: "must be positive"}
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.SuccessResponse
	opt := &requestOptions{body: sellOrderRequest{StockSymbol: symbol, Price: price, Amount: amount}}
	if err := c.http.do(ctx, http.MethodPost, EndpointSellOrder, opt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type marketBuyRequest struct {
	StockSymbol string `json:"stock_symbol"`
	Amount      int64  `json:"amount"`
}

// MarketBuyStock buys shares at the best available sell-order prices.
func (c *Client) MarketBuyStock(ctx context.Context, symbol string, amount int64) (*types.SuccessResponse, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.SuccessResponse
	opt := &requestOptions{body: marketBuyRequest{StockSymbol: symbol, Amount: amount}}
	if err := c.http.do(ctx, http.MethodPost, EndpointMarketBuy, opt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelSellOrder cancels one of the user's active sell orders.
func (c *Client) CancelSellOrder(ctx context.Context, orderID int64) (*types.SuccessResponse, error) {
	if orderID <= 0 {
		return nil, &ValidationError{Field: "orderID", Reason: "must be positive"}
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.SuccessResponse
	if err := c.http.do(ctx, http.MethodDelete, endpointCancelOrder(orderID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLiquidityInfo returns the liquidity pool state of a currency.
func (c *Client) GetLiquidityInfo(ctx context.Context, symbol string) (*types.LiquidityInfo, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.LiquidityInfo
	if err := c.http.do(ctx, http.MethodGet, EndpointLiquidity+symbol, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type swapRequest struct {
	CurrencySymbol string `json:"currency_symbol"`
	Amount         int64  `json:"amount"`
}

// BuyCurrency swaps a raw amount of the base currency into the given
// currency through its liquidity pool.
func (c *Client) BuyCurrency(ctx context.Context, symbol string, amountIn int64) (*types.SuccessResponse, error) {
	return c.swap(ctx, EndpointBuyCurrency, symbol, amountIn)
}

// SellCurrency swaps a raw amount of the given currency back into the base
// currency through its liquidity pool.
func (c *Client) SellCurrency(ctx context.Context, symbol string, amountIn int64) (*types.SuccessResponse, error) {
	return c.swap(ctx, EndpointSellCurrency, symbol, amountIn)
}

func (c *Client) swap(ctx context.Context, endpoint, symbol string, amountIn int64) (*types.SuccessResponse, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if amountIn <= 0 {
		return nil, &ValidationError{Field: "amountIn", Reason: "must be positive"}
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.SuccessResponse
	opt := &requestOptions{body: swapRequest{CurrencySymbol: symbol, Amount: amountIn}}
	if err := c.http.do(ctx, http.MethodPost, endpoint, opt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
