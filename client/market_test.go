package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderbook(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the client must upper-case the symbol before building the path
		assert.Equal(t, "/stock/AAPL/orderbook", r.URL.Path)
		w.Write([]byte(`{"stock_symbol": "AAPL", "orders": [{"price": 12050, "amount": 10}, {"price": 12100, "amount": 4}]}`))
	}))

	book, err := c.GetOrderbook(context.Background(), "aapl")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", book.StockSymbol)
	require.Len(t, book.Orders, 2)
	assert.Equal(t, int64(12050), book.Orders[0].Price)
	assert.Equal(t, int64(10), book.Orders[0].Amount)
}

func TestCreateSellOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, EndpointSellOrder, r.URL.Path)

		var body sellOrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, sellOrderRequest{StockSymbol: "AAPL", Price: 12050, Amount: 5}, body)

		w.Write([]byte(`{"message": "order created", "details": {"order_id": 42}}`))
	}))

	resp, err := c.CreateSellOrder(context.Background(), "aapl", 12050, 5)
	require.NoError(t, err)
	assert.Equal(t, "order created", resp.Message)
}

func TestCancelSellOrder(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/market/stock/sell-order/42", r.URL.Path)
		w.Write([]byte(`{"message": "order cancelled"}`))
	}))

	resp, err := c.CancelSellOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "order cancelled", resp.Message)
}

func TestMarketValidation(t *testing.T) {
	// handler must never be reached
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid input reached the server")
	}))
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"empty orderbook symbol", func() error { _, err := c.GetOrderbook(ctx, "  "); return err }},
		{"zero price", func() error { _, err := c.CreateSellOrder(ctx, "AAPL", 0, 5); return err }},
		{"negative amount", func() error { _, err := c.MarketBuyStock(ctx, "AAPL", -1); return err }},
		{"zero order id", func() error { _, err := c.CancelSellOrder(ctx, 0); return err }},
		{"zero swap amount", func() error { _, err := c.BuyCurrency(ctx, "EUR", 0); return err }},
		{"empty swap symbol", func() error { _, err := c.SellCurrency(ctx, "", 100); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var vErr *ValidationError
			if !errors.As(tt.call(), &vErr) {
				t.Errorf("expected *ValidationError, got %v", tt.call())
			}
		})
	}
}

func TestBuyCurrency(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointBuyCurrency, r.URL.Path)

		var body swapRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, swapRequest{CurrencySymbol: "EUR", Amount: 5000}, body)

		w.Write([]byte(`{"message": "swap executed", "details": {"amount_out": 4810}}`))
	}))

	resp, err := c.BuyCurrency(context.Background(), "eur", 5000)
	require.NoError(t, err)
	assert.Equal(t, "swap executed", resp.Message)
}

func TestGetLiquidityInfo(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointLiquidity+"EUR", r.URL.Path)
		w.Write([]byte(`{"currency_symbol": "EUR", "base_liquidity": 1000000, "pair_liquidity": 900000, "total_lp_points": 5000}`))
	}))

	info, err := c.GetLiquidityInfo(context.Background(), "eur")
	require.NoError(t, err)
	assert.Equal(t, int64(1000000), info.BaseLiquidity)
	assert.Equal(t, int64(900000), info.PairLiquidity)
}
