package client

import (
	"context"
	"net/http"

	"github.com/rapidwire/go-rapidwire/pkg/ratelimit"
	"github.com/rapidwire/go-rapidwire/types"
)

type transferRequest struct {
	RecipientID int64  `json:"recipient_id"`
	AssetSymbol string `json:"asset_symbol"`
	Amount      int64  `json:"amount"`
}

// TransferCurrency sends a raw amount of a currency to another user.
func (c *Client) TransferCurrency(ctx context.Context, recipientID int64, symbol string, amount int64) (*types.SuccessResponse, error) {
	return c.transfer(ctx, EndpointTransferCurrency, recipientID, symbol, amount)
}

// TransferStock sends shares of a stock to another user.
func (c *Client) TransferStock(ctx context.Context, recipientID int64, symbol string, amount int64) (*types.SuccessResponse, error) {
	return c.transfer(ctx, EndpointTransferStock, recipientID, symbol, amount)
}

func (c *Client) transfer(ctx context.Context, endpoint string, recipientID int64, symbol string, amount int64) (*types.SuccessResponse, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if recipientID <= 0 {
		return nil, &ValidationError{Field: "recipientID", Reason: "must be positive"}
	}
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Reason: "must be positive"}
	}
	if err := c.wait(ctx, ratelimit.GroupMarket); err != nil {
		return nil, err
	}
	var out types.SuccessResponse
	opt := &requestOptions{body: transferRequest{
		RecipientID: recipientID,
		AssetSymbol: symbol,
		Amount:      amount,
	}}
	if err := c.http.do(ctx, http.MethodPost, endpoint, opt, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
