package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rapidwire/go-rapidwire/pkg/ratelimit"
	"github.com/rapidwire/go-rapidwire/types"
)

// GetBalance returns the authenticated user's currency and stock holdings as
// a point-in-time snapshot. Symbol groupings are passed through exactly as
// the server sent them.
func (c *Client) GetBalance(ctx context.Context) (*types.Balance, error) {
	if err := c.wait(ctx, ratelimit.GroupAccount); err != nil {
		return nil, err
	}
	var out types.Balance
	if err := c.http.do(ctx, http.MethodGet, EndpointBalance, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHistory returns one page of the authenticated user's transaction
// history, most recent first. Pages are 1-indexed with a server-defined
// size; a page past the end is an empty slice, not an error.
func (c *Client) GetHistory(ctx context.Context, page int) ([]types.HistoryEntry, error) {
	if page < 1 {
		return nil, &ValidationError{Field: "page", Reason: "must be >= 1"}
	}
	if err := c.wait(ctx, ratelimit.GroupAccount); err != nil {
		return nil, err
	}
	out := []types.HistoryEntry{}
	opt := &requestOptions{params: map[string]string{"page": strconv.Itoa(page)}}
	if err := c.http.do(ctx, http.MethodGet, EndpointHistory, opt, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetStockOrders returns the authenticated user's active sell orders.
func (c *Client) GetStockOrders(ctx context.Context) ([]types.UserOrder, error) {
	if err := c.wait(ctx, ratelimit.GroupAccount); err != nil {
		return nil, err
	}
	out := []types.UserOrder{}
	if err := c.http.do(ctx, http.MethodGet, EndpointStockOrders, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
