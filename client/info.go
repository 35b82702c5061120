package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/rapidwire/go-rapidwire/pkg/ratelimit"
	"github.com/rapidwire/go-rapidwire/types"
)

// GetVersion returns the server's version report. The version string lives
// in Details["version"].
func (c *Client) GetVersion(ctx context.Context) (*types.SuccessResponse, error) {
	if err := c.wait(ctx, ratelimit.GroupInfo); err != nil {
		return nil, err
	}
	var out types.SuccessResponse
	if err := c.http.do(ctx, http.MethodGet, EndpointVersion, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetConfig returns the server configuration. The first call fetches it from
// the server; later calls are served from an in-memory cache for the
// lifetime of the client, or for the WithConfigTTL window when one was set.
func (c *Client) GetConfig(ctx context.Context) (*types.Config, error) {
	if v, ok := c.cache.Get(cacheKeyConfig); ok {
		return v.(*types.Config), nil
	}
	if err := c.wait(ctx, ratelimit.GroupInfo); err != nil {
		return nil, err
	}
	var out types.Config
	if err := c.http.do(ctx, http.MethodGet, EndpointConfig, nil, &out); err != nil {
		return nil, err
	}
	c.cache.Set(cacheKeyConfig, &out, c.configTTL)
	return &out, nil
}

// GetCurrencyInfo returns the public record of a currency. Results are
// cached briefly per symbol.
func (c *Client) GetCurrencyInfo(ctx context.Context, symbol string) (*types.CurrencyInfo, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	key := "currency:" + symbol
	if v, ok := c.cache.Get(key); ok {
		return v.(*types.CurrencyInfo), nil
	}
	if err := c.wait(ctx, ratelimit.GroupInfo); err != nil {
		return nil, err
	}
	var out types.CurrencyInfo
	if err := c.http.do(ctx, http.MethodGet, EndpointCurrencyInfo+symbol, nil, &out); err != nil {
		return nil, err
	}
	c.cache.Set(key, &out, infoTTL)
	return &out, nil
}

// GetStockInfo returns the public record of a stock. Results are cached
// briefly per symbol.
func (c *Client) GetStockInfo(ctx context.Context, symbol string) (*types.StockInfo, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	key := "stock:" + symbol
	if v, ok := c.cache.Get(key); ok {
		return v.(*types.StockInfo), nil
	}
	if err := c.wait(ctx, ratelimit.GroupInfo); err != nil {
		return nil, err
	}
	var out types.StockInfo
	if err := c.http.do(ctx, http.MethodGet, EndpointStockInfo+symbol, nil, &out); err != nil {
		return nil, err
	}
	c.cache.Set(key, &out, infoTTL)
	return &out, nil
}

// checkVersion compares the client and server major versions and logs a
// warning on mismatch. Connectivity problems are downgraded to warnings so
// that construction succeeds even when the server is briefly unreachable.
func (c *Client) checkVersion(ctx context.Context) {
	resp, err := c.GetVersion(ctx)
	if err != nil {
		c.log.WithError(err).Warn("could not verify server version; compatibility is not guaranteed")
		return
	}
	server, _ := resp.Details["version"].(string)
	if server == "" {
		c.log.Warn("server did not report a version; compatibility is not guaranteed")
		return
	}
	if majorVersion(server) != majorVersion(Version) {
		c.log.WithFields(logrus.Fields{
			"client": Version,
			"server": server,
		}).Warn("client and server major versions differ; some calls may misbehave")
	}
}

func majorVersion(v string) string {
	if i := strings.IndexByte(v, '.'); i >= 0 {
		return v[:i]
	}
	return v
}
