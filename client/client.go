// Package client implements a typed client for the RapidWire exchange API.
//
// Files:
//
//	client.go    - Client struct, construction, shared helpers
//	options.go   - construction options
//	http.go      - resty transport wrapper and response decoding
//	endpoints.go - API endpoint constants
//	errors.go    - error taxonomy (APIError, AuthError, ValidationError, ...)
//	info.go      - version, config and public info endpoints
//	account.go   - balance, history and active-order endpoints
//	transfer.go  - currency and stock transfer endpoints
//	market.go    - orderbook, order and liquidity-pool endpoints
package client

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rapidwire/go-rapidwire/pkg/cache"
	"github.com/rapidwire/go-rapidwire/pkg/ratelimit"
)

// Version is the client library version. The server must run the same major
// version for the API to be compatible (see checkVersion).
const Version = "1.0.0"

// DefaultHost is used when no host is given.
const DefaultHost = "http://127.0.0.1:14550"

const cacheKeyConfig = "config"

// Client talks to a RapidWire API server. Each operation issues exactly one
// authenticated request and maps the JSON response onto the records in the
// types package. A Client is stateless apart from its response cache and is
// safe for concurrent use.
type Client struct {
	host      string
	http      *httpClient
	log       *logrus.Logger
	limiter   *ratelimit.Manager
	cache     *cache.InMemoryCache[string, any]
	configTTL time.Duration // zero caches the config for the client lifetime
}

// NewClient builds a client for the given API key and host. An empty key or
// an unparseable host is a *ValidationError. Unless disabled with
// WithoutVersionCheck, the server version is probed once here and a major
// version mismatch is logged as a warning; probe failures never fail
// construction.
func NewClient(apiKey, host string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, &ValidationError{Field: "apiKey", Reason: "must not be empty"}
	}
	if host == "" {
		host = DefaultHost
	}
	if u, err := url.Parse(host); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ValidationError{Field: "host", Reason: "must be an absolute URL such as http://host:port"}
	}

	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = defaultLogger()
	}

	c := &Client{
		host:      strings.TrimSuffix(host, "/"),
		http:      newHTTPClient(host, apiKey, s.timeout, s.retryCount, s.logger),
		log:       s.logger,
		cache:     cache.New[string, any](0),
		configTTL: s.configTTL,
	}
	if s.rateLimit {
		c.limiter = ratelimit.NewManager()
	}

	if s.versionCheck {
		c.checkVersion(context.Background())
	}
	return c, nil
}

// Host returns the configured base URL.
func (c *Client) Host() string {
	return c.host
}

func defaultLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return log
}

// wait blocks on the rate limiter for the endpoint group. A cancelled or
// expired context surfaces as *NetworkError, matching what the transport
// would report.
func (c *Client) wait(ctx context.Context, group ratelimit.Group) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx, group); err != nil {
		return &NetworkError{Err: err}
	}
	return nil
}

// normalizeSymbol trims and upper-cases an asset symbol, rejecting empty
// input before any network activity.
func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", &ValidationError{Field: "symbol", Reason: "must not be empty"}
	}
	return symbol, nil
}
