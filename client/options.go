package client

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 30 * time.Second

	// infoTTL bounds how long public currency/stock records are served from
	// the in-memory cache.
	infoTTL = 30 * time.Second
)

type settings struct {
	timeout      time.Duration
	retryCount   int
	logger       *logrus.Logger
	rateLimit    bool
	versionCheck bool
	configTTL    time.Duration
}

func defaultSettings() settings {
	return settings{
		timeout:      defaultTimeout,
		rateLimit:    true,
		versionCheck: true,
	}
}

// Option customizes a Client at construction time.
type Option func(*settings)

// WithTimeout sets the per-call timeout. The default is 30 seconds. Timeouts
// surface as *NetworkError.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithRetryCount enables transport-level retries with backoff. The default
// is zero. HTTP error responses (including 401) are never retried.
func WithRetryCount(n int) Option {
	return func(s *settings) { s.retryCount = n }
}

// WithLogger replaces the client's logger. The default logs warnings and
// above to stderr.
func WithLogger(log *logrus.Logger) Option {
	return func(s *settings) { s.logger = log }
}

// WithoutRateLimit disables the client-side rate limiter.
func WithoutRateLimit() Option {
	return func(s *settings) { s.rateLimit = false }
}

// WithoutVersionCheck skips the server version probe normally performed at
// construction.
func WithoutVersionCheck() Option {
	return func(s *settings) { s.versionCheck = false }
}

// WithConfigTTL bounds how long a fetched server config is served from
// cache. Zero (the default) caches it for the client lifetime; decimal
// precision changes rarely enough that staleness has no practical impact.
func WithConfigTTL(d time.Duration) Option {
	return func(s *settings) { s.configTTL = d }
}
