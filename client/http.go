package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// httpClient wraps resty with the headers and error classification the
// RapidWire API expects. It is safe for concurrent use.
type httpClient struct {
	rc  *resty.Client
	log *logrus.Logger
}

func newHTTPClient(host, apiKey string, timeout time.Duration, retryCount int, log *logrus.Logger) *httpClient {
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(host, "/")).
		SetTimeout(timeout).
		SetHeader("API-Key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "go-rapidwire/"+Version)

	if retryCount > 0 {
		rc.SetRetryCount(retryCount).
			SetRetryWaitTime(1 * time.Second).
			SetRetryMaxWaitTime(10 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				// Transport failures only. An HTTP error status is a final
				// answer and is returned to the caller immediately.
				return err != nil
			})
	}

	return &httpClient{rc: rc, log: log}
}

// requestOptions carries the optional parts of one request.
type requestOptions struct {
	params map[string]string
	body   any
}

// do issues one request and decodes the response into out (skipped when out
// is nil or the server answered 204). Every failure is mapped onto the error
// taxonomy in errors.go.
func (h *httpClient) do(ctx context.Context, method, endpoint string, opt *requestOptions, out any) error {
	req := h.rc.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", uuid.NewString())
	if opt != nil {
		if len(opt.params) > 0 {
			req.SetQueryParams(opt.params)
		}
		if opt.body != nil {
			req.SetBody(opt.body)
		}
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"method":   method,
			"endpoint": endpoint,
			"duration": time.Since(start),
		}).WithError(err).Debug("request failed")
		return &NetworkError{Err: err}
	}

	h.log.WithFields(logrus.Fields{
		"method":   method,
		"endpoint": endpoint,
		"status":   resp.StatusCode(),
		"duration": time.Since(start),
	}).Debug("request complete")

	if resp.IsError() {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	if out == nil || resp.StatusCode() == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &ProtocolError{Err: err, Body: resp.Body()}
	}
	return nil
}
