package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the vault in outbound requests.
const UserAgent = "secrets-vault"

const (
	defaultRetryWaitTime    = 100 * time.Millisecond
	defaultRetryMaxWaitTime = time.Second
)

// HTTPClientOptions configures [NewHTTPClient]. Zero values leave resty's
// defaults in place.
type HTTPClientOptions struct {
	BaseURL     string
	Timeout     time.Duration
	BearerToken string

	// Retries is the number of extra attempts made after a transport error
	// or a 5xx response.
	Retries int
}

// HTTPClient embeds *resty.Client so callers build requests with R().
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent JSON client that sends [UserAgent].
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.BearerToken != "" {
		client.SetAuthToken(opts.BearerToken)
	}
	if opts.Retries > 0 {
		client.
			SetRetryCount(opts.Retries).
			SetRetryWaitTime(defaultRetryWaitTime).
			SetRetryMaxWaitTime(defaultRetryMaxWaitTime).
			AddRetryCondition(retryOnServerError)
	}

	return &HTTPClient{Client: client}
}

func retryOnServerError(resp *resty.Response, err error) bool {
	return err != nil || resp.StatusCode() >= http.StatusInternalServerError
}
