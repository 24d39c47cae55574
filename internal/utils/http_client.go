package utils

import (
	"net/http"
	"net/http/cookiejar"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Every HTTPClient owns its cookie jar: cookies set by the upstream API are
// replayed on later requests from the same client and never leak into
// another client, even when the underlying transport is shared.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with its own transport and cookie jar.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
func NewHTTPClient() *HTTPClient {
	return NewHTTPClientWithTransport(nil)
}

// NewHTTPClientWithTransport creates an HTTPClient that sends requests
// through rt (http.DefaultTransport when nil) and stores cookies in a fresh
// jar. Sharing rt between clients shares the connection pool only.
func NewHTTPClientWithTransport(rt http.RoundTripper) *HTTPClient {
	jar, _ := cookiejar.New(nil) // cookiejar.New never fails with nil options

	return &HTTPClient{Client: resty.NewWithClient(&http.Client{
		Transport: rt,
		Jar:       jar,
	})}
}
