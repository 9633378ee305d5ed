package ai

import (
	"net/http"
	"time"
)

// Option ajusta un adaptador de IA.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL reemplaza el endpoint del proveedor (proxies, tests con httptest).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

func applyOptions(baseURL string, timeout time.Duration, opts []Option) options {
	o := options{baseURL: baseURL}
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpClient == nil {
		// timeout de red; el caso de uso impone además context.WithTimeout
		o.httpClient = &http.Client{Timeout: timeout}
	}
	return o
}
