package apiclient

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means the user is signed out.
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to TokenSource.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) AccessToken(ctx context.Context) (string, error) {
	return f(ctx)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Useful for tests and
// custom transports.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero disables the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d >= 0 {
			c.timeout = d
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLanguage sets the Accept-Language sent when the request context
// carries no locale.
func WithLanguage(lang string) Option {
	return func(c *Client) {
		if lang != "" {
			c.lang = lang
		}
	}
}

// WithLanguageFunc reads the Accept-Language on every call, so a language
// switch applies to calls whose context carries no locale. An empty result
// falls back to the WithLanguage value.
func WithLanguageFunc(fn func() string) Option {
	return func(c *Client) { c.langFn = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// RequestOption configures a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	requireAuth bool
	headers     http.Header
}

// Authenticated fails the call with ErrUnauthenticated when no bearer token
// is available instead of sending it anonymously.
func Authenticated() RequestOption {
	return func(o *requestOptions) { o.requireAuth = true }
}

// WithHeader adds a header to a single call.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if key != "" && value != "" {
			o.headers.Set(key, value)
		}
	}
}
