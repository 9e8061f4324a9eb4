package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/i18n"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/logger"
	"github.com/RafeefAlsuhaibani/takaful-sub001/pkg/requestid"
)

const (
	// DefaultTimeout bounds a request when WithTimeout is not given.
	DefaultTimeout = 15 * time.Second

	maxBodySize = 64 << 10
)

// Client talks JSON to the platform's REST API. It never retries: each call
// sends exactly one request.
type Client struct {
	base      string
	http      *http.Client
	timeout   time.Duration
	tokens    TokenSource
	lang      string
	langFn    func() string
	logger    *slog.Logger
	userAgent string
}

// New creates a client for baseURL, which must be an absolute http(s) URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		base:      strings.TrimRight(u.String(), "/"),
		http:      &http.Client{},
		timeout:   DefaultTimeout,
		lang:      i18n.DefaultLanguage,
		logger:    logger.Discard(),
		userAgent: "takaful-client/1.0",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetJSON sends a GET and decodes a 2xx body into out (which may be nil).
func (c *Client) GetJSON(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// PostJSON sends in as a JSON body and decodes a 2xx body into out.
func (c *Client) PostJSON(ctx context.Context, path string, in, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, in, out, opts...)
}

// Do performs one request. Non-2xx responses return *APIError. Network
// failures wrap ErrTransport, and also ErrTimeout when the deadline expired.
func (c *Client) Do(ctx context.Context, method, path string, in, out any, opts ...RequestOption) error {
	ro := &requestOptions{headers: http.Header{}}
	for _, opt := range opts {
		opt(ro)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.Join(ErrEncodeRequest, err)
		}
		body = bytes.NewReader(payload)
	}

	ctx, _ = requestid.Ensure(ctx)
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if err := c.prepare(ctx, req, in != nil, ro); err != nil {
		return err
	}

	log := c.logger.With(logger.Method(method), logger.Endpoint(path))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.WarnContext(ctx, "api request failed", logger.Duration(time.Since(start)), logger.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w: %w", ErrTransport, ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", ErrTransport, err)
	}
	log.DebugContext(ctx, "api response", logger.StatusCode(resp.StatusCode), logger.Duration(time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(method, path, resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}
	return nil
}

func (c *Client) url(path string) string {
	return c.base + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) prepare(ctx context.Context, req *http.Request, hasBody bool, ro *requestOptions) error {
	req.Header.Set("Accept", "application/json")
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.userAgent)

	lang := c.lang
	if c.langFn != nil {
		if l := c.langFn(); l != "" {
			lang = l
		}
	}
	if l, ok := i18n.LocaleFromContext(ctx); ok {
		lang = l
	}
	req.Header.Set("Accept-Language", lang)
	requestid.Apply(req)

	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			return errors.Join(ErrTokenUnavailable, err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if ro.requireAuth && req.Header.Get("Authorization") == "" {
		return ErrUnauthenticated
	}

	for k, vals := range ro.headers {
		for _, v := range vals {
			req.Header.Set(k, v)
		}
	}
	return nil
}
