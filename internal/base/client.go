// Package base provides the authenticated transport for the WordPress REST API.
package base

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
	"github.com/olgasafonova/wordpress-mcp-server/metrics"
	"github.com/olgasafonova/wordpress-mcp-server/tracing"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the server to WordPress
	DefaultUserAgent = "wordpress-mcp-server/1.0"

	// APIPrefix is appended to the site URL to reach the wp/v2 namespace
	APIPrefix = "/wp-json/wp/v2"

	// maxDetailLen bounds the raw body quoted in error messages
	maxDetailLen = 200
)

// Config holds the connection settings for one WordPress site.
type Config struct {
	BaseURL   string
	Username  string
	Password  string // application password
	Timeout   time.Duration
	UserAgent string
}

// Client owns the connection context: site URL, the derived credential and
// the pooled HTTP client. It is never mutated after NewClient returns and is
// safe for concurrent use.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Fs         afero.Fs

	siteURL    string
	apiRoot    string
	username   string
	authHeader string
	timeout    time.Duration
	userAgent  string
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.HTTPClient = c
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(client *Client) {
		client.Logger = l
	}
}

// WithFs sets the filesystem used to read local upload sources
func WithFs(fs afero.Fs) ClientOption {
	return func(client *Client) {
		client.Fs = fs
	}
}

// NewClient validates cfg and creates a client. The Basic credential is
// derived here once and reused for every request.
func NewClient(cfg Config, opts ...ClientOption) (*Client, error) {
	var missing []string
	if strings.TrimSpace(cfg.BaseURL) == "" {
		missing = append(missing, "WORDPRESS_URL")
	}
	if strings.TrimSpace(cfg.Username) == "" {
		missing = append(missing, "WORDPRESS_USERNAME")
	}
	if strings.TrimSpace(cfg.Password) == "" {
		missing = append(missing, "WORDPRESS_APP_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, &apierrors.ConfigurationError{Missing: missing}
	}

	siteURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(siteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &apierrors.ConfigurationError{Message: fmt.Sprintf("WORDPRESS_URL %q is not an absolute URL", cfg.BaseURL)}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	token := base64.StdEncoding.EncodeToString([]byte(cfg.Username + ":" + cfg.Password))

	c := &Client{
		HTTPClient: newHTTPClient(timeout),
		Logger:     slog.Default(),
		Fs:         afero.NewOsFs(),
		siteURL:    siteURL,
		apiRoot:    siteURL + APIPrefix,
		username:   cfg.Username,
		authHeader: "Basic " + token,
		timeout:    timeout,
		userAgent:  userAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SiteURL returns the site URL without a trailing slash
func (c *Client) SiteURL() string { return c.siteURL }

// APIRoot returns the wp/v2 root the request paths are resolved against
func (c *Client) APIRoot() string { return c.apiRoot }

// Username returns the account the credential belongs to
func (c *Client) Username() string { return c.username }

// Timeout returns the per-request timeout
func (c *Client) Timeout() time.Duration { return c.timeout }

// Close releases idle pooled connections
func (c *Client) Close() {
	if c.HTTPClient != nil {
		c.HTTPClient.CloseIdleConnections()
	}
}

// Request describes one REST call. Body and Multipart are mutually exclusive.
type Request struct {
	Method    string
	Path      string // relative to the API root, e.g. "posts/5"
	Query     url.Values
	Body      map[string]any
	Multipart *Multipart
}

// Multipart is a single-file form upload.
type Multipart struct {
	Filename    string
	ContentType string
	Content     []byte
	Fields      map[string]string
}

// Get issues a GET against the API root
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST with a JSON body
func (c *Client) Post(ctx context.Context, path string, body map[string]any) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT with a JSON body
func (c *Client) Put(ctx context.Context, path string, body map[string]any) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path, Query: query})
}

// Discover fetches the REST index at <site>/wp-json (name, description, namespaces).
func (c *Client) Discover(ctx context.Context) (any, error) {
	return c.execute(ctx, Request{Method: http.MethodGet, Path: ""}, c.siteURL+"/wp-json")
}

// Do executes req against the API root and returns the decoded JSON document.
// A 204 or empty body yields {"deleted": true, "status": <code>}.
func (c *Client) Do(ctx context.Context, req Request) (any, error) {
	endpoint := c.apiRoot + "/" + strings.TrimLeft(req.Path, "/")
	return c.execute(ctx, req, endpoint)
}

func (c *Client) execute(ctx context.Context, req Request, endpoint string) (any, error) {
	if req.Body != nil && req.Multipart != nil {
		return nil, apierrors.NewValidationError("body", "", "a request carries either a JSON body or a multipart payload, not both")
	}
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	requestID := uuid.NewString()
	resource := resourceLabel(req.Path)

	ctx, span := tracing.StartSpan(ctx, "wordpress.api."+req.Method)
	defer span.End()
	tracing.AddAPIAttributes(span, req.Method, req.Path, requestID)

	start := time.Now()
	result, status, err := c.roundTrip(ctx, req, endpoint)
	duration := time.Since(start)

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	kind := apierrors.KindOf(err)
	metrics.RecordAPICall(req.Method, resource, duration.Seconds(), err == nil, string(kind))

	if err != nil {
		tracing.RecordError(span, err)
		span.SetStatus(codes.Error, err.Error())
		c.Logger.Debug("WordPress API request failed",
			"request_id", requestID,
			"method", req.Method,
			"path", req.Path,
			"status", status,
			"error_kind", kind,
			"duration", duration,
			"error", err)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	c.Logger.Debug("WordPress API request",
		"request_id", requestID,
		"method", req.Method,
		"path", req.Path,
		"status", status,
		"duration", duration)
	return result, nil
}

func (c *Client) roundTrip(ctx context.Context, req Request, endpoint string) (any, int, error) {
	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.Multipart != nil:
		buf, ct, err := encodeMultipart(req.Multipart)
		if err != nil {
			return nil, 0, &apierrors.TransportError{Op: "encode multipart", Err: err}
		}
		body, contentType = buf, ct
	case req.Body != nil:
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, 0, apierrors.NewValidationError("body", "", fmt.Sprintf("cannot encode request body: %v", err))
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, 0, &apierrors.TransportError{Op: "create request", Err: err}
	}
	httpReq.Header.Set("Authorization", c.authHeader)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, 0, c.classify(err, req)
	}

	data, err := readAndClose(resp)
	if err != nil {
		return nil, resp.StatusCode, c.classify(err, req)
	}

	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, &apierrors.HTTPStatusError{
			Status: resp.StatusCode,
			Detail: errorDetail(data),
			Method: req.Method,
			Path:   req.Path,
		}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{"deleted": true, "status": resp.StatusCode}, resp.StatusCode, nil
	}

	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, resp.StatusCode, &apierrors.TransportError{
			Op:  "decode response",
			Err: fmt.Errorf("%w (body: %s)", err, truncate(string(data), maxDetailLen)),
		}
	}
	return out, resp.StatusCode, nil
}

// classify maps a transport failure onto the error taxonomy.
func (c *Client) classify(err error, req Request) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &apierrors.TimeoutError{Timeout: c.timeout, Err: err}
	}
	var dnsErr *net.DNSError
	var opErr *net.OpError
	if errors.As(err, &dnsErr) || (errors.As(err, &opErr) && opErr.Op == "dial") {
		return &apierrors.ConnectError{Target: c.siteURL, Err: err}
	}
	return &apierrors.TransportError{Op: req.Method + " " + req.Path, Err: err}
}

// errorDetail extracts the message from a WordPress error document
// ({"code": ..., "message": ..., "data": {"status": ...}}), falling back to
// the raw body.
func errorDetail(body []byte) string {
	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err == nil {
		if msg, ok := doc["message"].(string); ok && msg != "" {
			return msg
		}
		if code, ok := doc["code"].(string); ok && code != "" {
			return code
		}
	}
	return truncate(strings.TrimSpace(string(body)), maxDetailLen)
}

// resourceLabel reduces a request path to a low-cardinality metric label.
func resourceLabel(path string) string {
	path = strings.Trim(path, "/")
	if path == "" {
		return "root"
	}
	if i := strings.IndexByte(path, '/'); i >= 0 {
		return path[:i]
	}
	return path
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen characters, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen]) + "..."
}

// newHTTPClient creates an HTTP client with pooled transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     120 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
