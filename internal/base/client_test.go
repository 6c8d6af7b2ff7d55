package base

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/olgasafonova/wordpress-mcp-server/internal/errors"
)

func newTestClient(t *testing.T, siteURL string, opts ...ClientOption) *Client {
	t.Helper()
	opts = append([]ClientOption{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	c, err := NewClient(Config{
		BaseURL:  siteURL,
		Username: "admin",
		Password: "abcd efgh ijkl mnop",
		Timeout:  2 * time.Second,
	}, opts...)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewClient_MissingConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		missing []string
	}{
		{
			name:    "everything missing",
			cfg:     Config{},
			missing: []string{"WORDPRESS_URL", "WORDPRESS_USERNAME", "WORDPRESS_APP_PASSWORD"},
		},
		{
			name:    "password missing",
			cfg:     Config{BaseURL: "https://example.com", Username: "admin"},
			missing: []string{"WORDPRESS_APP_PASSWORD"},
		},
		{
			name:    "whitespace username",
			cfg:     Config{BaseURL: "https://example.com", Username: "  ", Password: "secret"},
			missing: []string{"WORDPRESS_USERNAME"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, c)

			var cfgErr *apierrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.missing, cfgErr.Missing)
			assert.Equal(t, apierrors.KindConfiguration, apierrors.KindOf(err))
		})
	}
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "example.com", Username: "a", Password: "b"})
	require.Error(t, err)
	assert.Equal(t, apierrors.KindConfiguration, apierrors.KindOf(err))
}

func TestNewClient_Defaults(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "https://blog.example.com/", Username: "a", Password: "b"})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, "https://blog.example.com", c.SiteURL())
	assert.Equal(t, "https://blog.example.com/wp-json/wp/v2", c.APIRoot())
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, DefaultTimeout, c.HTTPClient.Timeout)
	assert.NotNil(t, c.Fs)
}

func TestNewClientWithOptions(t *testing.T) {
	custom := &http.Client{Timeout: 60 * time.Second}
	c, err := NewClient(Config{BaseURL: "https://x.test", Username: "a", Password: "b"}, WithHTTPClient(custom))
	require.NoError(t, err)
	assert.Same(t, custom, c.HTTPClient)
}

func TestDo_SendsCredentialAndJSON(t *testing.T) {
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:abcd efgh ijkl mnop"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "T", "status": "draft"}, body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":5,"status":"draft"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	got, err := c.Post(context.Background(), "posts", map[string]any{"title": "T", "status": "draft"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(5), "status": "draft"}, got)
}

func TestDo_QueryEncoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, "3,7", r.URL.Query().Get("categories"))
		assert.Equal(t, "10", r.URL.Query().Get("per_page"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	got, err := c.Get(context.Background(), "/posts", url.Values{"categories": {"3,7"}, "per_page": {"10"}})
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestDo_NoContent(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"204", http.StatusNoContent},
		{"empty 200", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			c := newTestClient(t, server.URL)
			got, err := c.Delete(context.Background(), "comments/3", nil)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"deleted": true, "status": tt.status}, got)
		})
	}
}

func TestDo_StatusErrors(t *testing.T) {
	longText := strings.Repeat("x", 300)

	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   apierrors.Kind
		wantDetail string
		wantText   string
	}{
		{
			name:       "unauthorized",
			status:     401,
			body:       `{"code":"rest_not_logged_in","message":"You are not currently logged in.","data":{"status":401}}`,
			wantKind:   apierrors.KindAuthentication,
			wantDetail: "You are not currently logged in.",
			wantText:   "check the username and application password",
		},
		{
			name:       "forbidden code only",
			status:     403,
			body:       `{"code":"rest_cannot_create"}`,
			wantKind:   apierrors.KindAuthorization,
			wantDetail: "rest_cannot_create",
			wantText:   "permission denied",
		},
		{
			name:       "not found",
			status:     404,
			body:       `{"code":"rest_post_invalid_id","message":"Invalid post ID."}`,
			wantKind:   apierrors.KindNotFound,
			wantDetail: "Invalid post ID.",
			wantText:   "resource not found",
		},
		{
			name:       "server error with html",
			status:     500,
			body:       longText,
			wantKind:   apierrors.KindUpstream,
			wantDetail: strings.Repeat("x", 200) + "...",
			wantText:   "WordPress server error",
		},
		{
			name:       "bad request",
			status:     400,
			body:       `{"code":"rest_invalid_param","message":"Invalid parameter(s): status"}`,
			wantKind:   apierrors.KindHTTPStatus,
			wantDetail: "Invalid parameter(s): status",
			wantText:   "HTTP 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newTestClient(t, server.URL)
			_, err := c.Get(context.Background(), "posts/99", nil)
			require.Error(t, err)

			var statusErr *apierrors.HTTPStatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.Status)
			assert.Equal(t, tt.wantDetail, statusErr.Detail)
			assert.Equal(t, tt.wantKind, apierrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.wantText)
		})
	}
}

func TestDo_BodyAndMultipartExclusive(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Do(context.Background(), Request{
		Method:    http.MethodPost,
		Path:      "media",
		Body:      map[string]any{"title": "x"},
		Multipart: &Multipart{Filename: "a.png", Content: []byte("x")},
	})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
	assert.Zero(t, calls.Load())
}

func TestDo_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	c, err := NewClient(Config{BaseURL: server.URL, Username: "a", Password: "b", Timeout: 50 * time.Millisecond})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Get(context.Background(), "posts", nil)
	require.Error(t, err)

	var timeoutErr *apierrors.TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
	assert.Equal(t, apierrors.KindTimeout, apierrors.KindOf(err))
}

func TestDo_ConnectError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	siteURL := server.URL
	server.Close()

	c := newTestClient(t, siteURL)
	_, err := c.Get(context.Background(), "posts", nil)
	require.Error(t, err)
	assert.Equal(t, apierrors.KindConnect, apierrors.KindOf(err))
	assert.Contains(t, err.Error(), siteURL)
}

func TestDo_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	_, err := c.Get(context.Background(), "posts", nil)
	require.Error(t, err)
	assert.Equal(t, apierrors.KindTransport, apierrors.KindOf(err))
}

func TestDiscover(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"My Blog","namespaces":["wp/v2"]}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	got, err := c.Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "My Blog", got.(map[string]any)["name"])
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"message":"Nope","code":"x"}`, "Nope"},
		{`{"message":"","code":"rest_forbidden"}`, "rest_forbidden"},
		{`["not","a","map"]`, `["not","a","map"]`},
		{"  plain text  ", "plain text"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := errorDetail([]byte(tt.body)); got != tt.want {
			t.Errorf("errorDetail(%q) = %q, want %q", tt.body, got, tt.want)
		}
	}
}

func TestResourceLabel(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"posts", "posts"},
		{"/posts/5", "posts"},
		{"users/me", "users"},
		{"", "root"},
	}

	for _, tt := range tests {
		if got := resourceLabel(tt.path); got != tt.want {
			t.Errorf("resourceLabel(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"longer than max length", 10, "longer tha..."},
		{"", 5, ""},
		{"abcd", 3, "abc..."},
		{"héllo wörld", 5, "héllo..."},
	}

	for _, tt := range tests {
		result := truncate(tt.input, tt.maxLen)
		if result != tt.expected {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
		}
	}
}

func TestReadAndClose_ReadError(t *testing.T) {
	resp := &http.Response{Body: io.NopCloser(&errorReader{})}

	_, err := readAndClose(resp)
	if err == nil {
		t.Error("expected error when read fails")
	}
}

// errorReader is a reader that always returns an error
type errorReader struct{}

func (e *errorReader) Read(p []byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
