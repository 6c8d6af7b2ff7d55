package wordpress

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/olgasafonova/wordpress-mcp-server/internal/base"
)

const apiPrefix = "/wp-json/wp/v2"

// recordedCall is what the stub server saw for one request.
type recordedCall struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   map[string]any
}

// BodyKeys returns the JSON body keys in sorted order.
func (c recordedCall) BodyKeys() []string {
	keys := make([]string, 0, len(c.Body))
	for k := range c.Body {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// stubServer records every request and answers with the handler.
type stubServer struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (s *stubServer) record(r *http.Request) recordedCall {
	call := recordedCall{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()}
	if r.Header.Get("Content-Type") == "application/json" {
		data, _ := io.ReadAll(r.Body)
		if len(data) > 0 {
			_ = json.Unmarshal(data, &call.Body)
		}
	}
	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()
	return call
}

func (s *stubServer) Calls() []recordedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedCall(nil), s.calls...)
}

func (s *stubServer) Last() recordedCall {
	calls := s.Calls()
	if len(calls) == 0 {
		return recordedCall{}
	}
	return calls[len(calls)-1]
}

// newTestClient starts an httptest server answering with handler and returns
// a Client wired to it through a real transport.
func newTestClient(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, call recordedCall), opts ...base.ClientOption) (*Client, *stubServer) {
	t.Helper()
	stub := &stubServer{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := stub.record(r)
		handler(w, r, call)
	}))
	t.Cleanup(srv.Close)

	api, err := base.NewClient(base.Config{
		BaseURL:  srv.URL,
		Username: "admin",
		Password: "app-secret",
	}, opts...)
	require.NoError(t, err)
	t.Cleanup(api.Close)

	return NewClient(api, slog.New(slog.NewTextHandler(io.Discard, nil))), stub
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func wpError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{"code": code, "message": message, "data": map[string]any{"status": status}})
}

func ptr[T any](v T) *T { return &v }
