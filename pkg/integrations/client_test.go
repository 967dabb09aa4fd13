package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/stackbump/pkg/cache"
	"github.com/matzehuels/stackbump/pkg/observability"
)

func newTestClient(t *testing.T, server *httptest.Server, headers map[string]string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(c, "test:", time.Hour, headers)
	if server != nil {
		client.SetHTTPClient(server.Client())
	}
	return client
}

func TestNewClient(t *testing.T) {
	client := newTestClient(t, nil, map[string]string{"Authorization": "Bearer token"})

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.ttl != time.Hour {
		t.Errorf("ttl = %v, want 1h", client.ttl)
	}
	if client.headers["Authorization"] != "Bearer token" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestClientGet(t *testing.T) {
	type response struct {
		Message string `json:"message"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		json.NewEncoder(w).Encode(response{Message: "hello"})
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	var resp response
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp.Message != "hello" {
		t.Errorf("Get() message = %q, want %q", resp.Message, "hello")
	}
}

func TestClientGetWithHeadersOverridesDefaults(t *testing.T) {
	var gotDefault, gotOverride string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDefault = r.Header.Get("X-Default")
		gotOverride = r.Header.Get("X-Override")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := newTestClient(t, server, map[string]string{"X-Default": "default", "X-Override": "default"})

	var resp map[string]string
	err := client.GetWithHeaders(context.Background(), server.URL, map[string]string{"X-Override": "overridden"}, &resp)
	if err != nil {
		t.Fatalf("GetWithHeaders() error: %v", err)
	}
	if gotDefault != "default" || gotOverride != "overridden" {
		t.Errorf("headers = %q, %q, want default, overridden", gotDefault, gotOverride)
	}
}

func TestClientGetErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		retryable bool
	}{
		{"404", http.StatusNotFound, ErrNotFound, false},
		{"500", http.StatusInternalServerError, ErrNetwork, true},
		{"403", http.StatusForbidden, ErrNetwork, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(t, server, nil)

			var resp map[string]string
			err := client.Get(context.Background(), server.URL, &resp)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Get() error = %v, want %v", err, tt.wantErr)
			}
			if got := cache.IsRetryable(err); got != tt.retryable {
				t.Errorf("IsRetryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestClientCached(t *testing.T) {
	client := newTestClient(t, nil, nil)
	ctx := context.Background()

	type testData struct {
		Value string `json:"value"`
	}

	fetches := 0
	fetch := func(v *testData) func() error {
		return func() error {
			fetches++
			*v = testData{Value: "fetched"}
			return nil
		}
	}

	var first testData
	if err := client.Cached(ctx, "key", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}

	var second testData
	if err := client.Cached(ctx, "key", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 (second call served from cache)", fetches)
	}
	if second.Value != "fetched" {
		t.Errorf("cached value = %q, want %q", second.Value, "fetched")
	}

	var third testData
	if err := client.Cached(ctx, "key", true, &third, fetch(&third)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetches != 2 {
		t.Errorf("fetches = %d, want 2 after refresh", fetches)
	}
}

func TestClientCachedFetchError(t *testing.T) {
	client := newTestClient(t, nil, nil)

	var value string
	fetches := 0
	err := client.Cached(context.Background(), "missing", false, &value, func() error {
		fetches++
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Cached() error = %v, want ErrNotFound", err)
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 (not found is not retried)", fetches)
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		code      int
		wantErr   error
		retryable bool
	}{
		{200, nil, false},
		{404, ErrNotFound, false},
		{429, ErrNetwork, true},
		{500, ErrNetwork, true},
		{502, ErrNetwork, true},
		{503, ErrNetwork, true},
		{400, ErrNetwork, false},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			err := checkStatus(tt.code)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("checkStatus(%d) unexpected error: %v", tt.code, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("checkStatus(%d) = %v, want %v", tt.code, err, tt.wantErr)
			}
			if got := cache.IsRetryable(err); got != tt.retryable {
				t.Errorf("checkStatus(%d) retryable = %v, want %v", tt.code, got, tt.retryable)
			}
		})
	}
}

func TestNormalizePkgName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase", "Package", "package"},
		{"underscore to dash", "my_package", "my-package"},
		{"trim spaces", "  package  ", "package"},
		{"combined", "  My_Package  ", "my-package"},
		{"empty", "", ""},
		{"already normalized", "my-package", "my-package"},
		{"dots", "zope.interface", "zope-interface"},
		{"separator runs", "Foo._-Bar__baz", "foo-bar-baz"},
		{"mixed case dotted", "Sphinx.Ext_Autodoc", "sphinx-ext-autodoc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePkgName(tt.input); got != tt.want {
				t.Errorf("NormalizePkgName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

type recordingHooks struct {
	observability.NoopCacheHooks
	observability.NoopHTTPHooks
	events []string
}

func (h *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	h.events = append(h.events, "hit "+keyType)
}

func (h *recordingHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.events = append(h.events, "miss "+keyType)
}

func (h *recordingHooks) OnCacheSet(_ context.Context, keyType string, _ int) {
	h.events = append(h.events, "set "+keyType)
}

func (h *recordingHooks) OnResponse(_ context.Context, method, _, path string, status int, _ time.Duration) {
	h.events = append(h.events, fmt.Sprintf("%s %s %d", method, path, status))
}

func TestClientHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	t.Cleanup(observability.Reset)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"value":"ok"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)
	ctx := context.Background()

	for range 2 {
		var v map[string]string
		err := client.Cached(ctx, "key", false, &v, func() error {
			return client.Get(ctx, server.URL+"/pkg", &v)
		})
		if err != nil {
			t.Fatalf("Cached() error: %v", err)
		}
	}

	want := []string{"miss test:", "GET /pkg 200", "set test:", "hit test:"}
	if len(hooks.events) != len(want) {
		t.Fatalf("events = %v, want %v", hooks.events, want)
	}
	for i := range want {
		if hooks.events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, hooks.events[i], want[i])
		}
	}
}
