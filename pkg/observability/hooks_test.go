package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Check hooks
	ch := NoopCheckHooks{}
	ch.OnCheckStart(ctx, "pypi", 12)
	ch.OnCheckComplete(ctx, "pypi", 12, 3, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "pypi:")
	c.OnCacheMiss(ctx, "npm:")
	c.OnCacheSet(ctx, "npm:", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "pypi.org", "/pypi/requests/json")
	h.OnResponse(ctx, "GET", "pypi.org", "/pypi/requests/json", 200, time.Second)
	h.OnError(ctx, "GET", "pypi.org", "/pypi/requests/json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()
	t.Cleanup(Reset)

	// Verify defaults are noop
	if _, ok := Check().(NoopCheckHooks); !ok {
		t.Error("Check() should return NoopCheckHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customCheck := &testCheckHooks{}
	SetCheckHooks(customCheck)
	if Check() != customCheck {
		t.Error("SetCheckHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Check().(NoopCheckHooks); !ok {
		t.Error("Reset() should restore NoopCheckHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &testCheckHooks{}
	SetCheckHooks(custom)

	// Setting nil should be ignored
	SetCheckHooks(nil)

	if Check() != custom {
		t.Error("SetCheckHooks(nil) should be ignored")
	}
}

// Test implementations
type testCheckHooks struct{ NoopCheckHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
