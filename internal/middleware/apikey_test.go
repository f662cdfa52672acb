package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPIKeyMiddleware_ValidKey(t *testing.T) {
	t.Parallel()

	next, called := okHandler()
	mw := APIKeyMiddleware("admin-key")(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.Header.Set("X-API-Key", "admin-key")
	rr := httptest.NewRecorder()

	mw.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !*called {
		t.Fatalf("next handler not reached")
	}
}

func TestAPIKeyMiddleware_WrongKey(t *testing.T) {
	t.Parallel()

	next, called := okHandler()
	mw := APIKeyMiddleware("admin-key")(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	req.Header.Set("X-API-Key", "nope")
	rr := httptest.NewRecorder()

	mw.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if *called {
		t.Fatalf("next handler must not run")
	}
}

func TestAPIKeyMiddleware_EmptyConfiguredKey(t *testing.T) {
	t.Parallel()

	next, called := okHandler()
	mw := APIKeyMiddleware("")(next)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()

	mw.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 when no key is configured, got %d", rr.Code)
	}
	if *called {
		t.Fatalf("next handler must not run")
	}
}
