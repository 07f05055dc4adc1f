package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
)

func testManager() *auth.Manager {
	return &auth.Manager{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
		Issuer: "personal-portfolio",
	}
}

type captureHandler struct {
	called bool
	userID string
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.called = true
	h.userID = UserIDFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func doAuthRequest(t *testing.T, manager *auth.Manager, header string) (*httptest.ResponseRecorder, *captureHandler) {
	t.Helper()
	handler := &captureHandler{}
	req := httptest.NewRequest(http.MethodGet, "/api/projects/all", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	Auth(manager)(handler).ServeHTTP(rr, req)
	return rr, handler
}

func TestAuthMissingHeader(t *testing.T) {
	rr, handler := doAuthRequest(t, testManager(), "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if handler.called {
		t.Fatal("handler should not have been called")
	}
}

func TestAuthWrongScheme(t *testing.T) {
	rr, handler := doAuthRequest(t, testManager(), "Basic abc123")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if handler.called {
		t.Fatal("handler should not have been called")
	}
}

func TestAuthInvalidToken(t *testing.T) {
	rr, handler := doAuthRequest(t, testManager(), "Bearer not-a-token")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if handler.called {
		t.Fatal("handler should not have been called")
	}
}

func TestAuthExpiredToken(t *testing.T) {
	manager := testManager()
	expired := &auth.Manager{Secret: manager.Secret, TTL: -time.Minute, Issuer: manager.Issuer}
	token, err := expired.NewToken("user-123")
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	rr, handler := doAuthRequest(t, manager, "Bearer "+token)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if handler.called {
		t.Fatal("handler should not have been called")
	}
}

func TestAuthValidToken(t *testing.T) {
	manager := testManager()
	token, err := manager.NewToken("user-123")
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}

	rr, handler := doAuthRequest(t, manager, "Bearer "+token)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !handler.called {
		t.Fatal("handler was not called")
	}
	if handler.userID != "user-123" {
		t.Fatalf("expected user id in context, got %q", handler.userID)
	}
}

func TestAuthNilManager(t *testing.T) {
	rr, handler := doAuthRequest(t, nil, "Bearer whatever")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
	if handler.called {
		t.Fatal("handler should not have been called")
	}
}
