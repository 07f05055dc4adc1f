package projects

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/cache"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/middleware"
	"github.com/Vrushabh-003/Personal-Portfolio/internal/validation"
	"github.com/go-chi/chi/v5"
)

func newTestRouter(t *testing.T) (*chi.Mux, *auth.Manager) {
	t.Helper()
	handler := NewHandler(
		newTestService(newFakeRepository()),
		validation.New(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		cache.NewNoop(),
		time.Minute,
	)
	manager := &auth.Manager{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "personal-portfolio"}

	r := chi.NewRouter()
	r.Route("/api/projects", func(pr chi.Router) {
		pr.Get("/", handler.List)
		pr.Get("/{id}", handler.GetByID)
		pr.Group(func(admin chi.Router) {
			admin.Use(middleware.Auth(manager))
			admin.Get("/all", handler.AdminList)
			admin.Post("/", handler.Create)
			admin.Put("/reorder", handler.Reorder)
			admin.Put("/{id}", handler.Update)
			admin.Delete("/{id}", handler.Delete)
		})
	})
	return r, manager
}

func adminToken(t *testing.T, manager *auth.Manager) string {
	t.Helper()
	token, err := manager.NewToken("user-123")
	if err != nil {
		t.Fatalf("NewToken error: %v", err)
	}
	return token
}

func doJSON(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	rr := doJSON(t, r, http.MethodPost, "/api/projects/", "", `{"title":"P1","description":"d"}`)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestCreateValidationError(t *testing.T) {
	r, manager := newTestRouter(t)
	token := adminToken(t, manager)
	rr := doJSON(t, r, http.MethodPost, "/api/projects/", token, `{"title":"P1"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestGetMissingProject(t *testing.T) {
	r, _ := newTestRouter(t)
	rr := doJSON(t, r, http.MethodGet, "/api/projects/nope", "", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestCreateReorderListScenario(t *testing.T) {
	r, manager := newTestRouter(t)
	token := adminToken(t, manager)

	rr := doJSON(t, r, http.MethodPost, "/api/projects/", token,
		`{"title":"P1","description":"d","technologies":["x"],"media":[]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create P1: expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var p1 Project
	if err := json.Unmarshal(rr.Body.Bytes(), &p1); err != nil {
		t.Fatalf("decode P1: %v", err)
	}
	if p1.DisplayOrder != 0 {
		t.Fatalf("P1: expected displayOrder 0, got %d", p1.DisplayOrder)
	}

	rr = doJSON(t, r, http.MethodPost, "/api/projects/", token,
		`{"title":"P2","description":"d","technologies":["x"],"media":[]}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create P2: expected 201, got %d", rr.Code)
	}
	var p2 Project
	if err := json.Unmarshal(rr.Body.Bytes(), &p2); err != nil {
		t.Fatalf("decode P2: %v", err)
	}
	if p2.DisplayOrder != 1 {
		t.Fatalf("P2: expected displayOrder 1, got %d", p2.DisplayOrder)
	}

	rr = doJSON(t, r, http.MethodPut, "/api/projects/reorder", token,
		`{"orderedIds":["`+p2.ID+`","`+p1.ID+`"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("reorder: expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, r, http.MethodGet, "/api/projects/", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rr.Code)
	}
	var page Page
	if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(page.Projects) != 2 {
		t.Fatalf("list: expected 2 projects, got %d", len(page.Projects))
	}
	if page.Projects[0].ID != p2.ID || page.Projects[1].ID != p1.ID {
		t.Fatalf("list order: expected [P2 P1], got [%s %s]", page.Projects[0].Title, page.Projects[1].Title)
	}
}

func TestAdminListRequiresAuth(t *testing.T) {
	r, _ := newTestRouter(t)
	rr := doJSON(t, r, http.MethodGet, "/api/projects/all", "", "")
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestDeleteMissingProject(t *testing.T) {
	r, manager := newTestRouter(t)
	token := adminToken(t, manager)
	rr := doJSON(t, r, http.MethodDelete, "/api/projects/nope", token, "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
