package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/freeboard/board-client/internal/core/domain"
)

// stubRenderer records which template was rendered.
type stubRenderer struct {
	name string
	data any
}

func (r *stubRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

func newGuardContext(t *testing.T, sess *domain.Session) (echo.Context, *httptest.ResponseRecorder, *stubRenderer) {
	t.Helper()
	e := echo.New()
	renderer := &stubRenderer{}
	e.Renderer = renderer

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if sess != nil {
		c.Set(ctxSession, sess)
	}
	return c, rec, renderer
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	c, rec, _ := newGuardContext(t, nil)

	called := false
	handler := RequireAuth()(func(c echo.Context) error {
		called = true
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if called {
		t.Fatalf("next called for anonymous request")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireAuth_PassesAuthenticated(t *testing.T) {
	sess := &domain.Session{ID: "s", Token: "tok", User: &domain.User{ID: 1, Username: "alice"}}
	c, _, _ := newGuardContext(t, sess)

	called := false
	handler := RequireAuth()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called for authenticated request")
	}
}

func TestRequireAdmin_RedirectsAnonymous(t *testing.T) {
	c, rec, _ := newGuardContext(t, nil)

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestRequireAdmin_RendersForbiddenInPlace(t *testing.T) {
	sess := &domain.Session{ID: "s", Token: "tok", User: &domain.User{ID: 1, Username: "alice", Role: domain.RoleUser}}
	c, rec, renderer := newGuardContext(t, sess)

	handler := RequireAdmin()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "" {
		t.Fatalf("forbidden must render in place, got redirect to %q", loc)
	}
	if renderer.name != "forbidden" {
		t.Fatalf("expected forbidden template, got %q", renderer.name)
	}
}

func TestRequireAdmin_PassesAdmin(t *testing.T) {
	sess := &domain.Session{ID: "s", Token: "tok", User: &domain.User{ID: 1, Username: "root", Role: domain.RoleAdmin}}
	c, _, _ := newGuardContext(t, sess)

	called := false
	handler := RequireAdmin()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called for admin")
	}
}
