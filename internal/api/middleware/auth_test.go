package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/carlosmateus/maintenance-system/internal/core/domain"
)

type stubAuthService struct {
	users map[string]*domain.User // token -> user
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return nil
}

func (s *stubAuthService) Resolve(_ context.Context, token string) (*domain.User, error) {
	if u, ok := s.users[token]; ok {
		return u, nil
	}
	return nil, domain.ErrUnauthenticated
}

func newAuthContext(t *testing.T, header string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	svc := &stubAuthService{users: map[string]*domain.User{
		"tok123": {ID: "u1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleTechnician},
	}}
	c, _ := newAuthContext(t, "Bearer tok123")

	called := false
	handler := Auth(svc)(func(c echo.Context) error {
		called = true
		actor, _ := c.Get("actor").(domain.Actor)
		if actor.Name != "Ana" || actor.Role != domain.RoleTechnician {
			t.Fatalf("unexpected actor: %+v", actor)
		}
		if tok, _ := c.Get("token").(string); tok != "tok123" {
			t.Fatalf("token not injected, got %q", tok)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuth_BearerPrefixCaseInsensitive(t *testing.T) {
	svc := &stubAuthService{users: map[string]*domain.User{
		"tok123": {ID: "u1", Name: "Ana", Role: domain.RoleTechnician},
	}}
	c, _ := newAuthContext(t, "bearer tok123")

	handler := Auth(svc)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("lowercase bearer rejected: %v", err)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	c, _ := newAuthContext(t, "")

	handler := Auth(&stubAuthService{})(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	c, _ := newAuthContext(t, "tok123")

	handler := Auth(&stubAuthService{})(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_UnknownToken(t *testing.T) {
	svc := &stubAuthService{users: map[string]*domain.User{}}
	c, _ := newAuthContext(t, "Bearer revoked-or-expired")

	handler := Auth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
