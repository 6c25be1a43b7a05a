package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/smart-erp/identity-service/internal/core/domain"
	"github.com/smart-erp/identity-service/internal/core/token"
)

var testTokenConfig = token.Config{
	Secret:   "secret",
	Issuer:   "smart-erp",
	Audience: "smart-erp-clients",
	TTL:      time.Hour,
}

func signedToken(t *testing.T, cfg token.Config) string {
	t.Helper()
	issuer, err := token.NewIssuer(cfg)
	if err != nil {
		t.Fatalf("new issuer: %v", err)
	}
	signed, err := issuer.Issue(&domain.User{
		Username: "alice",
		Role:     &domain.Role{Name: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return signed
}

func authMiddleware(t *testing.T) echo.MiddlewareFunc {
	t.Helper()
	validator, err := token.NewValidator(testTokenConfig)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return Auth(validator)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testTokenConfig))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := authMiddleware(t)(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get("role") != domain.RoleAdmin {
			t.Fatalf("role not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := authMiddleware(t)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := authMiddleware(t)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := authMiddleware(t)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	e := echo.New()

	cfg := testTokenConfig
	cfg.Issuer = "someone-else"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, cfg))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := authMiddleware(t)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
