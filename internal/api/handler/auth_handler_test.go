package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/api/middleware"
	"github.com/mercadillo/storefront/internal/core/domain"
	"github.com/mercadillo/storefront/internal/core/ports"
)

type stubAuthService struct {
	token    string
	user     *domain.User
	err      error
	lastUser string
	lastPass string
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.User{Username: input.Username, Role: input.Role}, nil
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (string, *domain.User, error) {
	s.lastUser, s.lastPass = username, password
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	svc := &stubAuthService{token: "signed-token", user: &domain.User{Username: "alice", Role: domain.RoleStandard}}
	h := NewAuthHandler(svc, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"user":"alice","pass":"pass1234"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastUser != "alice" || svc.lastPass != "pass1234" {
		t.Fatalf("credentials not forwarded: %q/%q", svc.lastUser, svc.lastPass)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("token cookie not set")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value: %s", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("token cookie must be HttpOnly")
	}
	if cookie.MaxAge != 86400 {
		t.Fatalf("expected max-age 86400, got %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Login_InvalidCredentialsNoCookie(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"user":"alice","pass":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("no cookie must be set on failed login")
	}
}

func TestAuthHandler_Register_AggregatesValidationErrors(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 24*time.Hour, false)

	// Three failing fields in a single payload.
	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"user":"ab","name":"Alice Doe","rol":"standard","pass":"x","email":"not-an-email","edad":30}`)

	err := h.Register(c)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrDuplicateUser}, 24*time.Hour, false)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"user":"alice","name":"Alice Doe","rol":"standard","pass":"pass1234","email":"alice@example.com","edad":30}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, 24*time.Hour, false)

	c, rec := newAuthContext(t, http.MethodGet, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}

	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.TokenCookie {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("expected expiring token cookie")
	}
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}
