package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/core/domain"
	"github.com/userhub/account-service/internal/core/ports"
)

type stubAccountService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.RegisteredAccount, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	verifyFn   func(ctx context.Context, email, otp string) error
	resendFn   func(ctx context.Context, email string) error
}

func (s *stubAccountService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisteredAccount, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAccountService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAccountService) VerifyConfirm(ctx context.Context, email, otp string) error {
	return s.verifyFn(ctx, email, otp)
}

func (s *stubAccountService) ResendConfirmOTP(ctx context.Context, email string) error {
	return s.resendFn(ctx, email)
}

func newTestContext(t *testing.T, body string, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAccountHandler_Register_Success(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.RegisteredAccount, error) {
			if input.FirstName != "Ada" || input.Email != "ada@example.com" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.RegisteredAccount{
				ID: "acc_1", FirstName: input.FirstName, LastName: input.LastName, Email: input.Email,
			}, nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t,
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"s3cret1"}`,
		"/api/auth/register")

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Registration Success." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["id"] != "acc_1" || data["email"] != "ada@example.com" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, leaked := data["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAccountHandler_Register_ValidationDetail(t *testing.T) {
	stub := &stubAccountService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.RegisteredAccount, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t,
		`{"firstName":"Ada","email":"not-an-email","password":"short"}`,
		"/api/auth/register")

	err := h.Register(c)
	var fe *FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe.Fields["lastName"] == "" || fe.Fields["email"] == "" || fe.Fields["password"] == "" {
		t.Fatalf("missing field detail: %+v", fe.Fields)
	}
	if fe.First == "" {
		t.Fatalf("first message empty")
	}
}

func TestAccountHandler_Login_Success(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(_ context.Context, email, password string) (string, error) {
			if email != "ada@example.com" || password != "s3cret1" {
				t.Fatalf("unexpected credentials: %s", email)
			}
			return "signed-token", nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, `{"email":"ada@example.com","password":"s3cret1"}`, "/api/auth/login")
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Login Success." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	data := resp["data"].(map[string]any)
	if data["token"] != "signed-token" {
		t.Fatalf("token missing from response")
	}
}

func TestAccountHandler_Login_ErrorPassthrough(t *testing.T) {
	stub := &stubAccountService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrUnknownCredentials
		},
	}
	h := NewAccountHandler(stub)

	c, _ := newTestContext(t, `{"email":"ghost@example.com","password":"whatever1"}`, "/api/auth/login")
	if err := h.Login(c); !errors.Is(err, domain.ErrUnknownCredentials) {
		t.Fatalf("expected domain error passthrough, got %v", err)
	}
}

func TestAccountHandler_VerifyConfirm_Success(t *testing.T) {
	stub := &stubAccountService{
		verifyFn: func(_ context.Context, email, otp string) error {
			if email != "ada@example.com" || otp != "1234" {
				t.Fatalf("unexpected args: %s %s", email, otp)
			}
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, `{"email":"ada@example.com","otp":"1234"}`, "/api/auth/verify-otp")
	if err := h.VerifyConfirm(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Account confirmed success.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAccountHandler_ResendConfirmOTP_Success(t *testing.T) {
	stub := &stubAccountService{
		resendFn: func(_ context.Context, email string) error {
			if email != "ada@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return nil
		},
	}
	h := NewAccountHandler(stub)

	c, rec := newTestContext(t, `{"email":"ada@example.com"}`, "/api/auth/resend-verify-otp")
	if err := h.ResendConfirmOTP(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Confirm otp sent.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAccountHandler_Me(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	c, rec := newTestContext(t, "", "/api/auth/me")
	c.Set("account_id", "acc_1")
	c.Set("email", "ada@example.com")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["id"] != "acc_1" || data["email"] != "ada@example.com" {
		t.Fatalf("unexpected identity: %+v", data)
	}
}

func TestAccountHandler_Me_MissingClaims(t *testing.T) {
	h := NewAccountHandler(&stubAccountService{})

	c, _ := newTestContext(t, "", "/api/auth/me")
	err := h.Me(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
