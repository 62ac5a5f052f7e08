package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/api/metrics"
	"github.com/userhub/account-service/internal/core/ports"
)

type AccountHandler struct {
	accounts ports.AccountService
}

func NewAccountHandler(accounts ports.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Register creates a new unconfirmed account and mails its OTP.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/auth/register [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accounts.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		Department: req.Department,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Message: "Registration Success.", Data: account})
}

// Login verifies credentials and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.accounts.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, successResponse{Message: "Login Success.", Data: tokenData{Token: token}})
}

// VerifyConfirm consumes a pending OTP and confirms the account.
//
// @Summary      Confirm an account with its OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      verifyOTPRequest  true  "Email and OTP"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/verify-otp [post]
func (h *AccountHandler) VerifyConfirm(c echo.Context) error {
	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.accounts.VerifyConfirm(c.Request().Context(), req.Email, req.OTP); err != nil {
		metrics.ConfirmationsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.ConfirmationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, successResponse{Message: "Account confirmed success."})
}

// ResendConfirmOTP rotates and re-mails the confirmation OTP.
//
// @Summary      Resend the confirmation OTP
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      resendOTPRequest  true  "Account email"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/resend-verify-otp [post]
func (h *AccountHandler) ResendConfirmOTP(c echo.Context) error {
	var req resendOTPRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.accounts.ResendConfirmOTP(c.Request().Context(), req.Email); err != nil {
		return err
	}

	metrics.OTPResendsTotal.Inc()
	return c.JSON(http.StatusOK, successResponse{Message: "Confirm otp sent."})
}

// Me echoes the identity decoded from the session token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	id, email, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{
		Message: "OK",
		Data:    identityData{ID: id, Email: email},
	})
}
