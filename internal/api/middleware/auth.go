package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-service/internal/core/service"
)

// Auth verifies the session token and injects the decoded identity into
// the echo context. The token is read from the x-auth-token header, with
// Authorization: Bearer accepted as a fallback. A missing token and a
// failing token surface different messages at the same 401 severity.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access denied. No token provided.")
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token.")
			}

			c.Set("account_id", identity.ID)
			c.Set("email", identity.Email)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	if token := c.Request().Header.Get("x-auth-token"); token != "" {
		return token
	}

	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
