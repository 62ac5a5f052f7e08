package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a missing account id means the
// middleware did not run on this route.
func ctxIdentity(c echo.Context) (id, email string, err error) {
	id, _ = c.Get("account_id").(string)
	if id == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	email, _ = c.Get("email").(string)
	return id, email, nil
}
