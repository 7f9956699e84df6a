package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SyedUsman-Dev/Biz-directory/internal/api/middleware"
)

// ctxUserID extracts the subject id injected by the Auth middleware. An empty
// value means the middleware did not run on this route; fail closed.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
