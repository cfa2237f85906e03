package echo

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated user id set by the upstream auth layer.
const HeaderUserID = "X-User-ID"

const ownerIDKey = "owner_id"

// RequireOwner rejects requests without an authenticated user id.
func RequireOwner() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ownerID := strings.TrimSpace(c.Request().Header.Get(HeaderUserID))
			if ownerID == "" {
				return writeError(c, http.StatusUnauthorized, "unauthorized", "missing "+HeaderUserID+" header")
			}
			c.Set(ownerIDKey, ownerID)
			return next(c)
		}
	}
}

func ownerID(c echo.Context) string {
	id, _ := c.Get(ownerIDKey).(string)
	return id
}
