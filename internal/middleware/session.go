package middleware // middleware provides reusable HTTP middleware functions

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopluxe/backend/internal/repository"
)

// ContextUserKey is the echo context key the authenticated user is
// stored under by SessionAuth.
const ContextUserKey = "user"

// SessionAuth returns an Echo middleware that validates an opaque
// bearer session token against the users table. Sessions are plain
// random tokens, not claims tokens: the only way to validate one is to
// look it up and compare its stored expiry against the clock. On
// success the full user record is injected into the request context
// under ContextUserKey so handlers can read the account without a
// second query.
func SessionAuth(users *repository.UserRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			u, err := users.GetBySessionToken(c.Request().Context(), token)
			if err != nil {
				if err == repository.ErrUserNotFound {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
			}
			if !u.HasValidSession(time.Now().UTC()) {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "session expired"})
			}

			c.Set(ContextUserKey, u)
			return next(c)
		}
	}
}
