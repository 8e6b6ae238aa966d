package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopluxe/backend/internal/middleware"
	"github.com/shopluxe/backend/internal/model"
)

type profileResp struct {
	Success       bool   `json:"success"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	CreatedAt     string `json:"created_at"`
}

// Me returns the profile of the session's owner. The session middleware
// has already resolved the token, so this handler only shapes the
// response; hashes, codes and tokens stay out of it.
func Me(c echo.Context) error {
	u, ok := c.Get(middleware.ContextUserKey).(model.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, profileResp{
		Success:       true,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	})
}
