package handler

import (
	"context"  // provides context with cancellation for DB calls
	"net/http" // HTTP status codes and primitives
	"strings"  // string manipulation utilities
	"time"     // timeouts for DB calls and session expiry checks

	"github.com/google/uuid"      // UUID generation for document ids
	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/shopluxe/backend/internal/config"     // app configuration
	"github.com/shopluxe/backend/internal/model"      // persisted row types
	"github.com/shopluxe/backend/internal/repository" // DB repositories
	"github.com/shopluxe/backend/internal/utils"      // hashing and token helpers
)

// AuthHandler bundles dependencies for the signup / verify / login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type signupReq struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DeviceFingerprint string `json:"device_fingerprint"`
}
type verifyReq struct {
	Email            string `json:"email"`
	VerificationCode string `json:"verification_code"`
}
type loginReq struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DeviceFingerprint string `json:"device_fingerprint"`
}

type messageResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
type sessionResp struct {
	Success      bool   `json:"success"`
	SessionToken string `json:"session_token"`
	Message      string `json:"message"`
}

// Signup creates an unverified account and emails a 5-digit code.
// The response never includes the code; the only path to a session is
// echoing the code back through VerifyEmail.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	code, err := utils.NewVerificationCode()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generate code failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u := &model.User{
		ID:                uuid.NewString(),
		Email:             req.Email,
		PasswordHash:      hash,
		IPAddress:         c.RealIP(),
		DeviceFingerprint: req.DeviceFingerprint,
		EmailVerified:     false,
		VerificationCode:  &code,
		CreatedAt:         time.Now().UTC(),
	}
	if err := h.Users.Create(ctx, u); err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	dispatchEmail(verificationEmail(req.Email, code))

	return c.JSON(http.StatusOK, messageResp{
		Success: true,
		Message: "Account created. Please check your email for verification code.",
	})
}

// VerifyEmail consumes the verification code and issues the first
// session. The comparison is an exact string match; any mismatch leaves
// the stored state untouched.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u.VerificationCode == nil || *u.VerificationCode != req.VerificationCode {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid verification code"})
	}

	sess, err := utils.NewSession()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	if err := h.Users.MarkVerified(ctx, req.Email, sess.Token, sess.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	return c.JSON(http.StatusOK, sessionResp{
		Success:      true,
		SessionToken: sess.Token,
		Message:      "Email verified successfully",
	})
}

// Login checks the password against the stored bcrypt hash and either
// reuses or rotates the session. The email must already be verified;
// that is checked before the password so the error tells an unverified
// user what to do next.
//
// Auto-login rule: when the stored IP and device fingerprint both match
// the request and an unexpired session exists, the stored token is
// returned unchanged. This is a trust heuristic, not a security
// control: the fingerprint is client-supplied and trivially
// replayable.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !u.EmailVerified {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Please verify your email first"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid password"})
	}

	ip := c.RealIP()
	if u.IPAddress == ip && u.DeviceFingerprint == req.DeviceFingerprint && u.HasValidSession(time.Now().UTC()) {
		return c.JSON(http.StatusOK, sessionResp{
			Success:      true,
			SessionToken: *u.SessionToken,
			Message:      "Auto-login successful",
		})
	}

	sess, err := utils.NewSession()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}
	if err := h.Users.UpdateSession(ctx, req.Email, ip, req.DeviceFingerprint, sess.Token, sess.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save session failed"})
	}

	return c.JSON(http.StatusOK, sessionResp{
		Success:      true,
		SessionToken: sess.Token,
		Message:      "Login successful",
	})
}
