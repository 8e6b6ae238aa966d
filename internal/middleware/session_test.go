package middleware

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopluxe/backend/internal/model"
	"github.com/shopluxe/backend/internal/repository"
)

var userCols = []string{
	"id", "email", "password_hash", "ip_address", "device_fingerprint",
	"email_verified", "verification_code", "session_token", "session_expires", "created_at",
}

func runSessionAuth(t *testing.T, db *sql.DB, authz string) (*httptest.ResponseRecorder, *model.User) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *model.User
	h := SessionAuth(repository.NewUserRepo(db))(func(c echo.Context) error {
		u, _ := c.Get(ContextUserKey).(model.User)
		seen = &u
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, seen
}

func TestSessionAuthValidToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(userCols).
		AddRow("u-1", "shopper@example.com", "$2a$hash", "203.0.113.9", "fp-abc",
			true, nil, "tok-123", time.Now().UTC().Add(time.Hour), time.Now().UTC())
	mock.ExpectQuery("SELECT (.+) FROM users WHERE session_token=").
		WithArgs("tok-123").
		WillReturnRows(rows)

	rec, seen := runSessionAuth(t, db, "Bearer tok-123")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "shopper@example.com", seen.Email)
}

func TestSessionAuthMissingHeader(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec, _ := runSessionAuth(t, db, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthUnknownToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE session_token=").
		WillReturnError(sql.ErrNoRows)

	rec, _ := runSessionAuth(t, db, "Bearer nope")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid session")
}

func TestSessionAuthExpiredSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(userCols).
		AddRow("u-1", "shopper@example.com", "$2a$hash", "203.0.113.9", "fp-abc",
			true, nil, "tok-123", time.Now().UTC().Add(-time.Minute), time.Now().UTC())
	mock.ExpectQuery("SELECT (.+) FROM users WHERE session_token=").
		WillReturnRows(rows)

	rec, _ := runSessionAuth(t, db, "Bearer tok-123")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "session expired")
}
