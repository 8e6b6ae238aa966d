package handler

import (
	"database/sql"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopluxe/backend/internal/queue"
	"github.com/shopluxe/backend/internal/repository"
)

var affiliateCols = []string{
	"id", "email", "unique_code", "paypal_email", "commission_rate",
	"total_clicks", "total_sales", "commission_balance", "withdrawal_history", "created_at",
}

func newAffiliateHandler(t *testing.T) (*AffiliateHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewAffiliateHandler(repository.NewAffiliateRepo(db)), mock
}

func TestAffiliateSignup(t *testing.T) {
	h, mock := newAffiliateHandler(t)
	emails := captureEmails(t)

	mock.ExpectExec("INSERT INTO affiliates").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodPost, "/affiliate/signup",
		`{"email":"Partner@Example.com","paypal_email":"pay@example.com"}`)
	require.NoError(t, h.Signup(c))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	code, _ := body["affiliate_code"].(string)
	assert.Regexp(t, regexp.MustCompile(`^LUX\d{4}$`), code)

	ev := waitEmail(t, emails)
	assert.Equal(t, queue.EmailKindAffiliateWelcome, ev.Kind)
	assert.Equal(t, "partner@example.com", ev.To)
	assert.Contains(t, ev.Body, code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliateSignupRetriesCodeCollision(t *testing.T) {
	h, mock := newAffiliateHandler(t)
	captureEmails(t)

	mock.ExpectExec("INSERT INTO affiliates").
		WillReturnError(mysqlDupErr("affiliates.unique_code"))
	mock.ExpectExec("INSERT INTO affiliates").
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, rec := newJSONContext(http.MethodPost, "/affiliate/signup",
		`{"email":"partner@example.com","paypal_email":"pay@example.com"}`)
	require.NoError(t, h.Signup(c))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliateSignupGivesUpAfterRepeatedCollisions(t *testing.T) {
	h, mock := newAffiliateHandler(t)
	captureEmails(t)

	for i := 0; i < 5; i++ {
		mock.ExpectExec("INSERT INTO affiliates").
			WillReturnError(mysqlDupErr("affiliates.unique_code"))
	}

	c, rec := newJSONContext(http.MethodPost, "/affiliate/signup",
		`{"email":"partner@example.com","paypal_email":"pay@example.com"}`)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliateSignupDuplicateEmail(t *testing.T) {
	h, mock := newAffiliateHandler(t)
	captureEmails(t)

	mock.ExpectExec("INSERT INTO affiliates").
		WillReturnError(mysqlDupErr("affiliates.email"))

	c, rec := newJSONContext(http.MethodPost, "/affiliate/signup",
		`{"email":"partner@example.com","paypal_email":"pay@example.com"}`)
	require.NoError(t, h.Signup(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Affiliate already exists")
}

func TestAffiliateDashboard(t *testing.T) {
	h, mock := newAffiliateHandler(t)

	history := `[{"amount":120.5,"paypal_email":"pay@example.com","requested_at":"2026-08-01T10:00:00Z"}]`
	rows := sqlmock.NewRows(affiliateCols).
		AddRow("a-1", "partner@example.com", "LUX1234", "pay@example.com", 4.0,
			420, 23, 310.75, []byte(history), time.Now().UTC())
	mock.ExpectQuery("SELECT (.+) FROM affiliates WHERE unique_code=").
		WithArgs("LUX1234").
		WillReturnRows(rows)

	c, rec := newJSONContext(http.MethodGet, "/affiliate/LUX1234", "")
	c.SetParamNames("code")
	c.SetParamValues("LUX1234")
	require.NoError(t, h.Dashboard(c))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "LUX1234", body["affiliate_code"])
	assert.Equal(t, float64(420), body["total_clicks"])
	assert.Equal(t, float64(23), body["total_sales"])
	assert.Equal(t, 310.75, body["commission_balance"])
	// 23 confirmed sales sit in the second bonus tier: 4% + 2%.
	assert.Equal(t, 6.0, body["current_commission_rate"])
	assert.Len(t, body["withdrawal_history"], 1)
}

func TestAffiliateDashboardNotFound(t *testing.T) {
	h, mock := newAffiliateHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM affiliates WHERE unique_code=").
		WillReturnError(sql.ErrNoRows)

	c, rec := newJSONContext(http.MethodGet, "/affiliate/LUX9999", "")
	c.SetParamNames("code")
	c.SetParamValues("LUX9999")
	require.NoError(t, h.Dashboard(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Affiliate not found")
}
