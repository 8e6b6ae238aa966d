package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/shopluxe/backend/internal/queue"
)

const testClientIP = "203.0.113.9"

func mysqlDupErr(key string) error {
	return errors.New("Error 1062 (23000): Duplicate entry 'x' for key '" + key + "'")
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// captureEmails reroutes outbound mail into a channel for the duration
// of one test. dispatchEmail publishes from a goroutine, so assertions
// must go through waitEmail rather than reading shared state.
func captureEmails(t *testing.T) <-chan queue.EmailRequestedEvent {
	t.Helper()
	ch := make(chan queue.EmailRequestedEvent, 4)
	orig := publishEmail
	publishEmail = func(_ context.Context, ev queue.EmailRequestedEvent) error {
		ch <- ev
		return nil
	}
	t.Cleanup(func() { publishEmail = orig })
	return ch
}

func waitEmail(t *testing.T, ch <-chan queue.EmailRequestedEvent) queue.EmailRequestedEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("expected an email dispatch, got none")
		return queue.EmailRequestedEvent{}
	}
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.RemoteAddr = testClientIP + ":52100"
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
