package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/transaction-insights/internal/errs"
	"github.com/GregMSThompson/transaction-insights/pkg/helpers"
	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

func testRequest() *http.Request {
	return httptest.NewRequest(http.MethodGet, "/roxiler/statistics", nil).WithContext(helpers.TestCtx())
}

func TestHandleErrorMapping(t *testing.T) {
	dbErr := errs.NewDatabaseError("count", "failed to count transactions", errors.New("timeout"))

	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"invalid month", errs.NewInvalidMonthError(13), http.StatusBadRequest, "invalid_month", "Invalid month. Month must be between 1 and 12."},
		{"validation", errs.NewValidationError("page must be a positive integer"), http.StatusBadRequest, "invalid_input", "page must be a positive integer"},
		{"upstream", errs.NewUpstreamFetchError("seed dataset", 502, nil), http.StatusInternalServerError, "upstream_fetch_failed", msgSeed},
		{"bulk insert", errs.NewBulkInsertError("failed to insert transactions", nil), http.StatusInternalServerError, "bulk_insert_failed", msgSeed},
		{"combined", errs.NewCombinedQueryError(dbErr), http.StatusInternalServerError, "internal_error", msgInternal},
		{"database", dbErr, http.StatusInternalServerError, "internal_error", msgInternal},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error", msgInternal},
	}

	h := New(slog.New(logger.NewTestHandler(slog.LevelInfo)))
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.HandleError(rr, testRequest(), c.err)

			if rr.Code != c.status {
				t.Fatalf("status mismatch: got %d want %d", rr.Code, c.status)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("content type mismatch: %q", ct)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Code != c.code || body.Error != c.msg {
				t.Fatalf("body mismatch: %+v", body)
			}
		})
	}
}

func TestWriteSuccessWritesBareBody(t *testing.T) {
	h := New(slog.New(logger.NewTestHandler(slog.LevelInfo)))
	rr := httptest.NewRecorder()

	h.WriteSuccess(rr, testRequest(), http.StatusOK, []map[string]any{{"range": "0 - 100", "count": 1}})

	if rr.Code != http.StatusOK {
		t.Fatalf("status mismatch: %d", rr.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON array body: %v", err)
	}
	if len(body) != 1 || body[0]["range"] != "0 - 100" {
		t.Fatalf("body mismatch: %v", body)
	}
}
