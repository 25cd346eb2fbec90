package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GregMSThompson/transaction-insights/internal/errs"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

const (
	msgInternal = "Internal Server Error"
	msgSeed     = "Failed to initialize database"
)

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Error: message,
		Code:  code,
	}); err != nil {
		log := h.logger(r)
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := h.logger(r)

	var (
		monthErr    *errs.InvalidMonthError
		validErr    *errs.ValidationError
		upstreamErr *errs.UpstreamFetchError
		bulkErr     *errs.BulkInsertError
		combinedErr *errs.CombinedQueryError
		dbErr       *errs.DatabaseError
	)

	switch {
	case errors.As(err, &monthErr):
		log.Warn("invalid month", "month", monthErr.Month)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_month", monthErr.Message)

	case errors.As(err, &validErr):
		log.Warn("validation failed", "error", validErr.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", validErr.Message)

	case errors.As(err, &upstreamErr):
		log.Error("seed source fetch failed",
			"source", upstreamErr.Source,
			"status", upstreamErr.Status,
			"error", upstreamErr.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "upstream_fetch_failed", msgSeed)

	case errors.As(err, &bulkErr):
		log.Error("bulk insert failed", "error", bulkErr.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "bulk_insert_failed", msgSeed)

	case errors.As(err, &combinedErr):
		log.Error("combined query failed", "error", combinedErr.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error", msgInternal)

	case errors.As(err, &dbErr):
		log.Error("database error",
			"operation", dbErr.Operation,
			"error", dbErr.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error", msgInternal)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error", msgInternal)
	}
}
