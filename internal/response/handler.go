package response

import (
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/transaction-insights/pkg/logger"
)

type ResponseHandler interface {
	WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any)
	WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string)
	HandleError(w http.ResponseWriter, r *http.Request, err error)
}

type responseHandler struct {
	Log *slog.Logger
}

func New(log *slog.Logger) *responseHandler {
	return &responseHandler{Log: log}
}

// logger prefers the request-scoped logger set by the logger middleware.
func (h *responseHandler) logger(r *http.Request) *slog.Logger {
	return logger.FromContextOr(r.Context(), h.Log)
}
