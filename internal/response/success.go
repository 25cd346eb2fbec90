package response

import (
	"encoding/json"
	"net/http"
)

// WriteSuccess encodes data as the whole response body. Endpoints return
// their documented shapes directly, without an envelope.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Last-ditch logging; can't return an error now
		h.logger(r).Error("failed to encode success response", "error", err, "status", status)
	}
}
