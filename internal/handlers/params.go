package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/GregMSThompson/transaction-insights/internal/errs"
)

// queryInt reads an integer query parameter, using fallback when it is absent.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValidationError(fmt.Sprintf("%s must be an integer", key))
	}
	return v, nil
}
