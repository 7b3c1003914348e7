package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"khata/internal/core"
	"khata/internal/ledger"
)

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeDecodeError distinguishes a bad amount, which is a validation failure
// like any other, from a body that does not decode at all.
func writeDecodeError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrInvalidAmount) {
		writeError(w, http.StatusUnprocessableEntity, core.ErrInvalidAmount.Error())
		return
	}
	writeError(w, http.StatusBadRequest, "invalid request body")
}

// isValidationError reports whether err is one of the record validation
// failures that should surface as 422.
func isValidationError(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrEmptyDescription) ||
		errors.Is(err, core.ErrInvalidType) ||
		errors.Is(err, core.ErrInvalidAccount) ||
		errors.Is(err, core.ErrMissingDate)
}

// writeMutationError maps store errors onto responses. Persistence failures
// mean the change is applied in memory but may not survive a restart, and
// the client is told so.
func writeMutationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case isValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ledger.ErrPersistence):
		slog.ErrorContext(r.Context(), "Snapshot write failed", "error", err)
		writeError(w, http.StatusInternalServerError, "change applied but could not be saved to storage")
	default:
		slog.ErrorContext(r.Context(), "Mutation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
