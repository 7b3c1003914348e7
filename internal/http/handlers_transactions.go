package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"khata/internal/core"
	"khata/internal/ledger"
	"khata/internal/services"
)

// amountField decodes a JSON amount given either as a bare number or as a
// string. The string form goes through core.ParseAmount and so also accepts
// a comma decimal separator.
type amountField struct {
	decimal.Decimal
}

func (a *amountField) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		d, err := core.ParseAmount(s)
		if err != nil {
			return err
		}
		a.Decimal = d
		return nil
	}
	return a.Decimal.UnmarshalJSON(data)
}

type createTransactionRequest struct {
	Description string               `json:"description"`
	Amount      amountField          `json:"amount"`
	Type        core.TransactionType `json:"type"`
	Account     core.Account         `json:"account"`
}

type updateTransactionRequest struct {
	Description string               `json:"description"`
	Amount      amountField          `json:"amount"`
	Type        core.TransactionType `json:"type"`
	Account     core.Account         `json:"account"`
	// Date carries only the target calendar day as YYYY-MM-DD; the record's
	// original time-of-day is preserved.
	Date string `json:"date"`
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	records := s.svc.List(r.Context())

	if r.URL.Query().Get("sort") == "date_desc" {
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Date.After(records[j].Date)
		})
	}

	if records == nil {
		records = []core.TransactionRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	record, err := s.svc.Create(r.Context(), ledger.CreateInput{
		Description: sanitizeInput(req.Description),
		Amount:      req.Amount.Decimal,
		Type:        req.Type,
		Account:     req.Account,
	})
	// A persistence failure still applies the mutation in memory, so cached
	// views are dropped regardless of the outcome.
	s.reportCache.Purge()
	if err != nil {
		writeMutationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req updateTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	existing, ok := s.svc.Get(r.Context(), id)
	if !ok {
		// An unknown id is not surfaced as a failure: the record is simply
		// gone and the client refreshes its list from the next read.
		slog.WarnContext(r.Context(), "Update for unknown record", "id", id)
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if req.Date == "" {
		writeError(w, http.StatusUnprocessableEntity, core.ErrMissingDate.Error())
		return
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "date must be formatted as YYYY-MM-DD")
		return
	}

	updated := core.TransactionRecord{
		ID:          id,
		Description: sanitizeInput(req.Description),
		Amount:      req.Amount.Decimal,
		Type:        req.Type,
		Account:     req.Account,
		Date:        core.MergeCalendarDay(existing.Date, day.Year(), day.Month(), day.Day()),
	}

	err = s.svc.Update(r.Context(), updated)
	s.reportCache.Purge()
	if err != nil {
		if services.IsNotFound(err) {
			slog.WarnContext(r.Context(), "Update for unknown record", "id", id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeMutationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := s.svc.Delete(r.Context(), id)
	s.reportCache.Purge()
	if err != nil {
		if services.IsNotFound(err) {
			slog.WarnContext(r.Context(), "Delete for unknown record", "id", id)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeMutationError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
