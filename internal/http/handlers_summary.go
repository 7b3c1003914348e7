package http

import (
	"net/http"

	"github.com/shopspring/decimal"

	"khata/internal/core"
)

type summaryResponse struct {
	core.Summary
	NetProfit decimal.Decimal `json:"netProfit"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary := s.svc.Summary(r.Context())
	writeJSON(w, http.StatusOK, summaryResponse{
		Summary:   summary,
		NetProfit: summary.NetProfit(),
	})
}
