package httpadapter

import (
	"net/http"
	"time"

	"adloom/internal/core/domain"
)

type dashboardResponse struct {
	Balance          float64              `json:"balance"`
	ActiveCampaigns  int                  `json:"activeCampaigns"`
	ReferralEarnings float64              `json:"referralEarnings"`
	TotalAdSpend     float64              `json:"totalAdSpend"`
	Degraded         bool                 `json:"degraded,omitempty"`
	NewTransaction   *transactionResponse `json:"newTransaction,omitempty"`
}

// handleDashboard returns the aggregated overview figures. The one-shot
// new-transaction hand-off from the billing flow is consumed here: it
// appears in exactly one response.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	m := h.dashboard.Metrics(r.Context(), sid)

	resp := dashboardResponse{
		Balance:          m.Balance,
		ActiveCampaigns:  m.ActiveCampaigns,
		ReferralEarnings: m.ReferralEarnings,
		TotalAdSpend:     m.TotalAdSpend,
		Degraded:         m.Degraded,
	}
	if tr := h.dashboard.TakeNewTransaction(sid); tr != nil {
		resp.NewTransaction = newTransactionResponse(*tr)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func newTransactionResponse(tr domain.Transaction) *transactionResponse {
	return &transactionResponse{
		ID:          tr.ID,
		Amount:      float64(tr.AmountCents) / 100,
		Description: tr.Description,
		CreatedAt:   tr.CreatedAt.Format(time.RFC3339),
	}
}
