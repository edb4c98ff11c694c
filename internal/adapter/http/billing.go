package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"adloom/internal/core/domain"
	"adloom/internal/core/port"
)

type withdrawalResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	PhoneNumber string  `json:"phoneNumber"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

type transactionResponse struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"createdAt"`
}

// handleRequestWithdrawal records a payout request against referral
// earnings. Insufficient earnings map to 422.
func (h *Handler) handleRequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req port.WithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	wd, err := h.billing.RequestWithdrawal(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toWithdrawalResponse(*wd))
}

// handleListWithdrawals returns the user's withdrawal requests.
func (h *Handler) handleListWithdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.billing.ListWithdrawals(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]withdrawalResponse, len(list))
	for i, wd := range list {
		out[i] = toWithdrawalResponse(wd)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"withdrawals": out})
}

// handleListTransactions returns the ledger, newest first. An optional
// limit query parameter caps the page size.
func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}
	list, err := h.billing.ListTransactions(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]transactionResponse, len(list))
	for i, tr := range list {
		out[i] = transactionResponse{
			ID:          tr.ID,
			Amount:      float64(tr.AmountCents) / 100,
			Description: tr.Description,
			CreatedAt:   tr.CreatedAt.Format(time.RFC3339),
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"transactions": out})
}

func toWithdrawalResponse(wd domain.Withdrawal) withdrawalResponse {
	return withdrawalResponse{
		ID:          wd.ID,
		Amount:      float64(wd.AmountCents) / 100,
		PhoneNumber: wd.PhoneNumber,
		Status:      wd.Status,
		CreatedAt:   wd.CreatedAt.Format(time.RFC3339),
	}
}
