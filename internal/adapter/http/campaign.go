package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"adloom/internal/core/port"
)

// handleLaunchCampaign creates a campaign record from a chosen variant.
// The budget debit happens here; an insufficient balance is a 422.
func (h *Handler) handleLaunchCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.LaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	rec, err := h.sim.Launch(r.Context(), sessionID(r), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, rec)
}

// handleListCampaigns returns the session's records as last committed by
// the scheduler. The tickable flag tells clients whether anything still
// advances, so they know when to stop polling.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(r)
	recs := h.sim.List(r.Context(), sid)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"campaigns": recs,
		"tickable":  h.sim.Tickable(sid),
	})
}

type campaignHistoryResponse struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	Headline  string `json:"headline"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// handleCampaignHistory returns the durable campaign rows for the user,
// spanning every session that ever launched one.
func (h *Handler) handleCampaignHistory(w http.ResponseWriter, r *http.Request) {
	rows, err := h.sim.History(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignHistoryResponse, len(rows))
	for i, c := range rows {
		out[i] = campaignHistoryResponse{
			ID:        c.ID,
			UserName:  c.UserName,
			Headline:  c.Headline,
			Status:    string(c.Status),
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": out})
}
