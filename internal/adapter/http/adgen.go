package httpadapter

import (
	"encoding/json"
	"net/http"

	"adloom/internal/core/domain"
)

// handleGenerateAds drafts ad variants for the submitted brief. Upstream
// model failures never surface here: the usecase substitutes fallback
// variants, so the only client-visible failures are malformed JSON and
// validation errors.
func (h *Handler) handleGenerateAds(w http.ResponseWriter, r *http.Request) {
	var brief domain.AdBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	variants, err := h.adgen.Generate(r.Context(), brief)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"variants": variants})
}

// handleCompliance reviews one ad for policy compliance.
func (h *Handler) handleCompliance(w http.ResponseWriter, r *http.Request) {
	var in domain.ComplianceInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	report, err := h.adgen.ReviewCompliance(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}
