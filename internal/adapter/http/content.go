package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"adloom/internal/core/domain"
)

type articleResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content,omitempty"`
	HTMLContent string   `json:"htmlContent,omitempty"`
	Keywords    []string `json:"keywords"`
	Slug        string   `json:"slug"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
}

// handleGenerateArticle generates and stores an SEO article.
func (h *Handler) handleGenerateArticle(w http.ResponseWriter, r *http.Request) {
	var brief domain.ArticleBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	art, err := h.content.GenerateArticle(r.Context(), brief)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toArticleResponse(*art, true))
}

// handleListArticles returns the newest articles without their bodies.
func (h *Handler) handleListArticles(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}
	list, err := h.content.ListArticles(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]articleResponse, len(list))
	for i, a := range list {
		out[i] = toArticleResponse(a, false)
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"articles": out})
}

// handleGetArticle returns one article by slug, body included.
func (h *Handler) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	art, err := h.content.GetArticle(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toArticleResponse(*art, true))
}

func toArticleResponse(a domain.Article, withBody bool) articleResponse {
	resp := articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Keywords:  a.Keywords,
		Slug:      a.Slug,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
	if withBody {
		resp.Content = a.Content
		resp.HTMLContent = a.HTMLContent
	}
	return resp
}
