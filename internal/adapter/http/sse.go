package httpadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"adloom/internal/core/port"
)

// SSEHub fans lifecycle events out to Server-Sent-Events subscribers,
// keyed by session id. It implements port.EventPublisher so the scheduler
// can publish into it directly. Slow subscribers are skipped rather than
// blocking the tick loop.
type SSEHub struct {
	mu      sync.RWMutex
	clients map[string]map[chan []byte]struct{}
	logger  *slog.Logger
}

// NewSSEHub creates an empty hub.
func NewSSEHub(logger *slog.Logger) *SSEHub {
	return &SSEHub{
		clients: make(map[string]map[chan []byte]struct{}),
		logger:  logger,
	}
}

// Subscribe registers a subscriber for one session and returns its channel
// plus an unsubscribe function.
func (h *SSEHub) Subscribe(sessionID string) (<-chan []byte, func()) {
	ch := make(chan []byte, 16)

	h.mu.Lock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[chan []byte]struct{})
	}
	h.clients[sessionID][ch] = struct{}{}
	h.mu.Unlock()

	return ch, func() {
		h.mu.Lock()
		if subs := h.clients[sessionID]; subs != nil {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(h.clients, sessionID)
			}
		}
		h.mu.Unlock()
	}
}

// Publish implements port.EventPublisher.
func (h *SSEHub) Publish(_ context.Context, ev port.StatusChange) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.clients[ev.SessionID] {
		select {
		case ch <- body:
		default:
			// subscriber is not draining; drop the event for it
		}
	}
	return nil
}

// handleCampaignStream streams lifecycle transitions for the session as
// SSE. The subscription is torn down when the client disconnects.
func (h *Handler) handleCampaignStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events, unsubscribe := h.hub.Subscribe(sessionID(r))
	defer unsubscribe()

	flusher.Flush()
	for {
		select {
		case <-r.Context().Done():
			return
		case body, open := <-events:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: status\ndata: %s\n\n", body)
			flusher.Flush()
		}
	}
}
