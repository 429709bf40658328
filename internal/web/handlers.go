package web

import (
	"encoding/json"
	"net/http"

	"github.com/JonMunkholm/roster/internal/logging"
)

// handlePage runs the pipeline and renders the participants page.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rep, summary, err := s.service.Build(ctx)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	doc, err := rep.Render(ctx)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	logging.FromContext(ctx).Debug("page rendered", "run_id", summary.RunID, "bytes", len(doc))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(doc)
}

// handleSummary runs the pipeline and returns the counts as JSON.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	_, summary, err := s.service.Build(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, r, summary)
}

// handleHealth reports liveness. It does not read the input.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}

// writeJSON encodes v as JSON and writes it to w.
// Logs encoding errors since headers are already sent.
func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}
