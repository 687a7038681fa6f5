package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moneta-dev/moneta/internal/ledger"
	"github.com/moneta-dev/moneta/internal/report"
)

type Handler struct {
	reports *report.Service
	ledger  *ledger.Service
}

func NewHandler(reports *report.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{reports: reports, ledger: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Get("/activity", h.activity)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summarize(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) activity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.ledger.RecentActivity(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(entries); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
