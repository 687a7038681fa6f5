package debt

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/moneta-dev/moneta/internal/debt"
	"github.com/moneta-dev/moneta/internal/ledger"
)

type Handler struct {
	svc    *debt.Service
	ledger *ledger.Service
}

func NewHandler(svc *debt.Service, ledgerSvc *ledger.Service) *Handler {
	return &Handler{svc: svc, ledger: ledgerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Get("/{id}/history", h.history)
	r.Post("/{id}/repay", h.repay)
}

type createDebtRequest struct {
	Name         string `json:"name"`
	TotalAmount  string `json:"totalAmount"`
	PaidAmount   string `json:"paidAmount"`
	DueDate      string `json:"dueDate"`
	Creditor     string `json:"creditor"`
	CreditorCard string `json:"creditorCard"`
	Note         string `json:"note"`
}

func (r createDebtRequest) params() debt.CreateParams {
	return debt.CreateParams{
		Name:         r.Name,
		TotalAmount:  r.TotalAmount,
		PaidAmount:   r.PaidAmount,
		DueDate:      r.DueDate,
		Creditor:     r.Creditor,
		CreditorCard: r.CreditorCard,
		Note:         r.Note,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Create(r.Context(), req.params())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(*d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	debts, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(debts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(*d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req createDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Update(r.Context(), id, req.params())
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(*d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	entries, err := h.ledger.DebtHistory(r.Context(), id)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(entries); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type repayRequest struct {
	Amount string `json:"amount"`
	CardID string `json:"cardId"`
	Note   string `json:"note"`
}

func (h *Handler) repay(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req repayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.ledger.RepayDebt(r.Context(), id, ledger.TransferParams{
		Amount: req.Amount,
		CardID: req.CardID,
		Note:   req.Note,
	})
	if err != nil {
		writeRepayError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(repayResponse{
		Card: result.Card,
		Debt: toResponse(result.Debt),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeRepayError(w http.ResponseWriter, err error) {
	var failure *ledger.Failure
	if errors.As(err, &failure) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)

		if err := json.NewEncoder(w).Encode(map[string]string{
			"error":   string(failure.Kind),
			"message": failure.Message(),
		}); err != nil {
			slog.Error("failed to encode response", "error", err)
		}

		return
	}

	if errors.Is(err, debt.ErrNotFound) {
		http.Error(w, "debt not found", http.StatusNotFound)
		return
	}

	http.Error(w, "internal error", http.StatusInternalServerError)
}
