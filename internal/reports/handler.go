package reports

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/store"
)

// Handler serves the derived views. It takes the shared collection mutex
// so a report never observes a checkout halfway through.
type Handler struct {
	store  store.Store
	mu     *sync.Mutex
	logger *slog.Logger
}

func NewHandler(st store.Store, mu *sync.Mutex, logger *slog.Logger) *Handler {
	return &Handler{store: st, mu: mu, logger: logger}
}

func (h *Handler) HandleDashboardStats(w http.ResponseWriter, r *http.Request) {
	products, customers, sales, err := h.snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load collections", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, DashboardStats(products, customers, sales, time.Now().UTC()))
}

func (h *Handler) HandleRevenueByDate(w http.ResponseWriter, r *http.Request) {
	_, _, sales, err := h.snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load collections", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, RevenueByDate(sales))
}

func (h *Handler) HandleTopInventory(w http.ResponseWriter, r *http.Request) {
	n := DefaultTopInventory
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.writeError(w, http.StatusBadRequest, "invalid n")
			return
		}
		n = parsed
	}

	products, _, _, err := h.snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load collections", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, TopInventoryByValue(products, n))
}

type totalsResponse struct {
	domain.RevenueTotals
	InventoryValue int64 `json:"inventory_value"`
}

func (h *Handler) HandleTotals(w http.ResponseWriter, r *http.Request) {
	products, _, sales, err := h.snapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load collections", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, totalsResponse{
		RevenueTotals:  RevenueTotals(sales),
		InventoryValue: InventoryValue(products),
	})
}

func (h *Handler) snapshot(ctx context.Context) ([]domain.Product, []domain.Customer, []domain.Sale, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	products, err := h.store.LoadProducts(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	customers, err := h.store.LoadCustomers(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	sales, err := h.store.LoadSales(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	return products, customers, sales, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
