package sales

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/messaging"
	"github.com/geraietalase/gerai-pos/internal/pos"
)

var meter = otel.Meter("sales")

type Handler struct {
	service         *Service
	producer        *messaging.Producer
	logger          *slog.Logger
	checkoutCounter metric.Int64Counter
	revenueCounter  metric.Int64Counter
}

func NewHandler(service *Service, producer *messaging.Producer, logger *slog.Logger) (*Handler, error) {
	checkoutCounter, err := meter.Int64Counter("sales.checkouts",
		metric.WithDescription("Number of completed checkouts"),
	)
	if err != nil {
		return nil, err
	}

	revenueCounter, err := meter.Int64Counter("sales.revenue",
		metric.WithDescription("Revenue recorded at checkout, in minor currency units"),
	)
	if err != nil {
		return nil, err
	}

	return &Handler{
		service:         service,
		producer:        producer,
		logger:          logger,
		checkoutCounter: checkoutCounter,
		revenueCounter:  revenueCounter,
	}, nil
}

type checkoutRequest struct {
	CustomerID string         `json:"customer_id"`
	Lines      []CheckoutLine `json:"lines"`
}

func (h *Handler) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.service.Checkout(r.Context(), req.CustomerID, req.Lines, time.Now().UTC())
	if err != nil {
		h.writeDomainError(w, err, "checkout failed")
		return
	}

	if h.producer != nil {
		event := domain.SaleCreatedEvent{
			SaleID:       sale.ID,
			CustomerID:   sale.CustomerID,
			CustomerName: sale.CustomerName,
			TotalAmount:  sale.TotalAmount,
			Items:        sale.Items,
			Timestamp:    sale.Date,
		}
		if err := h.producer.Publish(r.Context(), sale.ID, event); err != nil {
			h.logger.Error("failed to publish sale created event", "error", err, "sale_id", sale.ID)
		}
	}

	h.checkoutCounter.Add(r.Context(), 1)
	h.revenueCounter.Add(r.Context(), sale.TotalAmount)

	h.logger.Info("sale created", "sale_id", sale.ID, "customer_id", sale.CustomerID, "total", sale.TotalAmount)
	h.writeJSON(w, http.StatusCreated, sale)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	sales, err := h.service.ListSales(r.Context())
	if err != nil {
		h.logger.Error("failed to list sales", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, sales)
}

func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing sale id")
		return
	}

	sale, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		h.writeDomainError(w, err, "toggle status failed")
		return
	}

	h.logger.Info("sale status toggled", "sale_id", sale.ID, "status", sale.Status)
	h.writeJSON(w, http.StatusOK, sale)
}

type editSaleRequest struct {
	ID          *string            `json:"id"`
	Date        *time.Time         `json:"date"`
	CustomerID  *string            `json:"customer_id"`
	TotalAmount *int64             `json:"total_amount"`
	Status      *domain.SaleStatus `json:"status"`
}

func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing sale id")
		return
	}

	var req editSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Status != nil && *req.Status != domain.SaleStatusPending && *req.Status != domain.SaleStatusPaid {
		h.writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	patch := pos.SalePatch{
		ID:          req.ID,
		Date:        req.Date,
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	}

	sale, err := h.service.EditSale(r.Context(), id, patch)
	if err != nil {
		h.writeDomainError(w, err, "edit sale failed")
		return
	}

	h.logger.Info("sale updated", "sale_id", sale.ID)
	h.writeJSON(w, http.StatusOK, sale)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing sale id")
		return
	}

	if err := h.service.DeleteSale(r.Context(), id); err != nil {
		h.writeDomainError(w, err, "delete sale failed")
		return
	}

	h.logger.Info("sale deleted", "sale_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// writeDomainError maps the recoverable sale errors onto status codes;
// anything unexpected is a 500.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, pos.ErrInsufficientStock), errors.Is(err, pos.ErrOutOfStock):
		h.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, pos.ErrEmptyCart), errors.Is(err, pos.ErrUnknownCustomer):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, pos.ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error(logMsg, "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
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
