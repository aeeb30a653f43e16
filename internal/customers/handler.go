package customers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.logger.Error("failed to list customers", "error", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, customers)
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), in)
	if err != nil {
		h.writeDomainError(w, err, "create customer failed")
		return
	}

	h.logger.Info("customer created", "customer_id", customer.ID)
	h.writeJSON(w, http.StatusCreated, customer)
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing customer id")
		return
	}

	var in CustomerInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), id, in)
	if err != nil {
		h.writeDomainError(w, err, "update customer failed")
		return
	}

	h.logger.Info("customer updated", "customer_id", customer.ID)
	h.writeJSON(w, http.StatusOK, customer)
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing customer id")
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		h.writeDomainError(w, err, "delete customer failed")
		return
	}

	h.logger.Info("customer deleted", "customer_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSalesHistory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "missing customer id")
		return
	}

	history, err := h.service.SalesHistory(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to load sales history", "error", err, "customer_id", id)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.writeJSON(w, http.StatusOK, history)
}

func (h *Handler) writeDomainError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, ErrInvalid):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
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
