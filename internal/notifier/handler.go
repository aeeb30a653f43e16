// Package notifier turns sale.created events into customer receipts.
package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

type Receipt struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers a receipt. The default implementation only logs; a real
// mail or SMS gateway plugs in here.
type Sender interface {
	Send(ctx context.Context, receipt Receipt) error
}

type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, receipt Receipt) error {
	s.logger.Info("receipt sent", "to", receipt.To, "subject", receipt.Subject)
	return nil
}

type Handler struct {
	sender Sender
	logger *slog.Logger
}

func NewHandler(sender Sender, logger *slog.Logger) *Handler {
	return &Handler{sender: sender, logger: logger}
}

func (h *Handler) Handle(ctx context.Context, payload []byte) error {
	var event domain.SaleCreatedEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("unmarshal sale created event: %w", err)
	}

	h.logger.Info("processing sale created event", "sale_id", event.SaleID, "customer_id", event.CustomerID)

	receipt := Receipt{
		To:      event.CustomerName,
		Subject: "Invoice " + event.SaleID,
		Body:    fmt.Sprintf("Invoice %s for %s: %d item(s), total %d.", event.SaleID, event.CustomerName, len(event.Items), event.TotalAmount),
	}

	if err := h.sender.Send(ctx, receipt); err != nil {
		h.logger.Error("failed to send receipt", "error", err, "sale_id", event.SaleID)
		return fmt.Errorf("send receipt: %w", err)
	}

	return nil
}
