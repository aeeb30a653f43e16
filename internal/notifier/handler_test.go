package notifier

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

type capturingSender struct {
	receipts []Receipt
}

func (s *capturingSender) Send(_ context.Context, receipt Receipt) error {
	s.receipts = append(s.receipts, receipt)
	return nil
}

func TestHandle(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("sends a receipt for a sale created event", func(t *testing.T) {
		sender := &capturingSender{}
		handler := NewHandler(sender, logger)

		payload := `{
			"sale_id": "s1",
			"customer_id": "c1",
			"customer_name": "John Doe",
			"total_amount": 2000,
			"items": [{"product_id": "p1", "product_name": "Laptop", "quantity": 2, "price_at_sale": 1000, "total": 2000}],
			"timestamp": "` + time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).Format(time.RFC3339) + `"
		}`

		if err := handler.Handle(t.Context(), []byte(payload)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(sender.receipts) != 1 {
			t.Fatalf("expected 1 receipt, got %d", len(sender.receipts))
		}
		receipt := sender.receipts[0]
		if receipt.To != "John Doe" {
			t.Errorf("unexpected recipient: %q", receipt.To)
		}
		if !strings.Contains(receipt.Body, "1 item(s)") || !strings.Contains(receipt.Body, "2000") {
			t.Errorf("unexpected body: %q", receipt.Body)
		}
	})

	t.Run("rejects a malformed payload", func(t *testing.T) {
		handler := NewHandler(&capturingSender{}, logger)

		if err := handler.Handle(t.Context(), []byte("not json")); err == nil {
			t.Error("expected error for malformed payload")
		}
	})

	t.Run("propagates sender failures", func(t *testing.T) {
		handler := NewHandler(failingSender{}, logger)

		err := handler.Handle(t.Context(), []byte(`{"sale_id": "s1"}`))
		if err == nil {
			t.Error("expected error when the sender fails")
		}
	})
}

type failingSender struct{}

func (failingSender) Send(context.Context, Receipt) error {
	return context.DeadlineExceeded
}
