package pos

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

func testSales() []domain.Sale {
	return []domain.Sale{
		{
			ID:           "s1",
			CustomerID:   "c1",
			CustomerName: "John Doe",
			Date:         time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			Items:        []domain.SaleItem{{ProductID: "p1", ProductName: "Laptop", Quantity: 1, PriceAtSale: 1000, Total: 1000}},
			TotalAmount:  1000,
			Status:       domain.SaleStatusPending,
		},
		{
			ID:          "s2",
			CustomerID:  "c2",
			Date:        time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			TotalAmount: 500,
			Status:      domain.SaleStatusPaid,
		},
	}
}

func TestToggleStatus(t *testing.T) {
	t.Run("flips pending to paid and back", func(t *testing.T) {
		next, sale, err := ToggleStatus(testSales(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.Status != domain.SaleStatusPaid {
			t.Errorf("expected PAID, got %s", sale.Status)
		}

		next, sale, err = ToggleStatus(next, "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.Status != domain.SaleStatusPending {
			t.Errorf("expected PENDING, got %s", sale.Status)
		}
		if next[1].Status != domain.SaleStatusPaid {
			t.Errorf("other sale changed: %+v", next[1])
		}
	})

	t.Run("fails for a missing sale", func(t *testing.T) {
		_, _, err := ToggleStatus(testSales(), "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestEditSale(t *testing.T) {
	customers := []domain.Customer{
		{ID: "c1", Name: "John Doe"},
		{ID: "c2", Name: "Jane Smith"},
	}

	t.Run("applies scalar overrides and leaves items alone", func(t *testing.T) {
		newID := "INV-42"
		newDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		newTotal := int64(1234)
		newStatus := domain.SaleStatusPaid

		next, sale, err := EditSale(testSales(), "s1", SalePatch{
			ID:          &newID,
			Date:        &newDate,
			TotalAmount: &newTotal,
			Status:      &newStatus,
		}, customers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if sale.ID != "INV-42" || !sale.Date.Equal(newDate) || sale.TotalAmount != 1234 || sale.Status != domain.SaleStatusPaid {
			t.Errorf("patch not applied: %+v", sale)
		}
		// The total override is deliberately not reconciled with items.
		if len(sale.Items) != 1 || sale.Items[0].Total != 1000 {
			t.Errorf("items changed by edit: %+v", sale.Items)
		}
		if next[0].ID != "INV-42" {
			t.Errorf("collection not updated: %+v", next[0])
		}
	})

	t.Run("refreshes the customer name snapshot on customer change", func(t *testing.T) {
		newCustomer := "c2"

		_, sale, err := EditSale(testSales(), "s1", SalePatch{CustomerID: &newCustomer}, customers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sale.CustomerID != "c2" || sale.CustomerName != "Jane Smith" {
			t.Errorf("customer snapshot not refreshed: %+v", sale)
		}
	})

	t.Run("fails for an unknown customer", func(t *testing.T) {
		missing := "missing"

		sales := testSales()
		next, _, err := EditSale(sales, "s1", SalePatch{CustomerID: &missing}, customers)
		if !errors.Is(err, ErrUnknownCustomer) {
			t.Fatalf("expected ErrUnknownCustomer, got %v", err)
		}
		if !reflect.DeepEqual(next, sales) {
			t.Error("collection changed on failed edit")
		}
	})

	t.Run("fails for a missing sale and leaves the collection unchanged", func(t *testing.T) {
		status := domain.SaleStatusPaid

		sales := testSales()
		next, _, err := EditSale(sales, "missing", SalePatch{Status: &status}, customers)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if !reflect.DeepEqual(next, sales) {
			t.Error("collection changed on failed edit")
		}
	})
}

func TestDeleteSale(t *testing.T) {
	t.Run("removes the sale", func(t *testing.T) {
		next, err := DeleteSale(testSales(), "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(next) != 1 || next[0].ID != "s2" {
			t.Errorf("unexpected collection after delete: %+v", next)
		}
	})

	t.Run("fails for a missing sale", func(t *testing.T) {
		_, err := DeleteSale(testSales(), "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
