package pos

import (
	"time"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

// SalePatch carries administrative overrides for an existing sale. Nil
// fields are left untouched. Items are never patched; the totals override
// is an escape hatch for corrections and is deliberately not reconciled
// against the line items.
type SalePatch struct {
	ID          *string
	Date        *time.Time
	CustomerID  *string
	TotalAmount *int64
	Status      *domain.SaleStatus
}

// ToggleStatus flips a sale between PENDING and PAID.
func ToggleStatus(sales []domain.Sale, saleID string) ([]domain.Sale, domain.Sale, error) {
	idx := findSale(sales, saleID)
	if idx < 0 {
		return sales, domain.Sale{}, ErrNotFound
	}

	next := append([]domain.Sale(nil), sales...)
	if next[idx].Status == domain.SaleStatusPending {
		next[idx].Status = domain.SaleStatusPaid
	} else {
		next[idx].Status = domain.SaleStatusPending
	}
	return next, next[idx], nil
}

// EditSale applies a patch to an existing sale. A customer change also
// refreshes the denormalized customer name from the roster.
func EditSale(sales []domain.Sale, saleID string, patch SalePatch, customers []domain.Customer) ([]domain.Sale, domain.Sale, error) {
	idx := findSale(sales, saleID)
	if idx < 0 {
		return sales, domain.Sale{}, ErrNotFound
	}

	next := append([]domain.Sale(nil), sales...)
	sale := &next[idx]

	if patch.CustomerID != nil {
		customer := findCustomer(customers, *patch.CustomerID)
		if customer == nil {
			return sales, domain.Sale{}, ErrUnknownCustomer
		}
		sale.CustomerID = customer.ID
		sale.CustomerName = customer.Name
	}
	if patch.ID != nil {
		sale.ID = *patch.ID
	}
	if patch.Date != nil {
		sale.Date = *patch.Date
	}
	if patch.TotalAmount != nil {
		sale.TotalAmount = *patch.TotalAmount
	}
	if patch.Status != nil {
		sale.Status = *patch.Status
	}

	return next, *sale, nil
}

// DeleteSale removes a sale from the collection. Stock decremented by the
// original checkout is NOT restored; deletion is a historical record
// removal, not an inverse of checkout.
func DeleteSale(sales []domain.Sale, saleID string) ([]domain.Sale, error) {
	idx := findSale(sales, saleID)
	if idx < 0 {
		return sales, ErrNotFound
	}

	next := make([]domain.Sale, 0, len(sales)-1)
	next = append(next, sales[:idx]...)
	return append(next, sales[idx+1:]...), nil
}

func findSale(sales []domain.Sale, id string) int {
	for i := range sales {
		if sales[i].ID == id {
			return i
		}
	}
	return -1
}
