package pos

import (
	"time"

	"github.com/google/uuid"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

// Checkout commits a cart into a new pending sale. Item name and price
// snapshots are taken here, from the current catalog. It returns the sale
// together with the replacement products and sales collections; the caller
// must persist both in one commit or neither. Inputs are never mutated, so
// a failed checkout leaves every collection exactly as it was.
func Checkout(cart Cart, customerID string, customers []domain.Customer, products []domain.Product, sales []domain.Sale, now time.Time) (domain.Sale, []domain.Product, []domain.Sale, error) {
	customer := findCustomer(customers, customerID)
	if customer == nil {
		return domain.Sale{}, nil, nil, ErrUnknownCustomer
	}
	if len(cart) == 0 {
		return domain.Sale{}, nil, nil, ErrEmptyCart
	}

	nextProducts := append([]domain.Product(nil), products...)

	items := make([]domain.SaleItem, 0, len(cart))
	var total int64
	for _, line := range cart {
		product := findProduct(nextProducts, line.ProductID)
		if product == nil {
			return domain.Sale{}, nil, nil, ErrNotFound
		}
		// Stale carts can request more than is left; the whole
		// checkout fails rather than driving stock negative.
		if product.Stock < line.Quantity {
			return domain.Sale{}, nil, nil, ErrInsufficientStock
		}
		product.Stock -= line.Quantity

		lineTotal := product.Price * int64(line.Quantity)
		items = append(items, domain.SaleItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			PriceAtSale: product.Price,
			Total:       lineTotal,
		})
		total += lineTotal
	}

	sale := domain.Sale{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Date:         now,
		Items:        items,
		TotalAmount:  total,
		Status:       domain.SaleStatusPending,
	}

	nextSales := append([]domain.Sale(nil), sales...)
	nextSales = append(nextSales, sale)

	return sale, nextProducts, nextSales, nil
}

func findCustomer(customers []domain.Customer, id string) *domain.Customer {
	for i := range customers {
		if customers[i].ID == id {
			return &customers[i]
		}
	}
	return nil
}
