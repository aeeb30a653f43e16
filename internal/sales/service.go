package sales

import (
	"context"
	"sync"
	"time"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/pos"
	"github.com/geraietalase/gerai-pos/internal/store"
)

// CheckoutLine is one requested cart line.
type CheckoutLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Service runs the sale operations as read-modify-write cycles over the
// store. The mutex is shared with the catalog and customer services; it is
// the single serializing boundary for all collection writes.
type Service struct {
	store store.Store
	mu    *sync.Mutex
}

func NewService(st store.Store, mu *sync.Mutex) *Service {
	return &Service{store: st, mu: mu}
}

func (s *Service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadSales(ctx)
}

// Checkout assembles a cart from the requested lines through the cart
// operations, so the same stock validation applies whether lines arrive one
// by one or all at once, and then commits the sale and the stock decrement
// as one store write.
func (s *Service) Checkout(ctx context.Context, customerID string, lines []CheckoutLine, now time.Time) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return domain.Sale{}, err
	}
	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return domain.Sale{}, err
	}
	sales, err := s.store.LoadSales(ctx)
	if err != nil {
		return domain.Sale{}, err
	}

	var cart pos.Cart
	for _, line := range lines {
		cart, err = pos.AddLine(cart, line.ProductID, products)
		if err != nil {
			return domain.Sale{}, err
		}
		if line.Quantity > 1 {
			cart, err = pos.SetLineQuantity(cart, lineIndex(cart, line.ProductID), line.Quantity, products)
			if err != nil {
				return domain.Sale{}, err
			}
		}
	}

	sale, nextProducts, nextSales, err := pos.Checkout(cart, customerID, customers, products, sales, now)
	if err != nil {
		return domain.Sale{}, err
	}

	if err := s.store.CommitCheckout(ctx, nextProducts, nextSales); err != nil {
		return domain.Sale{}, err
	}

	return sale, nil
}

func (s *Service) ToggleStatus(ctx context.Context, saleID string) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.store.LoadSales(ctx)
	if err != nil {
		return domain.Sale{}, err
	}

	next, sale, err := pos.ToggleStatus(sales, saleID)
	if err != nil {
		return domain.Sale{}, err
	}

	if err := s.store.SaveSales(ctx, next); err != nil {
		return domain.Sale{}, err
	}

	return sale, nil
}

func (s *Service) EditSale(ctx context.Context, saleID string, patch pos.SalePatch) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.store.LoadSales(ctx)
	if err != nil {
		return domain.Sale{}, err
	}
	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return domain.Sale{}, err
	}

	next, sale, err := pos.EditSale(sales, saleID, patch, customers)
	if err != nil {
		return domain.Sale{}, err
	}

	if err := s.store.SaveSales(ctx, next); err != nil {
		return domain.Sale{}, err
	}

	return sale, nil
}

func (s *Service) DeleteSale(ctx context.Context, saleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.store.LoadSales(ctx)
	if err != nil {
		return err
	}

	next, err := pos.DeleteSale(sales, saleID)
	if err != nil {
		return err
	}

	return s.store.SaveSales(ctx, next)
}

func lineIndex(cart pos.Cart, productID string) int {
	for i, line := range cart {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}
