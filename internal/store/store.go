// Package store defines the persistence contract for the three record
// collections and the theme preference. Collections are the unit of
// persistence: loads return the full set and saves replace it wholesale.
package store

import (
	"context"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

type Store interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	SaveProducts(ctx context.Context, products []domain.Product) error

	LoadCustomers(ctx context.Context) ([]domain.Customer, error)
	SaveCustomers(ctx context.Context, customers []domain.Customer) error

	LoadSales(ctx context.Context) ([]domain.Sale, error)
	SaveSales(ctx context.Context, sales []domain.Sale) error

	// CommitCheckout replaces the products and sales collections in one
	// atomic commit. Checkout must not be split across SaveProducts and
	// SaveSales, a failure in between would break the stock invariant.
	CommitCheckout(ctx context.Context, products []domain.Product, sales []domain.Sale) error

	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}
