// Package catalog manages the product collection. Stock changes made by
// checkout go through the sales service; catalog edits are administrative.
package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/store"
)

var (
	ErrNotFound     = errors.New("product not found")
	ErrDuplicateSKU = errors.New("duplicate sku")
	ErrInvalid      = errors.New("invalid product")
)

type Service struct {
	store store.Store
	mu    *sync.Mutex
}

func NewService(st store.Store, mu *sync.Mutex) *Service {
	return &Service{store: st, mu: mu}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadProducts(ctx)
}

type ProductInput struct {
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.SKU) == "" {
		return ErrInvalid
	}
	if in.Price < 0 || in.Stock < 0 {
		return ErrInvalid
	}
	return nil
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	// SKU is unique within the collection, compared case-sensitively.
	for _, p := range products {
		if p.SKU == in.SKU {
			return domain.Product{}, ErrDuplicateSKU
		}
	}

	product := domain.Product{
		ID:    uuid.New().String(),
		Name:  in.Name,
		SKU:   in.SKU,
		Price: in.Price,
		Stock: in.Stock,
	}

	if err := s.store.SaveProducts(ctx, append(products, product)); err != nil {
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, in ProductInput) (domain.Product, error) {
	if err := in.validate(); err != nil {
		return domain.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return domain.Product{}, err
	}

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
		} else if p.SKU == in.SKU {
			return domain.Product{}, ErrDuplicateSKU
		}
	}
	if idx < 0 {
		return domain.Product{}, ErrNotFound
	}

	products[idx].Name = in.Name
	products[idx].SKU = in.SKU
	products[idx].Price = in.Price
	products[idx].Stock = in.Stock

	if err := s.store.SaveProducts(ctx, products); err != nil {
		return domain.Product{}, err
	}

	return products[idx], nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.store.LoadProducts(ctx)
	if err != nil {
		return err
	}

	next := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(products) {
		return ErrNotFound
	}

	return s.store.SaveProducts(ctx, next)
}
