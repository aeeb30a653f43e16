// Package customers manages the customer roster. Deleting a customer never
// cascades into sales: historical invoices keep their denormalized
// customer-name snapshot.
package customers

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
	ErrNotFound = errors.New("customer not found")
	ErrInvalid  = errors.New("invalid customer")
)

type Service struct {
	store store.Store
	mu    *sync.Mutex
}

func NewService(st store.Store, mu *sync.Mutex) *Service {
	return &Service{store: st, mu: mu}
}

func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.LoadCustomers(ctx)
}

type CustomerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *Service) CreateCustomer(ctx context.Context, in CustomerInput) (domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Customer{}, ErrInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return domain.Customer{}, err
	}

	customer := domain.Customer{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	}

	if err := s.store.SaveCustomers(ctx, append(customers, customer)); err != nil {
		return domain.Customer{}, err
	}

	return customer, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, in CustomerInput) (domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return domain.Customer{}, ErrInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return domain.Customer{}, err
	}

	for i := range customers {
		if customers[i].ID != id {
			continue
		}
		customers[i].Name = in.Name
		customers[i].Email = in.Email
		customers[i].Phone = in.Phone
		customers[i].Address = in.Address

		if err := s.store.SaveCustomers(ctx, customers); err != nil {
			return domain.Customer{}, err
		}
		return customers[i], nil
	}

	return domain.Customer{}, ErrNotFound
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers, err := s.store.LoadCustomers(ctx)
	if err != nil {
		return err
	}

	next := make([]domain.Customer, 0, len(customers))
	for _, c := range customers {
		if c.ID != id {
			next = append(next, c)
		}
	}
	if len(next) == len(customers) {
		return ErrNotFound
	}

	return s.store.SaveCustomers(ctx, next)
}

// SalesHistory returns the sales referencing a customer id. Sales made
// before a customer was deleted still show up for that id.
func (s *Service) SalesHistory(ctx context.Context, id string) ([]domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sales, err := s.store.LoadSales(ctx)
	if err != nil {
		return nil, err
	}

	history := []domain.Sale{}
	for _, sale := range sales {
		if sale.CustomerID == id {
			history = append(history, sale)
		}
	}

	return history, nil
}
