// Package file persists the record collections as a single JSON document
// on disk. Saves rewrite the whole document through a temp file and
// rename.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/store"
)

type document struct {
	Products  []domain.Product  `json:"products"`
	Customers []domain.Customer `json:"customers"`
	Sales     []domain.Sale     `json:"sales"`
	Theme     domain.Theme      `json:"theme"`
}

type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// New loads the document at path, seeding a fresh one when the file does
// not exist yet.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.doc = document{
			Products:  store.SeedProducts(),
			Customers: store.SeedCustomers(),
			Sales:     []domain.Sale{},
			Theme:     domain.ThemeLight,
		}
		if err := s.flush(); err != nil {
			return nil, fmt.Errorf("seed data file: %w", err)
		}
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}

	return s, nil
}

func (s *Store) LoadProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Product(nil), s.doc.Products...), nil
}

func (s *Store) SaveProducts(_ context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Products = append([]domain.Product(nil), products...)
	return s.flush()
}

func (s *Store) LoadCustomers(_ context.Context) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Customer(nil), s.doc.Customers...), nil
}

func (s *Store) SaveCustomers(_ context.Context, customers []domain.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Customers = append([]domain.Customer(nil), customers...)
	return s.flush()
}

func (s *Store) LoadSales(_ context.Context) ([]domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Sale(nil), s.doc.Sales...), nil
}

func (s *Store) SaveSales(_ context.Context, sales []domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Sales = append([]domain.Sale(nil), sales...)
	return s.flush()
}

// CommitCheckout replaces both collections under one lock and one file
// write, so a reader never observes the sale without the stock decrement.
func (s *Store) CommitCheckout(_ context.Context, products []domain.Product, sales []domain.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previousProducts, previousSales := s.doc.Products, s.doc.Sales
	s.doc.Products = append([]domain.Product(nil), products...)
	s.doc.Sales = append([]domain.Sale(nil), sales...)

	if err := s.flush(); err != nil {
		s.doc.Products, s.doc.Sales = previousProducts, previousSales
		return err
	}

	return nil
}

func (s *Store) LoadTheme(_ context.Context) (domain.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc.Theme == "" {
		return domain.ThemeLight, nil
	}
	return s.doc.Theme, nil
}

func (s *Store) SaveTheme(_ context.Context, theme domain.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Theme = theme
	return s.flush()
}

func (s *Store) flush() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".gerai-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
