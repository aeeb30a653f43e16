package catalog

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/geraietalase/gerai-pos/internal/store/file"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	st, err := file.New(filepath.Join(t.TempDir(), "data.json"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	var mu sync.Mutex
	return NewService(st, &mu)
}

func TestCreateProduct(t *testing.T) {
	t.Run("appends a product with a generated id", func(t *testing.T) {
		svc := newTestService(t)

		product, err := svc.CreateProduct(t.Context(), ProductInput{Name: "USB Hub", SKU: "UH-005", Price: 150000, Stock: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.ID == "" {
			t.Error("expected a generated id")
		}

		products, err := svc.ListProducts(t.Context())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 5 {
			t.Errorf("expected 5 products, got %d", len(products))
		}
	})

	t.Run("rejects a duplicate sku", func(t *testing.T) {
		svc := newTestService(t)

		// LP-001 is taken by the seed laptop.
		_, err := svc.CreateProduct(t.Context(), ProductInput{Name: "Other", SKU: "LP-001", Price: 1, Stock: 1})
		if !errors.Is(err, ErrDuplicateSKU) {
			t.Fatalf("expected ErrDuplicateSKU, got %v", err)
		}
	})

	t.Run("sku comparison is case sensitive", func(t *testing.T) {
		svc := newTestService(t)

		if _, err := svc.CreateProduct(t.Context(), ProductInput{Name: "Other", SKU: "lp-001", Price: 1, Stock: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		svc := newTestService(t)

		for _, in := range []ProductInput{
			{Name: "", SKU: "X-1", Price: 1, Stock: 1},
			{Name: "X", SKU: "", Price: 1, Stock: 1},
			{Name: "X", SKU: "X-1", Price: -1, Stock: 1},
			{Name: "X", SKU: "X-1", Price: 1, Stock: -1},
		} {
			if _, err := svc.CreateProduct(t.Context(), in); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid for %+v, got %v", in, err)
			}
		}
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("updates fields in place", func(t *testing.T) {
		svc := newTestService(t)

		product, err := svc.UpdateProduct(t.Context(), "2", ProductInput{Name: "Wireless Mouse v2", SKU: "WM-002", Price: 450000, Stock: 40})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if product.Name != "Wireless Mouse v2" || product.Price != 450000 {
			t.Errorf("update not applied: %+v", product)
		}
	})

	t.Run("rejects a sku held by another product", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.UpdateProduct(t.Context(), "2", ProductInput{Name: "Mouse", SKU: "LP-001", Price: 1, Stock: 1})
		if !errors.Is(err, ErrDuplicateSKU) {
			t.Fatalf("expected ErrDuplicateSKU, got %v", err)
		}
	})

	t.Run("missing product fails", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.UpdateProduct(t.Context(), "missing", ProductInput{Name: "X", SKU: "X-1", Price: 1, Stock: 1})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteProduct(t *testing.T) {
	svc := newTestService(t)

	if err := svc.DeleteProduct(t.Context(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	products, err := svc.ListProducts(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 3 {
		t.Errorf("expected 3 products, got %d", len(products))
	}

	if err := svc.DeleteProduct(t.Context(), "1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
