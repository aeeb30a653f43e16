package pos

import (
	"errors"
	"testing"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Laptop", SKU: "LP-001", Price: 1000, Stock: 2},
		{ID: "p2", Name: "Mouse", SKU: "WM-002", Price: 250, Stock: 0},
		{ID: "p3", Name: "Keyboard", SKU: "KB-003", Price: 500, Stock: 10},
	}
}

func TestAddLine(t *testing.T) {
	t.Run("adds a new line with quantity 1", func(t *testing.T) {
		cart, err := AddLine(nil, "p1", testProducts())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart) != 1 {
			t.Fatalf("expected 1 line, got %d", len(cart))
		}
		if cart[0].ProductID != "p1" || cart[0].Quantity != 1 {
			t.Errorf("unexpected line: %+v", cart[0])
		}
	})

	t.Run("increments an existing line up to stock", func(t *testing.T) {
		products := testProducts()

		cart, err := AddLine(nil, "p1", products)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cart, err = AddLine(cart, "p1", products)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cart) != 1 || cart[0].Quantity != 2 {
			t.Fatalf("expected one line with quantity 2, got %+v", cart)
		}

		// Stock is 2, so a third unit must be rejected.
		rejected, err := AddLine(cart, "p1", products)
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if rejected[0].Quantity != 2 {
			t.Errorf("cart changed on rejected add: %+v", rejected)
		}
	})

	t.Run("rejects a new line for a product with zero stock", func(t *testing.T) {
		_, err := AddLine(nil, "p2", testProducts())
		if !errors.Is(err, ErrOutOfStock) {
			t.Fatalf("expected ErrOutOfStock, got %v", err)
		}
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		_, err := AddLine(nil, "missing", testProducts())
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("does not mutate the input cart", func(t *testing.T) {
		original := Cart{{ProductID: "p3", Quantity: 1}}

		if _, err := AddLine(original, "p3", testProducts()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if original[0].Quantity != 1 {
			t.Errorf("input cart was mutated: %+v", original)
		}
	})
}

func TestSetLineQuantity(t *testing.T) {
	t.Run("sets the quantity within stock", func(t *testing.T) {
		cart := Cart{{ProductID: "p3", Quantity: 1}}

		next, err := SetLineQuantity(cart, 0, 7, testProducts())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next[0].Quantity != 7 {
			t.Errorf("expected quantity 7, got %d", next[0].Quantity)
		}
	})

	t.Run("rejects quantities above stock", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 1}}

		next, err := SetLineQuantity(cart, 0, 3, testProducts())
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if next[0].Quantity != 1 {
			t.Errorf("cart changed on rejected update: %+v", next)
		}
	})

	t.Run("ignores quantities below 1", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 2}}

		next, err := SetLineQuantity(cart, 0, 0, testProducts())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next[0].Quantity != 2 {
			t.Errorf("expected quantity unchanged, got %d", next[0].Quantity)
		}
	})

	t.Run("rejects an out of range index", func(t *testing.T) {
		cart := Cart{{ProductID: "p1", Quantity: 1}}

		if _, err := SetLineQuantity(cart, 5, 1, testProducts()); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestRemoveLine(t *testing.T) {
	t.Run("removes the line unconditionally", func(t *testing.T) {
		cart := Cart{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p3", Quantity: 1},
		}

		next, err := RemoveLine(cart, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(next) != 1 || next[0].ProductID != "p3" {
			t.Errorf("unexpected cart after removal: %+v", next)
		}
		if len(cart) != 2 {
			t.Errorf("input cart was mutated: %+v", cart)
		}
	})

	t.Run("rejects an out of range index", func(t *testing.T) {
		if _, err := RemoveLine(Cart{}, 0); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
