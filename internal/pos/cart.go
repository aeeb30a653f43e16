package pos

import "github.com/geraietalase/gerai-pos/internal/domain"

// CartLine references a product by id only. Name and price are resolved
// against the catalog at checkout, so a price change between add-to-cart
// and checkout cannot leave a stale snapshot in the sale.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type Cart []CartLine

// AddLine adds one unit of the product to the cart. An existing line is
// incremented as long as the result does not exceed current stock; a new
// line requires at least one unit in stock. The catalog is not modified,
// stock is only committed at checkout.
func AddLine(cart Cart, productID string, products []domain.Product) (Cart, error) {
	product := findProduct(products, productID)
	if product == nil {
		return cart, ErrNotFound
	}

	for i, line := range cart {
		if line.ProductID != productID {
			continue
		}
		if line.Quantity+1 > product.Stock {
			return cart, ErrInsufficientStock
		}
		next := append(Cart(nil), cart...)
		next[i].Quantity++
		return next, nil
	}

	if product.Stock < 1 {
		return cart, ErrOutOfStock
	}

	next := append(Cart(nil), cart...)
	return append(next, CartLine{ProductID: productID, Quantity: 1}), nil
}

// SetLineQuantity replaces a line's quantity. Quantities below 1 are
// ignored; removal goes through RemoveLine.
func SetLineQuantity(cart Cart, idx, quantity int, products []domain.Product) (Cart, error) {
	if idx < 0 || idx >= len(cart) {
		return cart, ErrNotFound
	}
	if quantity < 1 {
		return cart, nil
	}

	product := findProduct(products, cart[idx].ProductID)
	if product == nil {
		return cart, ErrNotFound
	}
	if quantity > product.Stock {
		return cart, ErrInsufficientStock
	}

	next := append(Cart(nil), cart...)
	next[idx].Quantity = quantity
	return next, nil
}

func RemoveLine(cart Cart, idx int) (Cart, error) {
	if idx < 0 || idx >= len(cart) {
		return cart, ErrNotFound
	}

	next := make(Cart, 0, len(cart)-1)
	next = append(next, cart[:idx]...)
	return append(next, cart[idx+1:]...), nil
}

func findProduct(products []domain.Product, id string) *domain.Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}
