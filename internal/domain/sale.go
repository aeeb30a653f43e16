package domain

import "time"

type SaleStatus string

const (
	SaleStatusPending SaleStatus = "PENDING"
	SaleStatusPaid    SaleStatus = "PAID"
)

// SaleItem is a line of a sale. ProductName and PriceAtSale are snapshots
// taken at checkout so later catalog edits never rewrite history.
type SaleItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	PriceAtSale int64  `json:"price_at_sale"`
	Total       int64  `json:"total"`
}

// Sale is an immutable invoice record. CustomerName is denormalized at
// checkout for the same reason as the item snapshots. Items never change
// after creation; only the scalar fields may be overridden through the
// administrative edit path.
type Sale struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	Date         time.Time  `json:"date"`
	Items        []SaleItem `json:"items"`
	TotalAmount  int64      `json:"total_amount"`
	Status       SaleStatus `json:"status"`
}
