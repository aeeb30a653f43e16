package domain

import "time"

type SaleCreatedEvent struct {
	SaleID       string     `json:"sale_id"`
	CustomerID   string     `json:"customer_id"`
	CustomerName string     `json:"customer_name"`
	TotalAmount  int64      `json:"total_amount"`
	Items        []SaleItem `json:"items"`
	Timestamp    time.Time  `json:"timestamp"`
}
