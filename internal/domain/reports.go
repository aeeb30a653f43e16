package domain

import "time"

type DashboardStats struct {
	TotalProducts  int   `json:"total_products"`
	TotalCustomers int   `json:"total_customers"`
	MonthlySales   int64 `json:"monthly_sales"`
	LowStockCount  int   `json:"low_stock_count"`
}

// RevenuePoint is one calendar day of revenue. Date is midnight UTC;
// rendering it for a locale is presentation work.
type RevenuePoint struct {
	Date   time.Time `json:"date"`
	Amount int64     `json:"amount"`
}

type InventoryValuePoint struct {
	ProductName string `json:"product_name"`
	Value       int64  `json:"value"`
}

type RevenueTotals struct {
	TotalRevenue int64 `json:"total_revenue"`
	TotalPending int64 `json:"total_pending"`
}
