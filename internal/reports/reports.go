// Package reports derives the dashboard and reporting views from the three
// record collections. Every function is pure: inputs are never mutated and
// unchanged inputs always yield identical output.
package reports

import (
	"sort"
	"time"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

// LowStockThreshold is the fixed stock level below which a product counts
// toward the dashboard's low stock alert.
const LowStockThreshold = 10

// DefaultTopInventory is the ranking size used by the top-inventory report.
const DefaultTopInventory = 5

// DashboardStats computes the headline numbers. Monthly sales cover the
// calendar month of now, compared by month and year in UTC.
func DashboardStats(products []domain.Product, customers []domain.Customer, sales []domain.Sale, now time.Time) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalProducts:  len(products),
		TotalCustomers: len(customers),
	}

	year, month, _ := now.UTC().Date()
	for _, sale := range sales {
		y, m, _ := sale.Date.UTC().Date()
		if y == year && m == month {
			stats.MonthlySales += sale.TotalAmount
		}
	}

	for _, product := range products {
		if product.Stock < LowStockThreshold {
			stats.LowStockCount++
		}
	}

	return stats
}

// RevenueByDate groups sale totals by UTC calendar date, ascending. Sales
// on the same date at different times merge into one point.
func RevenueByDate(sales []domain.Sale) []domain.RevenuePoint {
	byDate := make(map[time.Time]int64)
	for _, sale := range sales {
		y, m, d := sale.Date.UTC().Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		byDate[day] += sale.TotalAmount
	}

	points := make([]domain.RevenuePoint, 0, len(byDate))
	for day, amount := range byDate {
		points = append(points, domain.RevenuePoint{Date: day, Amount: amount})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// TopInventoryByValue ranks products by price*stock descending and keeps
// the first n. The sort is stable so ties keep catalog order.
func TopInventoryByValue(products []domain.Product, n int) []domain.InventoryValuePoint {
	points := make([]domain.InventoryValuePoint, 0, len(products))
	for _, product := range products {
		points = append(points, domain.InventoryValuePoint{
			ProductName: product.Name,
			Value:       product.Price * int64(product.Stock),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})

	if n >= 0 && len(points) > n {
		points = points[:n]
	}

	return points
}

// RevenueTotals partitions sale totals by payment status.
func RevenueTotals(sales []domain.Sale) domain.RevenueTotals {
	var totals domain.RevenueTotals
	for _, sale := range sales {
		switch sale.Status {
		case domain.SaleStatusPaid:
			totals.TotalRevenue += sale.TotalAmount
		case domain.SaleStatusPending:
			totals.TotalPending += sale.TotalAmount
		}
	}
	return totals
}

// InventoryValue sums price*stock over the whole catalog.
func InventoryValue(products []domain.Product) int64 {
	var total int64
	for _, product := range products {
		total += product.Price * int64(product.Stock)
	}
	return total
}
