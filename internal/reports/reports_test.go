package reports

import (
	"reflect"
	"testing"
	"time"

	"github.com/geraietalase/gerai-pos/internal/domain"
)

func TestDashboardStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	products := []domain.Product{
		{ID: "p1", Stock: 5},
		{ID: "p2", Stock: 15},
	}
	customers := []domain.Customer{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}
	sales := []domain.Sale{
		{ID: "s1", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), TotalAmount: 1000},
		{ID: "s2", Date: time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC), TotalAmount: 500},
		{ID: "s3", Date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC), TotalAmount: 9000},
		// Same month last year must not count as this month.
		{ID: "s4", Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), TotalAmount: 7000},
	}

	stats := DashboardStats(products, customers, sales, now)

	if stats.TotalProducts != 2 {
		t.Errorf("expected 2 products, got %d", stats.TotalProducts)
	}
	if stats.TotalCustomers != 3 {
		t.Errorf("expected 3 customers, got %d", stats.TotalCustomers)
	}
	if stats.MonthlySales != 1500 {
		t.Errorf("expected monthly sales 1500, got %d", stats.MonthlySales)
	}
	if stats.LowStockCount != 1 {
		t.Errorf("expected low stock count 1, got %d", stats.LowStockCount)
	}
}

func TestRevenueByDate(t *testing.T) {
	sales := []domain.Sale{
		{ID: "s1", Date: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), TotalAmount: 300},
		{ID: "s2", Date: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), TotalAmount: 100},
		// Same calendar date, different time of day: merges with s1.
		{ID: "s3", Date: time.Date(2025, 6, 2, 18, 30, 0, 0, time.UTC), TotalAmount: 200},
	}

	points := RevenueByDate(sales)

	want := []domain.RevenuePoint{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Amount: 100},
		{Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Amount: 500},
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("unexpected points: %+v", points)
	}
}

func TestTopInventoryByValue(t *testing.T) {
	products := []domain.Product{
		{Name: "a", Price: 500, Stock: 1},
		{Name: "b", Price: 300, Stock: 1},
		{Name: "c", Price: 900, Stock: 1},
		{Name: "d", Price: 100, Stock: 1},
		{Name: "e", Price: 700, Stock: 1},
		{Name: "f", Price: 200, Stock: 1},
	}

	points := TopInventoryByValue(products, 5)

	wantValues := []int64{900, 700, 500, 300, 200}
	if len(points) != len(wantValues) {
		t.Fatalf("expected %d points, got %d", len(wantValues), len(points))
	}
	for i, want := range wantValues {
		if points[i].Value != want {
			t.Errorf("point %d: expected value %d, got %d", i, want, points[i].Value)
		}
	}

	t.Run("ties keep catalog order", func(t *testing.T) {
		tied := []domain.Product{
			{Name: "first", Price: 100, Stock: 1},
			{Name: "second", Price: 100, Stock: 1},
		}

		points := TopInventoryByValue(tied, 5)
		if points[0].ProductName != "first" || points[1].ProductName != "second" {
			t.Errorf("tie order not stable: %+v", points)
		}
	})

	t.Run("n larger than the catalog returns everything", func(t *testing.T) {
		points := TopInventoryByValue(products[:2], 5)
		if len(points) != 2 {
			t.Errorf("expected 2 points, got %d", len(points))
		}
	})
}

func TestRevenueTotals(t *testing.T) {
	sales := []domain.Sale{
		{Status: domain.SaleStatusPaid, TotalAmount: 1000},
		{Status: domain.SaleStatusPending, TotalAmount: 300},
		{Status: domain.SaleStatusPaid, TotalAmount: 200},
	}

	totals := RevenueTotals(sales)

	if totals.TotalRevenue != 1200 {
		t.Errorf("expected revenue 1200, got %d", totals.TotalRevenue)
	}
	if totals.TotalPending != 300 {
		t.Errorf("expected pending 300, got %d", totals.TotalPending)
	}
}

func TestInventoryValue(t *testing.T) {
	products := []domain.Product{
		{Price: 1000, Stock: 3},
		{Price: 500, Stock: 2},
	}

	if got := InventoryValue(products); got != 4000 {
		t.Errorf("expected 4000, got %d", got)
	}
}

func TestAggregationIsPure(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	products := []domain.Product{{ID: "p1", Name: "a", Price: 100, Stock: 5}}
	customers := []domain.Customer{{ID: "c1"}}
	sales := []domain.Sale{{ID: "s1", Date: now, TotalAmount: 100, Status: domain.SaleStatusPaid}}

	wantProducts := append([]domain.Product(nil), products...)
	wantSales := append([]domain.Sale(nil), sales...)

	first := DashboardStats(products, customers, sales, now)
	second := DashboardStats(products, customers, sales, now)
	if first != second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}

	RevenueByDate(sales)
	TopInventoryByValue(products, 5)
	RevenueTotals(sales)
	InventoryValue(products)

	if !reflect.DeepEqual(products, wantProducts) {
		t.Error("products mutated by aggregation")
	}
	if !reflect.DeepEqual(sales, wantSales) {
		t.Error("sales mutated by aggregation")
	}
}
