// Package postgres persists the record collections in PostgreSQL while
// keeping the whole-collection-replace contract: every save deletes and
// reinserts the full set inside one transaction.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/geraietalase/gerai-pos/internal/domain"
	"github.com/geraietalase/gerai-pos/internal/store"
)

type Store struct {
	db *sql.DB
}

// New wraps an open database handle and runs the first-run bootstrap: on a
// fresh database the seed products and customers are written once.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.bootstrap(ctx); err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return s, nil
}

func (s *Store) bootstrap(ctx context.Context) error {
	var bootstrapped bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM settings WHERE key = 'bootstrapped')
	`).Scan(&bootstrapped)
	if err != nil {
		return err
	}
	if bootstrapped {
		return nil
	}

	if err := s.SaveProducts(ctx, store.SeedProducts()); err != nil {
		return err
	}
	if err := s.SaveCustomers(ctx, store.SeedCustomers()); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('bootstrapped', 'true')
		ON CONFLICT (key) DO NOTHING
	`)
	return err
}

func (s *Store) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sku, price, stock
		FROM products
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Store) SaveProducts(ctx context.Context, products []domain.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := replaceProducts(ctx, tx, products); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) LoadCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, address
		FROM customers
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

func (s *Store) SaveCustomers(ctx context.Context, customers []domain.Customer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM customers`); err != nil {
		return err
	}

	for i, c := range customers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO customers (id, name, email, phone, address, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c.ID, c.Name, c.Email, c.Phone, c.Address, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *Store) LoadSales(ctx context.Context) ([]domain.Sale, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, customer_name, date, total_amount, status
		FROM sales
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	saleMap := make(map[string]*domain.Sale)
	var saleIDs []string

	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(&sale.ID, &sale.CustomerID, &sale.CustomerName, &sale.Date, &sale.TotalAmount, &sale.Status); err != nil {
			return nil, err
		}
		sale.Items = []domain.SaleItem{}
		saleMap[sale.ID] = &sale
		saleIDs = append(saleIDs, sale.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(saleIDs) == 0 {
		return []domain.Sale{}, nil
	}

	itemRows, err := s.db.QueryContext(ctx, `
		SELECT sale_id, product_id, product_name, quantity, price_at_sale, total
		FROM sale_items
		WHERE sale_id = ANY($1)
		ORDER BY sale_id, position
	`, pq.Array(saleIDs))
	if err != nil {
		return nil, err
	}
	defer func() { _ = itemRows.Close() }()

	for itemRows.Next() {
		var saleID string
		var item domain.SaleItem
		if err := itemRows.Scan(&saleID, &item.ProductID, &item.ProductName, &item.Quantity, &item.PriceAtSale, &item.Total); err != nil {
			return nil, err
		}
		sale := saleMap[saleID]
		sale.Items = append(sale.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	sales := make([]domain.Sale, 0, len(saleIDs))
	for _, id := range saleIDs {
		sales = append(sales, *saleMap[id])
	}

	return sales, nil
}

func (s *Store) SaveSales(ctx context.Context, sales []domain.Sale) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := replaceSales(ctx, tx, sales); err != nil {
		return err
	}

	return tx.Commit()
}

// CommitCheckout writes the post-checkout products and sales collections
// in a single transaction, so the sale append and the stock decrement land
// together or not at all.
func (s *Store) CommitCheckout(ctx context.Context, products []domain.Product, sales []domain.Sale) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := replaceProducts(ctx, tx, products); err != nil {
		return err
	}
	if err := replaceSales(ctx, tx, sales); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) LoadTheme(ctx context.Context) (domain.Theme, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM settings WHERE key = 'theme'
	`).Scan(&value)
	if err == sql.ErrNoRows {
		return domain.ThemeLight, nil
	}
	if err != nil {
		return "", err
	}
	return domain.Theme(value), nil
}

func (s *Store) SaveTheme(ctx context.Context, theme domain.Theme) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES ('theme', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, string(theme))
	return err
}

func replaceProducts(ctx context.Context, tx *sql.Tx, products []domain.Product) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return err
	}

	for i, p := range products {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (id, name, sku, price, stock, position)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, p.ID, p.Name, p.SKU, p.Price, p.Stock, i)
		if err != nil {
			return err
		}
	}

	return nil
}

func replaceSales(ctx context.Context, tx *sql.Tx, sales []domain.Sale) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM sales`); err != nil {
		return err
	}

	for i, sale := range sales {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sales (id, customer_id, customer_name, date, total_amount, status, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, sale.ID, sale.CustomerID, sale.CustomerName, sale.Date, sale.TotalAmount, sale.Status, i)
		if err != nil {
			return err
		}

		for j, item := range sale.Items {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO sale_items (sale_id, position, product_id, product_name, quantity, price_at_sale, total)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, sale.ID, j, item.ProductID, item.ProductName, item.Quantity, item.PriceAtSale, item.Total)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
