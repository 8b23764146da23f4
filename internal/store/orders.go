package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"log"

	"github.com/Pooja-Gajula/home-made/internal/models"
)

// OrderStore wraps put against the orders table. Like the user store, it
// never surfaces driver errors to its caller.
type OrderStore struct {
	DB *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{DB: db}
}

// Put persists a completed order. The item snapshot is stored as JSON next
// to the precomputed total. Returns false if the write failed; the order is
// then lost, which checkout treats as best effort.
func (s *OrderStore) Put(ctx context.Context, order *models.Order) bool {
	items, err := json.Marshal(order.Items)
	if err != nil {
		log.Printf("ERROR: Failed to marshal items for order %s: %v", order.OrderID, err)
		return false
	}

	query := `
		INSERT INTO orders (order_id, name, email, address, order_time, items, total)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = s.DB.ExecContext(ctx, query,
		order.OrderID,
		order.Name,
		order.Email,
		order.Address,
		order.OrderTime,
		items,
		order.Total,
	)
	if err != nil {
		log.Printf("ERROR: Failed to store order %s: %v", order.OrderID, err)
		return false
	}

	return true
}

// Get fetches a stored order by ID. Present for completeness of the
// adapter contract; the storefront itself only writes orders.
func (s *OrderStore) Get(ctx context.Context, orderID string) (*models.Order, bool) {
	query := `
		SELECT order_id, name, email, address, order_time, items, total
		FROM orders
		WHERE order_id = ?`

	var order models.Order
	var items []byte
	err := s.DB.QueryRowContext(ctx, query, orderID).Scan(
		&order.OrderID,
		&order.Name,
		&order.Email,
		&order.Address,
		&order.OrderTime,
		&items,
		&order.Total,
	)
	if err != nil {
		if err != sql.ErrNoRows {
			log.Printf("ERROR: Failed to look up order %s: %v", orderID, err)
		}
		return nil, false
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		log.Printf("ERROR: Failed to unmarshal items for order %s: %v", orderID, err)
		return nil, false
	}

	return &order, true
}
