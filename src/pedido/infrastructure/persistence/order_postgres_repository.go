package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SaGaSaBo/Catalogo-Cti-sub000/src/pedido/domain/entity"

	"github.com/lib/pq"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db *sql.DB
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db: db,
	}
}

// Save persiste un pedido con sus líneas en la base de datos (Aggregate)
func (r *OrderPostgresRepository) Save(ctx context.Context, order *entity.Order) error {
	// Transacción para garantizar atomicidad del aggregate
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar pedido (aggregate root)
	queryOrder := `
		INSERT INTO orders (
			order_id, order_number, customer_name, customer_email, customer_phone,
			declared_total, computed_total, item_count, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
	`

	_, err = tx.ExecContext(ctx, queryOrder,
		order.OrderID,
		order.OrderNumber,
		order.Customer.Name,
		order.Customer.Email,
		order.Customer.Phone,
		order.DeclaredTotal,
		order.ComputedTotal,
		order.ItemCount,
		order.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error saving order: %w", err)
	}

	// 2. Insertar líneas, conservando la posición para reconstruir el orden
	queryLine := `
		INSERT INTO order_lines (
			line_id, order_id, position, sku, title, brand, size,
			quantity, unit_price, line_total
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
	`

	for i, li := range order.LineItems {
		_, err = tx.ExecContext(ctx, queryLine,
			li.ID,
			order.OrderID,
			i,
			li.SKU,
			li.Title,
			li.Brand,
			li.Size,
			li.Quantity,
			li.UnitPrice,
			li.LineTotal,
		)

		if err != nil {
			return fmt.Errorf("error saving order line: %w", err)
		}
	}

	// Commit transacción
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// FindByID busca un pedido con sus líneas por su ID (load aggregate)
func (r *OrderPostgresRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	queryOrder := `
		SELECT order_id, order_number, customer_name, customer_email, customer_phone,
		       declared_total, computed_total, item_count, created_at
		FROM orders
		WHERE order_id = $1
	`

	order := &entity.Order{}
	err := r.db.QueryRowContext(ctx, queryOrder, orderID).Scan(
		&order.OrderID,
		&order.OrderNumber,
		&order.Customer.Name,
		&order.Customer.Email,
		&order.Customer.Phone,
		&order.DeclaredTotal,
		&order.ComputedTotal,
		&order.ItemCount,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding order: %w", err)
	}

	lines, err := r.findLines(ctx, []string{orderID})
	if err != nil {
		return nil, err
	}
	order.LineItems = lines[orderID]

	return order, nil
}

// List retorna una página de pedidos (más recientes primero) y el total
func (r *OrderPostgresRepository) List(ctx context.Context, page, pageSize int) ([]*entity.Order, int, error) {
	var totalCount int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting orders: %w", err)
	}

	query := `
		SELECT order_id, order_number, customer_name, customer_email, customer_phone,
		       declared_total, computed_total, item_count, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	var orderIDs []string
	for rows.Next() {
		order := &entity.Order{}
		err := rows.Scan(
			&order.OrderID,
			&order.OrderNumber,
			&order.Customer.Name,
			&order.Customer.Email,
			&order.Customer.Phone,
			&order.DeclaredTotal,
			&order.ComputedTotal,
			&order.ItemCount,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning order: %w", err)
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.OrderID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	if len(orderIDs) > 0 {
		lines, err := r.findLines(ctx, orderIDs)
		if err != nil {
			return nil, 0, err
		}
		for _, order := range orders {
			order.LineItems = lines[order.OrderID]
		}
	}

	return orders, totalCount, nil
}

// findLines carga las líneas de un conjunto de pedidos en una sola consulta
func (r *OrderPostgresRepository) findLines(ctx context.Context, orderIDs []string) (map[string][]entity.LineItem, error) {
	query := `
		SELECT order_id, line_id, sku, title, brand, size, quantity, unit_price, line_total
		FROM order_lines
		WHERE order_id = ANY($1)
		ORDER BY order_id, position
	`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("error loading order lines: %w", err)
	}
	defer rows.Close()

	lines := make(map[string][]entity.LineItem, len(orderIDs))
	for rows.Next() {
		var orderID string
		var li entity.LineItem
		err := rows.Scan(
			&orderID,
			&li.ID,
			&li.SKU,
			&li.Title,
			&li.Brand,
			&li.Size,
			&li.Quantity,
			&li.UnitPrice,
			&li.LineTotal,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning order line: %w", err)
		}
		lines[orderID] = append(lines[orderID], li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order lines: %w", err)
	}

	return lines, nil
}
