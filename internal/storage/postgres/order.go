package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

// CreateFromCart runs the whole placement workflow inside one transaction:
// resolve the buyer, insert the header to obtain an id, then per item lock
// the product row, check and decrement stock, insert the line, and finally
// reconcile the order total. Any failure rolls the whole thing back, so no
// partial stock decrement ever survives.
func (r *orderRepository) CreateFromCart(ctx context.Context, userID int64, shippingAddress, paymentMethod string, items []model.CartItem) (*model.Order, error) {
	var order *model.Order

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var buyerID int64
		if err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id=$1`, userID).Scan(&buyerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrUserNotFound
			}
			return err
		}

		o := &model.Order{
			OrderDate:       time.Now(),
			Status:          model.OrderStatusPaid,
			ShippingAddress: shippingAddress,
			PaymentMethod:   paymentMethod,
			UserID:          userID,
		}

		// Header goes in first with a zero total: lines need the order id.
		const insertOrder = `INSERT INTO orders (order_date, status, total, shipping_address, payment_method, user_id)
                             VALUES ($1, $2, 0, $3, $4, $5) RETURNING id`
		if err := tx.QueryRow(ctx, insertOrder, o.OrderDate, o.Status, o.ShippingAddress, o.PaymentMethod, o.UserID).Scan(&o.ID); err != nil {
			return err
		}

		var total int64
		for _, item := range items {
			var (
				name  string
				price *int64
				stock int64
			)
			// Row lock holds off concurrent placements for the same product
			// until this transaction settles.
			const selectProduct = `SELECT name, price, stock FROM products WHERE id=$1 FOR UPDATE`
			err := tx.QueryRow(ctx, selectProduct, item.ProductID).Scan(&name, &price, &stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrProductNotFound
				}
				return err
			}

			if stock < item.Quantity {
				return &domainErrors.InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: name,
					Requested:   item.Quantity,
					Available:   stock,
				}
			}
			if price == nil {
				return domainErrors.ErrInvalidProductPrice
			}

			// Conditional decrement: even without the lock above, two
			// placements can never drive stock below zero.
			const decrementStock = `UPDATE products SET stock = stock - $2 WHERE id=$1 AND stock >= $2`
			tag, err := tx.Exec(ctx, decrementStock, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return &domainErrors.InsufficientStockError{
					ProductID:   item.ProductID,
					ProductName: name,
					Requested:   item.Quantity,
					Available:   stock,
				}
			}

			line := model.OrderLine{
				Quantity:  item.Quantity,
				Subtotal:  *price * item.Quantity,
				OrderID:   o.ID,
				ProductID: item.ProductID,
			}
			const insertLine = `INSERT INTO order_lines (quantity, subtotal, order_id, product_id)
                                VALUES ($1, $2, $3, $4) RETURNING id`
			if err := tx.QueryRow(ctx, insertLine, line.Quantity, line.Subtotal, line.OrderID, line.ProductID).Scan(&line.ID); err != nil {
				return err
			}

			o.Lines = append(o.Lines, line)
			total += line.Subtotal
		}

		// Second write to the same header row, not a second row.
		if _, err := tx.Exec(ctx, `UPDATE orders SET total=$2 WHERE id=$1`, o.ID, total); err != nil {
			return err
		}
		o.Total = total

		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, order_date, status, total, shipping_address, payment_method, user_id
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&o.ID, &o.OrderDate, &o.Status, &o.Total, &o.ShippingAddress, &o.PaymentMethod, &o.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}

	lines, err := r.linesOf(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines

	shipment, err := r.shipmentOf(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Shipment = shipment

	return &o, nil
}

func (r *orderRepository) linesOf(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	const query = `SELECT id, quantity, subtotal, order_id, product_id
                   FROM order_lines WHERE order_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderLine
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.ID, &l.Quantity, &l.Subtotal, &l.OrderID, &l.ProductID); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *orderRepository) shipmentOf(ctx context.Context, orderID int64) (*model.Shipment, error) {
	const query = `SELECT id, shipment_date, status, order_id FROM shipments WHERE order_id=$1`
	var sh model.Shipment
	err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&sh.ID, &sh.ShipmentDate, &sh.Status, &sh.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sh, nil
}

const orderColumns = `id, order_date, status, total, shipping_address, payment_method, user_id`

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.listWhere(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY order_date DESC, id DESC`)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.listWhere(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id=$1 ORDER BY order_date DESC, id DESC`, userID)
}

// ListByDateRange returns orders with order_date inside the inclusive range.
// An empty result is a legitimate empty slice, never an error.
func (r *orderRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]model.Order, error) {
	return r.listWhere(ctx, `SELECT `+orderColumns+` FROM orders WHERE order_date BETWEEN $1 AND $2 ORDER BY order_date, id`, start, end)
}

func (r *orderRepository) listWhere(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.Status, &o.Total, &o.ShippingAddress, &o.PaymentMethod, &o.UserID); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

// Update patches header fields only. Owner and lines are out of reach by
// construction: the statement simply does not touch them.
func (r *orderRepository) Update(ctx context.Context, id int64, patch model.OrderPatch) (*model.Order, error) {
	const query = `UPDATE orders SET
                       order_date = COALESCE($2, order_date),
                       status = COALESCE($3, status),
                       total = COALESCE($4, total),
                       shipping_address = COALESCE($5, shipping_address),
                       payment_method = COALESCE($6, payment_method)
                   WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id, patch.OrderDate, patch.Status, patch.Total, patch.ShippingAddress, patch.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrOrderNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes the order; lines and shipment go with it via FK cascade.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}
