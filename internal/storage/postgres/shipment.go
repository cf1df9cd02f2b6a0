package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/hoseki-store/joyeria/internal/domain/errors"
	"github.com/hoseki-store/joyeria/internal/domain/model"
)

const shipmentColumns = `id, shipment_date, status, order_id`

func (r *shipmentRepository) Create(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	created := *shipment
	const query = `INSERT INTO shipments (shipment_date, status, order_id) VALUES ($1, $2, $3) RETURNING id`
	err := r.storage.pool.QueryRow(ctx, query, shipment.ShipmentDate, shipment.Status, shipment.OrderID).
		Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return nil, domainErrors.ErrShipmentExists
			case foreignKeyViolation:
				return nil, domainErrors.ErrOrderNotFound
			}
		}
		return nil, err
	}
	return &created, nil
}

func (r *shipmentRepository) GetByID(ctx context.Context, id int64) (*model.Shipment, error) {
	return r.getWhere(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE id=$1`, id)
}

func (r *shipmentRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Shipment, error) {
	return r.getWhere(ctx, `SELECT `+shipmentColumns+` FROM shipments WHERE order_id=$1`, orderID)
}

func (r *shipmentRepository) getWhere(ctx context.Context, query string, args ...any) (*model.Shipment, error) {
	var sh model.Shipment
	err := r.storage.pool.QueryRow(ctx, query, args...).Scan(&sh.ID, &sh.ShipmentDate, &sh.Status, &sh.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrShipmentNotFound
		}
		return nil, err
	}
	return &sh, nil
}

func (r *shipmentRepository) List(ctx context.Context) ([]model.Shipment, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+shipmentColumns+` FROM shipments ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Shipment
	for rows.Next() {
		var sh model.Shipment
		if err := rows.Scan(&sh.ID, &sh.ShipmentDate, &sh.Status, &sh.OrderID); err != nil {
			return nil, err
		}
		result = append(result, sh)
	}
	return result, rows.Err()
}

// Update is deliberately permissive about status values: the legacy system
// allows any status to be set at any time.
func (r *shipmentRepository) Update(ctx context.Context, shipment *model.Shipment) (*model.Shipment, error) {
	const query = `UPDATE shipments SET shipment_date=$2, status=$3 WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, shipment.ID, shipment.ShipmentDate, shipment.Status)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, domainErrors.ErrShipmentNotFound
	}
	return r.GetByID(ctx, shipment.ID)
}

func (r *shipmentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM shipments WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrShipmentNotFound
	}
	return nil
}

// OrdersAwaitingDispatch lists paid orders that have no shipment yet, oldest
// first. Concurrent dispatchers are reconciled by the unique order_id
// constraint in CreateForOrder, so no row lock is needed here.
func (r *shipmentRepository) OrdersAwaitingDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	const query = `SELECT o.id, o.order_date, o.status, o.total, o.shipping_address, o.payment_method, o.user_id
                   FROM orders o
                   LEFT JOIN shipments s ON s.order_id = o.id
                   WHERE o.status = $1 AND s.id IS NULL
                   ORDER BY o.id
                   LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, model.OrderStatusPaid, limit)
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

// CreateForOrder races safely against other dispatchers: the conflict target
// is the unique order_id, and a losing insert simply reports created=false.
func (r *shipmentRepository) CreateForOrder(ctx context.Context, orderID int64, date time.Time) (*model.Shipment, bool, error) {
	const query = `INSERT INTO shipments (shipment_date, status, order_id)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (order_id) DO NOTHING
                   RETURNING id`
	sh := model.Shipment{
		ShipmentDate: date,
		Status:       model.ShipmentStatusPreparing,
		OrderID:      orderID,
	}
	err := r.storage.pool.QueryRow(ctx, query, sh.ShipmentDate, sh.Status, sh.OrderID).Scan(&sh.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, false, domainErrors.ErrOrderNotFound
		}
		return nil, false, err
	}
	return &sh, true, nil
}
