package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/niksmo/shopfront/internal/core/domain"
	"github.com/niksmo/shopfront/internal/core/port"
)

var (
	_ port.OrderAppender = (*OrdersRepository)(nil)
	_ port.OrderHistory  = (*OrdersRepository)(nil)
)

type orderItem struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// OrdersRepository is the append-only order history. Line items are
// kept as a JSON column: the history is read back whole, never joined.
type OrdersRepository struct {
	sqldb sqldb
}

func NewOrdersRepository(sqldb sqldb) OrdersRepository {
	return OrdersRepository{sqldb}
}

func (r OrdersRepository) AppendOrder(
	ctx context.Context, record domain.OrderRecord,
) error {
	const op = "OrdersRepository.AppendOrder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	items := make([]orderItem, 0, len(record.Items))
	for _, it := range record.Items {
		items = append(items, orderItem{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	itemsB, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO orders (
			order_number, region, items,
			subtotal, shipping_fee, total,
			confirmed_at, payment_method
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	_, err = r.sqldb.ExecContext(ctx, query,
		record.OrderNumber, record.Region, string(itemsB),
		record.Subtotal, record.ShippingFee, record.Total,
		record.Timestamp, record.PaymentMethod,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to exec: %w", op, err)
	}
	return nil
}

func (r OrdersRepository) ListOrders(
	ctx context.Context,
) ([]domain.OrderRecord, error) {
	const op = "OrdersRepository.ListOrders"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT
			order_number, region, items,
			subtotal, shipping_fee, total,
			confirmed_at, payment_method
		FROM orders
		ORDER BY confirmed_at DESC;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query: %w", op, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", "err", err)
		}
	}()

	var records []domain.OrderRecord
	for rows.Next() {
		var v domain.OrderRecord
		var itemsS string
		err := rows.Scan(
			&v.OrderNumber, &v.Region, &itemsS,
			&v.Subtotal, &v.ShippingFee, &v.Total,
			&v.Timestamp, &v.PaymentMethod,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan: %w", op, err)
		}

		var items []orderItem
		if err := json.Unmarshal([]byte(itemsS), &items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		for _, it := range items {
			v.Items = append(v.Items, domain.OrderLineItem{
				Name:      it.Name,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			})
		}
		records = append(records, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return records, nil
}
