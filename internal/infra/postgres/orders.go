package postgres

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"furnistore/internal/domain/order"
	"furnistore/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderLineRecord struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type OrderArchive struct {
	pool *pgxpool.Pool
}

func NewOrderArchive(pool *pgxpool.Pool) *OrderArchive {
	return &OrderArchive{pool: pool}
}

func (a *OrderArchive) Save(ctx context.Context, o *order.Order) error {
	lines := o.Lines()
	records := make([]orderLineRecord, len(lines))
	for i, l := range lines {
		records[i] = orderLineRecord{Name: l.Name, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	}
	rawLines, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to encode order lines", err)
	}

	_, err = a.pool.Exec(ctx, `
		INSERT INTO orders (id, buyer_email, address, payment_method, lines, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status`,
		o.ID(), o.BuyerEmail(), o.Address(), o.PaymentMethod(), rawLines, o.Total(), o.Status().String(), o.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to save order", err)
	}
	return nil
}

func (a *OrderArchive) LoadAll(ctx context.Context) ([]*order.Order, error) {
	rows, err := a.pool.Query(ctx, `
		SELECT id, buyer_email, address, payment_method, lines, total, status, created_at
		FROM orders
		ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load orders", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var (
			id                                 uuid.UUID
			buyerEmail, address, paymentMethod string
			rawLines                           []byte
			total                              float64
			statusStr                          string
			createdAt                          time.Time
		)
		if err := rows.Scan(&id, &buyerEmail, &address, &paymentMethod, &rawLines, &total, &statusStr, &createdAt); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan order row", err)
		}

		var records []orderLineRecord
		if err := json.Unmarshal(rawLines, &records); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode order lines", err)
		}
		lines := make([]order.Line, len(records))
		for i, rec := range records {
			lines[i] = order.Line{Name: rec.Name, Quantity: rec.Quantity, UnitPrice: rec.UnitPrice}
		}

		status, err := order.NewStatus(statusStr)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "invalid archived status", err)
		}

		orders = append(orders, order.Reconstruct(id, buyerEmail, address, paymentMethod, lines, total, status, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read order rows", err)
	}
	return orders, nil
}
