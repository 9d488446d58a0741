package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/infra"
	"furnistore/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgxpool"
)

type cartLineRecord struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Quantity int    `json:"quantity"`
}

type CartArchive struct {
	pool *pgxpool.Pool
}

func NewCartArchive(pool *pgxpool.Pool) *CartArchive {
	return &CartArchive{pool: pool}
}

func (a *CartArchive) Save(ctx context.Context, buyerEmail string, lines []commands.CartLine) error {
	records := make([]cartLineRecord, len(lines))
	for i, l := range lines {
		records[i] = cartLineRecord{Name: l.Name, Kind: l.Kind.String(), Quantity: l.Quantity}
	}
	rawLines, err := json.Marshal(records)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to encode cart lines", err)
	}

	_, err = a.pool.Exec(ctx, `
		INSERT INTO cart_snapshots (buyer_email, lines, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (buyer_email) DO UPDATE SET
			lines = EXCLUDED.lines,
			updated_at = now()`,
		buyerEmail, rawLines)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to save cart snapshot", err)
	}
	return nil
}

func (a *CartArchive) LoadAll(ctx context.Context) (map[string][]commands.CartLine, error) {
	rows, err := a.pool.Query(ctx, `SELECT buyer_email, lines FROM cart_snapshots`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load cart snapshots", err)
	}
	defer rows.Close()

	snapshots := make(map[string][]commands.CartLine)
	for rows.Next() {
		var (
			buyerEmail string
			rawLines   []byte
		)
		if err := rows.Scan(&buyerEmail, &rawLines); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan cart snapshot", err)
		}

		var records []cartLineRecord
		if err := json.Unmarshal(rawLines, &records); err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode cart lines", err)
		}

		lines := make([]commands.CartLine, 0, len(records))
		for _, rec := range records {
			kind, err := catalog.NewKind(rec.Kind)
			if err != nil {
				slog.Warn("skipping cart line with unknown kind", "buyer", buyerEmail, "kind", rec.Kind)
				continue
			}
			lines = append(lines, commands.CartLine{Name: rec.Name, Kind: kind, Quantity: rec.Quantity})
		}
		snapshots[buyerEmail] = lines
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read cart snapshots", err)
	}
	return snapshots, nil
}
