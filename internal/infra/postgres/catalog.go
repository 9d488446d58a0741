package postgres

import (
	"context"
	"encoding/json"
	"log/slog"

	"furnistore/internal/domain/catalog"
	"furnistore/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// attrsRecord is the persisted union over the kind-specific attributes; only
// the fields for the row's kind are set.
type attrsRecord struct {
	HasArmrests  *bool   `json:"has_armrests,omitempty"`
	Shape        *string `json:"shape,omitempty"`
	IsExtendable *bool   `json:"is_extendable,omitempty"`
	Seats        *int    `json:"seats,omitempty"`
	HasRecliner  *bool   `json:"has_recliner,omitempty"`
	Size         *string `json:"size,omitempty"`
	HasStorage   *bool   `json:"has_storage,omitempty"`
	Doors        *int    `json:"doors,omitempty"`
	HasMirror    *bool   `json:"has_mirror,omitempty"`
}

func encodeAttrs(attrs catalog.Attributes) ([]byte, error) {
	var rec attrsRecord
	switch a := attrs.(type) {
	case catalog.ChairAttributes:
		rec.HasArmrests = &a.HasArmrests
	case catalog.TableAttributes:
		rec.Shape = &a.Shape
		rec.IsExtendable = &a.IsExtendable
	case catalog.SofaAttributes:
		rec.Seats = &a.Seats
		rec.HasRecliner = &a.HasRecliner
	case catalog.BedAttributes:
		rec.Size = &a.Size
		rec.HasStorage = &a.HasStorage
	case catalog.WardrobeAttributes:
		rec.Doors = &a.Doors
		rec.HasMirror = &a.HasMirror
	}
	return json.Marshal(rec)
}

func decodeAttrs(kind catalog.Kind, raw []byte) (catalog.Attributes, error) {
	var rec attrsRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	switch kind {
	case catalog.KindChair:
		return catalog.ChairAttributes{HasArmrests: boolVal(rec.HasArmrests)}, nil
	case catalog.KindTable:
		return catalog.TableAttributes{Shape: strVal(rec.Shape), IsExtendable: boolVal(rec.IsExtendable)}, nil
	case catalog.KindSofa:
		return catalog.SofaAttributes{Seats: intVal(rec.Seats), HasRecliner: boolVal(rec.HasRecliner)}, nil
	case catalog.KindBed:
		return catalog.BedAttributes{Size: strVal(rec.Size), HasStorage: boolVal(rec.HasStorage)}, nil
	case catalog.KindWardrobe:
		return catalog.WardrobeAttributes{Doors: intVal(rec.Doors), HasMirror: boolVal(rec.HasMirror)}, nil
	default:
		return nil, catalog.ErrInvalidKind
	}
}

type CatalogStore struct {
	pool *pgxpool.Pool
}

func NewCatalogStore(pool *pgxpool.Pool) *CatalogStore {
	return &CatalogStore{pool: pool}
}

func (s *CatalogStore) LoadAll(ctx context.Context) ([]*catalog.Item, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, kind, name, description, material, color, warranty_years,
		       price, available_quantity, discount, attrs
		FROM catalog_items
		ORDER BY kind, name`)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to load catalog", err)
	}
	defer rows.Close()

	var items []*catalog.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to scan catalog row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to read catalog rows", err)
	}
	return items, nil
}

func scanItem(row pgx.Row) (*catalog.Item, error) {
	var (
		id, kindStr, name, description, material, color, discountStr string
		warrantyYears, availableQuantity                             int
		price                                                        float64
		rawAttrs                                                     []byte
	)
	if err := row.Scan(&id, &kindStr, &name, &description, &material, &color,
		&warrantyYears, &price, &availableQuantity, &discountStr, &rawAttrs); err != nil {
		return nil, err
	}

	kind, err := catalog.NewKind(kindStr)
	if err != nil {
		return nil, err
	}
	discount, err := catalog.NewDiscount(discountStr)
	if err != nil {
		return nil, err
	}
	attrs, err := decodeAttrs(kind, rawAttrs)
	if err != nil {
		return nil, err
	}

	return catalog.New(name, attrs, price, availableQuantity, catalog.Config{
		ID:            id,
		Description:   description,
		Material:      material,
		Color:         color,
		WarrantyYears: warrantyYears,
		Discount:      discount,
	})
}

// SaveAll replaces the archived catalog with the given snapshot in one
// transaction, so readers never see a half-written catalog.
func (s *CatalogStore) SaveAll(ctx context.Context, items []*catalog.Item) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to begin catalog save", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalog_items`); err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to clear catalog", err)
	}

	for _, item := range items {
		rawAttrs, err := encodeAttrs(item.Attributes())
		if err != nil {
			return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to encode item attributes", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO catalog_items
				(id, kind, name, description, material, color, warranty_years,
				 price, available_quantity, discount, attrs)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			item.ID(), item.Kind().String(), item.Name(), item.Description(),
			item.Material(), item.Color(), item.WarrantyYears(),
			item.Price(), item.AvailableQuantity(), item.Discount().String(), rawAttrs)
		if err != nil {
			return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to insert catalog item", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to commit catalog save", err)
	}
	return nil
}

func boolVal(p *bool) bool {
	if p == nil {
		return false
	}
	return *p
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
