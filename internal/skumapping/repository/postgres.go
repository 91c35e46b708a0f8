package repository

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindBySKU(ctx context.Context, sku string) ([]model.SKUMapping, error) {
	rows := []model.SKUMapping{}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM sku_mapping WHERE sku = $1 ORDER BY created_at`, sku)
	return rows, err
}

func (r *PGRepository) FindAll(ctx context.Context, clientID string) ([]model.SKUMapping, error) {
	rows := []model.SKUMapping{}
	if clientID == "" {
		err := r.DB.SelectContext(ctx, &rows, `SELECT * FROM sku_mapping ORDER BY sku`)
		return rows, err
	}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM sku_mapping WHERE client_id = $1 ORDER BY sku`, clientID)
	return rows, err
}

func (r *PGRepository) Create(ctx context.Context, m *model.SKUMapping) error {
	query := `
        INSERT INTO sku_mapping (
            id, client_id, product_id, sku, name, product_image_url, quantity_to_deduct, created_at
        )
        VALUES (
            :id, :client_id, :product_id, :sku, :name, :product_image_url, :quantity_to_deduct, :created_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, m)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sku_mapping WHERE id = $1`, id)
	return err
}

func (r *PGRepository) CreateUnmapped(ctx context.Context, u *model.UnmappedSKU) error {
	query := `
        INSERT INTO unmapped_skus (
            id, sku, client_id, quantity, shipment_number, order_source,
            product_name, product_image_url, created_at
        )
        VALUES (
            :id, :sku, :client_id, :quantity, :shipment_number, :order_source,
            :product_name, :product_image_url, :created_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) ListUnmapped(ctx context.Context, clientID string) ([]model.UnmappedSKU, error) {
	rows := []model.UnmappedSKU{}
	if clientID == "" {
		err := r.DB.SelectContext(ctx, &rows, `SELECT * FROM unmapped_skus ORDER BY created_at DESC`)
		return rows, err
	}
	err := r.DB.SelectContext(ctx, &rows,
		`SELECT * FROM unmapped_skus WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	return rows, err
}

func (r *PGRepository) DeleteUnmappedBySKU(ctx context.Context, sku string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM unmapped_skus WHERE sku = $1`, sku)
	return err
}

func (r *PGRepository) DeleteUnmappedByID(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM unmapped_skus WHERE id = $1`, id)
	return err
}
