package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.Inventory, error) {
	var inv model.Inventory
	err := r.DB.GetContext(ctx, &inv, `SELECT * FROM inventory WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) GetByClientAndSKU(ctx context.Context, clientID, sku string) (*model.Inventory, error) {
	var inv model.Inventory
	query := `SELECT * FROM inventory WHERE client_id = $1 AND sku = $2 ORDER BY created_at LIMIT 1`
	err := r.DB.GetContext(ctx, &inv, query, clientID, sku)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *PGRepository) FindAll(ctx context.Context, clientID string) ([]model.Inventory, error) {
	items := []model.Inventory{}
	if clientID == "" {
		err := r.DB.SelectContext(ctx, &items, `SELECT * FROM inventory ORDER BY name`)
		return items, err
	}
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM inventory WHERE client_id = $1 ORDER BY name`, clientID)
	return items, err
}

func (r *PGRepository) Create(ctx context.Context, inv *model.Inventory) error {
	query := `
        INSERT INTO inventory (
            id, client_id, name, asin, product_title, sku, product_image_url,
            pending, quantity, lot_number, product_expiration, created_at, updated_at
        )
        VALUES (
            :id, :client_id, :name, :asin, :product_title, :sku, :product_image_url,
            :pending, :quantity, :lot_number, :product_expiration, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, inv)
	return err
}

func (r *PGRepository) Update(ctx context.Context, inv *model.Inventory) error {
	query := `
        UPDATE inventory SET
            name = :name,
            asin = :asin,
            product_title = :product_title,
            sku = :sku,
            product_image_url = :product_image_url,
            pending = :pending,
            quantity = :quantity,
            lot_number = :lot_number,
            product_expiration = :product_expiration,
            updated_at = :updated_at
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, inv)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("inventory %s not found", inv.ID)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	return err
}

func (r *PGRepository) ApplyChangeWithLog(ctx context.Context, inv *model.Inventory, entry *model.ChangelogEntry) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	updateQuery := `
        UPDATE inventory SET
            pending = :pending,
            quantity = :quantity,
            updated_at = :updated_at
        WHERE id = :id
    `
	if _, err = tx.NamedExecContext(ctx, updateQuery, inv); err != nil {
		return fmt.Errorf("failed to update inventory: %w", err)
	}

	logQuery := `
        INSERT INTO inventory_changelog (
            id, client_id, shipment_number, change_source, asin, product_title, sku,
            previous_quantity, new_quantity, previous_pending, new_pending, notes, created_at
        )
        VALUES (
            :id, :client_id, :shipment_number, :change_source, :asin, :product_title, :sku,
            :previous_quantity, :new_quantity, :previous_pending, :new_pending, :notes, :created_at
        )
    `
	if _, err = tx.NamedExecContext(ctx, logQuery, entry); err != nil {
		return fmt.Errorf("failed to write changelog entry: %w", err)
	}

	return tx.Commit()
}

func (r *PGRepository) ListChangelog(ctx context.Context, clientID string, limit, offset int) ([]model.ChangelogEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	entries := []model.ChangelogEntry{}
	if clientID == "" {
		err := r.DB.SelectContext(ctx, &entries,
			`SELECT * FROM inventory_changelog ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
		return entries, err
	}
	err := r.DB.SelectContext(ctx, &entries,
		`SELECT * FROM inventory_changelog WHERE client_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		clientID, limit, offset)
	return entries, err
}
