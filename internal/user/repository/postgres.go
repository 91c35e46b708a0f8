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

func (r *PGRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE username = $1`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepository) GetByCompanyName(ctx context.Context, companyName string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE company_name = $1`, companyName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.DB.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY company_name`)
	return users, err
}

func (r *PGRepository) FindClients(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	err := r.DB.SelectContext(ctx, &users, `SELECT * FROM users WHERE isclient ORDER BY company_name`)
	return users, err
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (
            id, username, company_name, isadmin, isclient, has_lot_numbers,
            per_order_fee, per_order_unit_fee, per_unit_fba_pack_prep,
            per_unit_wfs_pack_prep, b2b_freight_percentage_markup,
            stripe_customer_id, created_at
        )
        VALUES (
            :id, :username, :company_name, :isadmin, :isclient, :has_lot_numbers,
            :per_order_fee, :per_order_unit_fee, :per_unit_fba_pack_prep,
            :per_unit_wfs_pack_prep, :b2b_freight_percentage_markup,
            :stripe_customer_id, :created_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, u)
	return err
}

func (r *PGRepository) Update(ctx context.Context, u *model.User) error {
	query := `
        UPDATE users SET
            username = :username,
            company_name = :company_name,
            isadmin = :isadmin,
            isclient = :isclient,
            has_lot_numbers = :has_lot_numbers,
            per_order_fee = :per_order_fee,
            per_order_unit_fee = :per_order_unit_fee,
            per_unit_fba_pack_prep = :per_unit_fba_pack_prep,
            per_unit_wfs_pack_prep = :per_unit_wfs_pack_prep,
            b2b_freight_percentage_markup = :b2b_freight_percentage_markup,
            stripe_customer_id = :stripe_customer_id
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, u)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("user %s not found", u.ID)
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
