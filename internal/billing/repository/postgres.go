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

func (r *PGRepository) BulkCreateLineItems(ctx context.Context, items []model.InvoiceLineItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `
        INSERT INTO invoice_line_items (
            id, billing_month, company_name, line_item_name, line_item_cost,
            line_item_billing_terms, payment_status, stripe_invoice_id,
            stripe_invoice_url, stripe_dashboard_url, date_due, created_at
        )
        VALUES (
            :id, :billing_month, :company_name, :line_item_name, :line_item_cost,
            :line_item_billing_terms, :payment_status, :stripe_invoice_id,
            :stripe_invoice_url, :stripe_dashboard_url, :date_due, :created_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, items)
	return err
}

func (r *PGRepository) UpdateLineItem(ctx context.Context, item *model.InvoiceLineItem) error {
	query := `
        UPDATE invoice_line_items SET
            line_item_name = :line_item_name,
            line_item_cost = :line_item_cost,
            line_item_billing_terms = :line_item_billing_terms,
            payment_status = :payment_status
        WHERE id = :id
    `
	res, err := r.DB.NamedExecContext(ctx, query, item)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("invoice line item %s not found", item.ID)
	}
	return nil
}

func (r *PGRepository) DeleteLineItem(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM invoice_line_items WHERE id = $1`, id)
	return err
}

func (r *PGRepository) GetLineItem(ctx context.Context, id string) (*model.InvoiceLineItem, error) {
	var item model.InvoiceLineItem
	err := r.DB.GetContext(ctx, &item, `SELECT * FROM invoice_line_items WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindLineItems(ctx context.Context, billingMonth, companyName string) ([]model.InvoiceLineItem, error) {
	items := []model.InvoiceLineItem{}
	switch {
	case billingMonth != "" && companyName != "":
		err := r.DB.SelectContext(ctx, &items,
			`SELECT * FROM invoice_line_items WHERE billing_month = $1 AND company_name = $2 ORDER BY created_at`,
			billingMonth, companyName)
		return items, err
	case billingMonth != "":
		err := r.DB.SelectContext(ctx, &items,
			`SELECT * FROM invoice_line_items WHERE billing_month = $1 ORDER BY company_name, created_at`,
			billingMonth)
		return items, err
	case companyName != "":
		err := r.DB.SelectContext(ctx, &items,
			`SELECT * FROM invoice_line_items WHERE company_name = $1 ORDER BY created_at DESC`,
			companyName)
		return items, err
	default:
		err := r.DB.SelectContext(ctx, &items,
			`SELECT * FROM invoice_line_items ORDER BY created_at DESC`)
		return items, err
	}
}

func (r *PGRepository) SetStripeRefs(ctx context.Context, billingMonth, companyName, invoiceID, invoiceURL, dashboardURL string) error {
	query := `
        UPDATE invoice_line_items SET
            stripe_invoice_id = $1,
            stripe_invoice_url = $2,
            stripe_dashboard_url = $3
        WHERE billing_month = $4 AND company_name = $5
    `
	_, err := r.DB.ExecContext(ctx, query, invoiceID, invoiceURL, dashboardURL, billingMonth, companyName)
	return err
}

func (r *PGRepository) MarkPaidByStripeInvoice(ctx context.Context, stripeInvoiceID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE invoice_line_items SET payment_status = $1 WHERE stripe_invoice_id = $2`,
		model.PaymentStatusPaid, stripeInvoiceID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PGRepository) CreateCoupon(ctx context.Context, c *model.Coupon) error {
	query := `
        INSERT INTO coupons (id, client_id, name, created_at)
        VALUES (:id, :client_id, :name, :created_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, c)
	return err
}

func (r *PGRepository) UpdateCoupon(ctx context.Context, c *model.Coupon) error {
	res, err := r.DB.NamedExecContext(ctx,
		`UPDATE coupons SET client_id = :client_id, name = :name WHERE id = :id`, c)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("coupon %s not found", c.ID)
	}
	return nil
}

func (r *PGRepository) GetCoupon(ctx context.Context, id string) (*model.Coupon, error) {
	var c model.Coupon
	err := r.DB.GetContext(ctx, &c, `SELECT * FROM coupons WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGRepository) DeleteCoupon(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	return err
}

func (r *PGRepository) FindCoupons(ctx context.Context, clientID string) ([]model.Coupon, error) {
	coupons := []model.Coupon{}
	if clientID == "" {
		err := r.DB.SelectContext(ctx, &coupons, `SELECT * FROM coupons ORDER BY created_at DESC`)
		return coupons, err
	}
	err := r.DB.SelectContext(ctx, &coupons,
		`SELECT * FROM coupons WHERE client_id = $1 ORDER BY created_at DESC`, clientID)
	return coupons, err
}
