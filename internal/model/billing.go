package model

import "time"

const (
	PaymentStatusPaid   = "Paid"
	PaymentStatusUnpaid = "Unpaid"
)

type InvoiceLineItem struct {
	ID                   string    `db:"id" json:"id"`
	BillingMonth         string    `db:"billing_month" json:"billing_month"`
	CompanyName          string    `db:"company_name" json:"company_name"`
	LineItemName         string    `db:"line_item_name" json:"line_item_name"`
	LineItemCost         float64   `db:"line_item_cost" json:"line_item_cost"`
	LineItemBillingTerms *string   `db:"line_item_billing_terms" json:"line_item_billing_terms"`
	PaymentStatus        string    `db:"payment_status" json:"payment_status"`
	StripeInvoiceID      *string   `db:"stripe_invoice_id" json:"stripe_invoice_id"`
	StripeInvoiceURL     *string   `db:"stripe_invoice_url" json:"stripe_invoice_url"`
	StripeDashboardURL   *string   `db:"stripe_dashboard_url" json:"stripe_dashboard_url"`
	DateDue              *string   `db:"date_due" json:"date_due"`
	CreatedAt            time.Time `db:"created_at" json:"created_at"`
}

type Coupon struct {
	ID        string    `db:"id" json:"id"`
	ClientID  string    `db:"client_id" json:"client_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
