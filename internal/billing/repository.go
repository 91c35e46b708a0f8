package billing

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/model"
)

type Repository interface {
	BulkCreateLineItems(ctx context.Context, items []model.InvoiceLineItem) error
	UpdateLineItem(ctx context.Context, item *model.InvoiceLineItem) error
	DeleteLineItem(ctx context.Context, id string) error
	GetLineItem(ctx context.Context, id string) (*model.InvoiceLineItem, error)
	FindLineItems(ctx context.Context, billingMonth, companyName string) ([]model.InvoiceLineItem, error)

	// SetStripeRefs stamps the Stripe invoice id and URLs onto every line item
	// of one company's billing month after the invoice is finalized.
	SetStripeRefs(ctx context.Context, billingMonth, companyName, invoiceID, invoiceURL, dashboardURL string) error

	// MarkPaidByStripeInvoice flips payment_status for all line items that
	// reference the given Stripe invoice. Returns the number of rows updated.
	MarkPaidByStripeInvoice(ctx context.Context, stripeInvoiceID string) (int64, error)

	CreateCoupon(ctx context.Context, c *model.Coupon) error
	UpdateCoupon(ctx context.Context, c *model.Coupon) error
	GetCoupon(ctx context.Context, id string) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	FindCoupons(ctx context.Context, clientID string) ([]model.Coupon, error)
}
