package billing

import (
	"context"

	"github.com/hometown-industries/warehouse-service/internal/billing/dto"
	"github.com/hometown-industries/warehouse-service/internal/model"
)

// StripeClient is the slice of the Stripe API the invoicing flow needs.
type StripeClient interface {
	CreateInvoice(ctx context.Context, customerID string, daysUntilDue int64) (string, error)
	CreateInvoiceItem(ctx context.Context, customerID, invoiceID, description string, amountCents int64) error
	FinalizeInvoice(ctx context.Context, invoiceID string) (hostedURL string, err error)
}

type UseCase interface {
	CreateLineItems(ctx context.Context, input *dto.CreateLineItemsInput) ([]model.InvoiceLineItem, error)
	EditLineItem(ctx context.Context, input *dto.EditLineItemInput) (*model.InvoiceLineItem, error)
	DeleteLineItem(ctx context.Context, id string) error
	ListLineItems(ctx context.Context, billingMonth, companyName string) ([]model.InvoiceLineItem, error)
	UpdatePaymentStatus(ctx context.Context, input *dto.UpdatePaymentStatusInput) error

	// CreateStripeInvoice builds and finalizes a Stripe invoice from the stored
	// line items of one company's billing month, then stamps the Stripe refs
	// back onto those rows.
	CreateStripeInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*dto.CreateInvoiceResult, error)

	// HandlePaymentSucceeded marks every line item tied to the Stripe invoice
	// as paid. Called from the Stripe webhook.
	HandlePaymentSucceeded(ctx context.Context, stripeInvoiceID string) error

	CreateCoupon(ctx context.Context, input *dto.CreateCouponInput) (*model.Coupon, error)
	EditCoupon(ctx context.Context, input *dto.EditCouponInput) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	ListCoupons(ctx context.Context, clientID string) ([]model.Coupon, error)
}
