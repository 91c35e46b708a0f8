package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hometown-industries/warehouse-service/internal/billing"
	"github.com/hometown-industries/warehouse-service/internal/billing/dto"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/internal/user"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// cardFeeMarkup covers card processing costs when a client pays by card
// instead of ACH.
var cardFeeMarkup = decimal.NewFromFloat(1.034)

type billingUC struct {
	repo     billing.Repository
	userRepo user.Repository
	stripe   billing.StripeClient
	logger   logger.Logger
}

func NewBillingUseCase(repo billing.Repository, userRepo user.Repository, stripe billing.StripeClient, log logger.Logger) billing.UseCase {
	return &billingUC{repo: repo, userRepo: userRepo, stripe: stripe, logger: log}
}

func (uc *billingUC) CreateLineItems(ctx context.Context, input *dto.CreateLineItemsInput) ([]model.InvoiceLineItem, error) {
	now := time.Now().UTC()
	items := make([]model.InvoiceLineItem, 0, len(input.Items))
	for _, in := range input.Items {
		item := model.InvoiceLineItem{
			ID:            uuid.NewString(),
			BillingMonth:  input.BillingMonth,
			CompanyName:   in.CompanyName,
			LineItemName:  in.LineItemName,
			LineItemCost:  in.LineItemCost,
			PaymentStatus: model.PaymentStatusUnpaid,
			CreatedAt:     now,
		}
		if in.LineItemBillingTerms != "" {
			terms := in.LineItemBillingTerms
			item.LineItemBillingTerms = &terms
		}
		items = append(items, item)
	}
	if err := uc.repo.BulkCreateLineItems(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

func (uc *billingUC) EditLineItem(ctx context.Context, input *dto.EditLineItemInput) (*model.InvoiceLineItem, error) {
	item, err := uc.repo.GetLineItem(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("invoice line item %s not found", input.ID)
	}

	item.LineItemName = input.LineItemName
	item.LineItemCost = input.LineItemCost
	if input.LineItemBillingTerms != "" {
		terms := input.LineItemBillingTerms
		item.LineItemBillingTerms = &terms
	}
	if input.PaymentStatus != "" {
		item.PaymentStatus = input.PaymentStatus
	}

	if err := uc.repo.UpdateLineItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *billingUC) DeleteLineItem(ctx context.Context, id string) error {
	return uc.repo.DeleteLineItem(ctx, id)
}

func (uc *billingUC) ListLineItems(ctx context.Context, billingMonth, companyName string) ([]model.InvoiceLineItem, error) {
	return uc.repo.FindLineItems(ctx, billingMonth, companyName)
}

func (uc *billingUC) UpdatePaymentStatus(ctx context.Context, input *dto.UpdatePaymentStatusInput) error {
	item, err := uc.repo.GetLineItem(ctx, input.ID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("invoice line item %s not found", input.ID)
	}
	item.PaymentStatus = input.PaymentStatus
	return uc.repo.UpdateLineItem(ctx, item)
}

// AmountCents converts a dollar cost to integer cents, applying the card-fee
// markup first when requested. Rounding is half-up at the cent.
func AmountCents(cost float64, applyCardFee bool) int64 {
	d := decimal.NewFromFloat(cost)
	if applyCardFee {
		d = d.Mul(cardFeeMarkup)
	}
	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func (uc *billingUC) CreateStripeInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*dto.CreateInvoiceResult, error) {
	items, err := uc.repo.FindLineItems(ctx, input.BillingMonth, input.CompanyName)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("no line items for %s in %s", input.CompanyName, input.BillingMonth)
	}

	account, err := uc.userRepo.GetByCompanyName(ctx, input.CompanyName)
	if err != nil {
		return nil, err
	}
	if account == nil || account.StripeCustomerID == nil || *account.StripeCustomerID == "" {
		return nil, fmt.Errorf("no stripe customer for company %s", input.CompanyName)
	}
	customerID := *account.StripeCustomerID

	invoiceID, err := uc.stripe.CreateInvoice(ctx, customerID, input.DaysUntilDue)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe invoice: %w", err)
	}

	var total int64
	for _, item := range items {
		cents := AmountCents(item.LineItemCost, input.ApplyCardFee)
		description := item.LineItemName
		if item.LineItemBillingTerms != nil && *item.LineItemBillingTerms != "" {
			description = fmt.Sprintf("%s (%s)", item.LineItemName, *item.LineItemBillingTerms)
		}
		if err := uc.stripe.CreateInvoiceItem(ctx, customerID, invoiceID, description, cents); err != nil {
			return nil, fmt.Errorf("failed to add invoice item %q: %w", item.LineItemName, err)
		}
		total += cents
	}

	hostedURL, err := uc.stripe.FinalizeInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to finalize stripe invoice: %w", err)
	}

	dashboardURL := "https://dashboard.stripe.com/invoices/" + invoiceID
	if err := uc.repo.SetStripeRefs(ctx, input.BillingMonth, input.CompanyName, invoiceID, hostedURL, dashboardURL); err != nil {
		uc.logger.Error("failed to stamp stripe refs on line items",
			zap.String("invoice_id", invoiceID),
			zap.String("company", input.CompanyName),
			zap.Error(err))
	}

	uc.logger.Info("stripe invoice created",
		zap.String("invoice_id", invoiceID),
		zap.String("company", input.CompanyName),
		zap.String("billing_month", input.BillingMonth),
		zap.Int64("total_cents", total))

	return &dto.CreateInvoiceResult{
		StripeInvoiceID:  invoiceID,
		HostedInvoiceURL: hostedURL,
		TotalCents:       total,
	}, nil
}

func (uc *billingUC) HandlePaymentSucceeded(ctx context.Context, stripeInvoiceID string) error {
	n, err := uc.repo.MarkPaidByStripeInvoice(ctx, stripeInvoiceID)
	if err != nil {
		return err
	}
	if n == 0 {
		uc.logger.Warn("payment succeeded for unknown stripe invoice",
			zap.String("invoice_id", stripeInvoiceID))
		return nil
	}
	uc.logger.Info("marked line items paid",
		zap.String("invoice_id", stripeInvoiceID),
		zap.Int64("rows", n))
	return nil
}

func (uc *billingUC) CreateCoupon(ctx context.Context, input *dto.CreateCouponInput) (*model.Coupon, error) {
	c := &model.Coupon{
		ID:        uuid.NewString(),
		ClientID:  input.ClientID,
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.CreateCoupon(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *billingUC) EditCoupon(ctx context.Context, input *dto.EditCouponInput) (*model.Coupon, error) {
	c, err := uc.repo.GetCoupon(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("coupon %s not found", input.ID)
	}

	c.ClientID = input.ClientID
	c.Name = input.Name
	if err := uc.repo.UpdateCoupon(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *billingUC) DeleteCoupon(ctx context.Context, id string) error {
	return uc.repo.DeleteCoupon(ctx, id)
}

func (uc *billingUC) ListCoupons(ctx context.Context, clientID string) ([]model.Coupon, error) {
	return uc.repo.FindCoupons(ctx, clientID)
}
