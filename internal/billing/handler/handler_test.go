package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hometown-industries/warehouse-service/internal/billing/dto"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

type fakeUseCase struct {
	paidInvoices []string
	editedCoupon *dto.EditCouponInput
}

func (f *fakeUseCase) CreateLineItems(ctx context.Context, input *dto.CreateLineItemsInput) ([]model.InvoiceLineItem, error) {
	return nil, nil
}
func (f *fakeUseCase) EditLineItem(ctx context.Context, input *dto.EditLineItemInput) (*model.InvoiceLineItem, error) {
	return nil, nil
}
func (f *fakeUseCase) DeleteLineItem(ctx context.Context, id string) error { return nil }
func (f *fakeUseCase) ListLineItems(ctx context.Context, billingMonth, companyName string) ([]model.InvoiceLineItem, error) {
	return nil, nil
}
func (f *fakeUseCase) UpdatePaymentStatus(ctx context.Context, input *dto.UpdatePaymentStatusInput) error {
	return nil
}
func (f *fakeUseCase) CreateStripeInvoice(ctx context.Context, input *dto.CreateInvoiceInput) (*dto.CreateInvoiceResult, error) {
	return nil, nil
}
func (f *fakeUseCase) HandlePaymentSucceeded(ctx context.Context, stripeInvoiceID string) error {
	f.paidInvoices = append(f.paidInvoices, stripeInvoiceID)
	return nil
}
func (f *fakeUseCase) CreateCoupon(ctx context.Context, input *dto.CreateCouponInput) (*model.Coupon, error) {
	return nil, nil
}
func (f *fakeUseCase) EditCoupon(ctx context.Context, input *dto.EditCouponInput) (*model.Coupon, error) {
	f.editedCoupon = input
	return &model.Coupon{ID: input.ID, ClientID: input.ClientID, Name: input.Name}, nil
}
func (f *fakeUseCase) DeleteCoupon(ctx context.Context, id string) error { return nil }
func (f *fakeUseCase) ListCoupons(ctx context.Context, clientID string) ([]model.Coupon, error) {
	return nil, nil
}

func TestPaymentWebhookMarksInvoicePaid(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewBillingHandler(uc, logger.NewNop())

	body := `{"type":"invoice.payment_succeeded","data":{"object":{"id":"in_456"}}}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PaymentWebhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if len(uc.paidInvoices) != 1 || uc.paidInvoices[0] != "in_456" {
		t.Errorf("paid invoices = %v", uc.paidInvoices)
	}
}

func TestPaymentWebhookIgnoresOtherEvents(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewBillingHandler(uc, logger.NewNop())

	body := `{"type":"invoice.created","data":{"object":{"id":"in_456"}}}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PaymentWebhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 ack", rec.Code)
	}
	if len(uc.paidInvoices) != 0 {
		t.Errorf("non-payment event marked an invoice paid")
	}
}

func TestPaymentWebhookBadPayload(t *testing.T) {
	h := NewBillingHandler(&fakeUseCase{}, logger.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(`{nope`))
	rec := httptest.NewRecorder()
	h.PaymentWebhook(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestPaymentWebhookMissingInvoiceID(t *testing.T) {
	h := NewBillingHandler(&fakeUseCase{}, logger.NewNop())

	body := `{"type":"invoice.payment_succeeded","data":{"object":{}}}`
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.PaymentWebhook(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestEditCoupon(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewBillingHandler(uc, logger.NewNop())

	body := `{"id":"cp-1","clientId":"orders@hometownamazon.com","name":"FREESHIP15"}`
	req := httptest.NewRequest(http.MethodPut, "/api/billing/coupons/edit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.EditCoupon(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if uc.editedCoupon == nil || uc.editedCoupon.ID != "cp-1" || uc.editedCoupon.Name != "FREESHIP15" {
		t.Errorf("edited coupon = %+v", uc.editedCoupon)
	}
}

func TestEditCouponMissingFields(t *testing.T) {
	h := NewBillingHandler(&fakeUseCase{}, logger.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/billing/coupons/edit", strings.NewReader(`{"id":"cp-1"}`))
	rec := httptest.NewRecorder()
	h.EditCoupon(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
