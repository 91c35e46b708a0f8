package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/hometown-industries/warehouse-service/internal/billing/dto"
	"github.com/hometown-industries/warehouse-service/internal/model"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

type fakeRepo struct {
	items      []model.InvoiceLineItem
	stripeRefs struct {
		invoiceID, invoiceURL, dashboardURL string
	}
	paidInvoices []string
	coupons      []model.Coupon
}

func (f *fakeRepo) BulkCreateLineItems(ctx context.Context, items []model.InvoiceLineItem) error {
	f.items = append(f.items, items...)
	return nil
}

func (f *fakeRepo) UpdateLineItem(ctx context.Context, item *model.InvoiceLineItem) error {
	for i := range f.items {
		if f.items[i].ID == item.ID {
			f.items[i] = *item
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) DeleteLineItem(ctx context.Context, id string) error { return nil }

func (f *fakeRepo) GetLineItem(ctx context.Context, id string) (*model.InvoiceLineItem, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) FindLineItems(ctx context.Context, billingMonth, companyName string) ([]model.InvoiceLineItem, error) {
	var out []model.InvoiceLineItem
	for _, item := range f.items {
		if (billingMonth == "" || item.BillingMonth == billingMonth) &&
			(companyName == "" || item.CompanyName == companyName) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeRepo) SetStripeRefs(ctx context.Context, billingMonth, companyName, invoiceID, invoiceURL, dashboardURL string) error {
	f.stripeRefs.invoiceID = invoiceID
	f.stripeRefs.invoiceURL = invoiceURL
	f.stripeRefs.dashboardURL = dashboardURL
	return nil
}

func (f *fakeRepo) MarkPaidByStripeInvoice(ctx context.Context, stripeInvoiceID string) (int64, error) {
	f.paidInvoices = append(f.paidInvoices, stripeInvoiceID)
	var n int64
	for i := range f.items {
		if f.items[i].StripeInvoiceID != nil && *f.items[i].StripeInvoiceID == stripeInvoiceID {
			f.items[i].PaymentStatus = model.PaymentStatusPaid
			n++
		}
	}
	return n, nil
}

func (f *fakeRepo) CreateCoupon(ctx context.Context, c *model.Coupon) error {
	f.coupons = append(f.coupons, *c)
	return nil
}
func (f *fakeRepo) UpdateCoupon(ctx context.Context, c *model.Coupon) error {
	for i := range f.coupons {
		if f.coupons[i].ID == c.ID {
			f.coupons[i] = *c
			return nil
		}
	}
	return errors.New("coupon not found")
}
func (f *fakeRepo) GetCoupon(ctx context.Context, id string) (*model.Coupon, error) {
	for i := range f.coupons {
		if f.coupons[i].ID == id {
			c := f.coupons[i]
			return &c, nil
		}
	}
	return nil, nil
}
func (f *fakeRepo) DeleteCoupon(ctx context.Context, id string) error { return nil }
func (f *fakeRepo) FindCoupons(ctx context.Context, clientID string) ([]model.Coupon, error) {
	return f.coupons, nil
}

type fakeUserRepo struct {
	byCompany map[string]*model.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) { return nil, nil }
func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) GetByCompanyName(ctx context.Context, companyName string) (*model.User, error) {
	return f.byCompany[companyName], nil
}
func (f *fakeUserRepo) FindAll(ctx context.Context) ([]model.User, error)     { return nil, nil }
func (f *fakeUserRepo) FindClients(ctx context.Context) ([]model.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(ctx context.Context, u *model.User) error       { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, u *model.User) error       { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error           { return nil }

type fakeStripe struct {
	invoiceID string
	hostedURL string
	itemCents []int64
	itemDescs []string
}

func (f *fakeStripe) CreateInvoice(ctx context.Context, customerID string, daysUntilDue int64) (string, error) {
	return f.invoiceID, nil
}

func (f *fakeStripe) CreateInvoiceItem(ctx context.Context, customerID, invoiceID, description string, amountCents int64) error {
	f.itemCents = append(f.itemCents, amountCents)
	f.itemDescs = append(f.itemDescs, description)
	return nil
}

func (f *fakeStripe) FinalizeInvoice(ctx context.Context, invoiceID string) (string, error) {
	return f.hostedURL, nil
}

func strptr(s string) *string { return &s }

func TestAmountCents(t *testing.T) {
	cases := []struct {
		cost         float64
		applyCardFee bool
		want         int64
	}{
		{100.00, false, 10000},
		{100.00, true, 10340},
		{0.01, false, 1},
		{1234.56, false, 123456},
		{10.555, false, 1056},
	}
	for _, c := range cases {
		if got := AmountCents(c.cost, c.applyCardFee); got != c.want {
			t.Errorf("AmountCents(%v, %v) = %d, want %d", c.cost, c.applyCardFee, got, c.want)
		}
	}
}

func TestCreateLineItemsDefaultsUnpaid(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewBillingUseCase(repo, &fakeUserRepo{}, &fakeStripe{}, logger.NewNop())

	items, err := uc.CreateLineItems(context.Background(), &dto.CreateLineItemsInput{
		BillingMonth: "2026-08",
		Items: []dto.LineItemInput{
			{CompanyName: "Acme Goods", LineItemName: "Storage", LineItemCost: 250},
			{CompanyName: "Acme Goods", LineItemName: "Pick and pack", LineItemCost: 412.5},
		},
	})
	if err != nil {
		t.Fatalf("CreateLineItems: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("created %d items", len(items))
	}
	for _, item := range items {
		if item.PaymentStatus != model.PaymentStatusUnpaid {
			t.Errorf("item %q status = %q", item.LineItemName, item.PaymentStatus)
		}
		if item.BillingMonth != "2026-08" {
			t.Errorf("item %q month = %q", item.LineItemName, item.BillingMonth)
		}
	}
}

func TestCreateStripeInvoice(t *testing.T) {
	repo := &fakeRepo{items: []model.InvoiceLineItem{
		{ID: "li-1", BillingMonth: "2026-08", CompanyName: "Acme Goods", LineItemName: "Storage", LineItemCost: 250},
		{ID: "li-2", BillingMonth: "2026-08", CompanyName: "Acme Goods", LineItemName: "Pick and pack", LineItemCost: 100},
	}}
	users := &fakeUserRepo{byCompany: map[string]*model.User{
		"Acme Goods": {CompanyName: "Acme Goods", StripeCustomerID: strptr("cus_123")},
	}}
	stripe := &fakeStripe{invoiceID: "in_456", hostedURL: "https://invoice.stripe.com/i/in_456"}
	uc := NewBillingUseCase(repo, users, stripe, logger.NewNop())

	res, err := uc.CreateStripeInvoice(context.Background(), &dto.CreateInvoiceInput{
		BillingMonth: "2026-08",
		CompanyName:  "Acme Goods",
	})
	if err != nil {
		t.Fatalf("CreateStripeInvoice: %v", err)
	}
	if res.StripeInvoiceID != "in_456" || res.HostedInvoiceURL != "https://invoice.stripe.com/i/in_456" {
		t.Errorf("result = %+v", res)
	}
	if res.TotalCents != 35000 {
		t.Errorf("total = %d, want 35000", res.TotalCents)
	}
	if len(stripe.itemCents) != 2 {
		t.Fatalf("created %d stripe items", len(stripe.itemCents))
	}
	if repo.stripeRefs.invoiceID != "in_456" {
		t.Errorf("stripe refs not stamped onto line items")
	}
}

func TestCreateStripeInvoiceWithCardFee(t *testing.T) {
	repo := &fakeRepo{items: []model.InvoiceLineItem{
		{ID: "li-1", BillingMonth: "2026-08", CompanyName: "Acme Goods", LineItemName: "Storage", LineItemCost: 100},
	}}
	users := &fakeUserRepo{byCompany: map[string]*model.User{
		"Acme Goods": {CompanyName: "Acme Goods", StripeCustomerID: strptr("cus_123")},
	}}
	stripe := &fakeStripe{invoiceID: "in_789", hostedURL: "https://example.com"}
	uc := NewBillingUseCase(repo, users, stripe, logger.NewNop())

	res, err := uc.CreateStripeInvoice(context.Background(), &dto.CreateInvoiceInput{
		BillingMonth: "2026-08",
		CompanyName:  "Acme Goods",
		ApplyCardFee: true,
	})
	if err != nil {
		t.Fatalf("CreateStripeInvoice: %v", err)
	}
	if res.TotalCents != 10340 {
		t.Errorf("total = %d, want 10340 with card fee", res.TotalCents)
	}
}

func TestCreateStripeInvoiceNoCustomer(t *testing.T) {
	repo := &fakeRepo{items: []model.InvoiceLineItem{
		{ID: "li-1", BillingMonth: "2026-08", CompanyName: "No Stripe Inc", LineItemName: "Storage", LineItemCost: 10},
	}}
	uc := NewBillingUseCase(repo, &fakeUserRepo{byCompany: map[string]*model.User{}}, &fakeStripe{}, logger.NewNop())

	if _, err := uc.CreateStripeInvoice(context.Background(), &dto.CreateInvoiceInput{
		BillingMonth: "2026-08", CompanyName: "No Stripe Inc",
	}); err == nil {
		t.Fatalf("expected error when company has no stripe customer")
	}
}

func TestHandlePaymentSucceeded(t *testing.T) {
	repo := &fakeRepo{items: []model.InvoiceLineItem{
		{ID: "li-1", PaymentStatus: model.PaymentStatusUnpaid, StripeInvoiceID: strptr("in_456")},
		{ID: "li-2", PaymentStatus: model.PaymentStatusUnpaid, StripeInvoiceID: strptr("in_456")},
		{ID: "li-3", PaymentStatus: model.PaymentStatusUnpaid, StripeInvoiceID: strptr("in_999")},
	}}
	uc := NewBillingUseCase(repo, &fakeUserRepo{}, &fakeStripe{}, logger.NewNop())

	if err := uc.HandlePaymentSucceeded(context.Background(), "in_456"); err != nil {
		t.Fatalf("HandlePaymentSucceeded: %v", err)
	}
	if repo.items[0].PaymentStatus != model.PaymentStatusPaid || repo.items[1].PaymentStatus != model.PaymentStatusPaid {
		t.Errorf("matching items not marked paid")
	}
	if repo.items[2].PaymentStatus != model.PaymentStatusUnpaid {
		t.Errorf("unrelated invoice's item was marked paid")
	}
}

func TestEditCoupon(t *testing.T) {
	repo := &fakeRepo{coupons: []model.Coupon{
		{ID: "cp-1", ClientID: "orders@hometownamazon.com", Name: "FREESHIP10"},
	}}
	uc := NewBillingUseCase(repo, &fakeUserRepo{}, &fakeStripe{}, logger.NewNop())

	c, err := uc.EditCoupon(context.Background(), &dto.EditCouponInput{
		ID:       "cp-1",
		ClientID: "orders@hometownwalmart.com",
		Name:     "FREESHIP15",
	})
	if err != nil {
		t.Fatalf("EditCoupon: %v", err)
	}
	if c.ClientID != "orders@hometownwalmart.com" || c.Name != "FREESHIP15" {
		t.Errorf("coupon = %+v", c)
	}
	if repo.coupons[0].Name != "FREESHIP15" {
		t.Errorf("stored coupon not updated: %+v", repo.coupons[0])
	}
}

func TestEditCouponUnknownID(t *testing.T) {
	uc := NewBillingUseCase(&fakeRepo{}, &fakeUserRepo{}, &fakeStripe{}, logger.NewNop())

	if _, err := uc.EditCoupon(context.Background(), &dto.EditCouponInput{
		ID:       "cp-missing",
		ClientID: "orders@hometownamazon.com",
		Name:     "FREESHIP10",
	}); err == nil {
		t.Fatal("expected an error for an unknown coupon id")
	}
}
