package dto

type LineItemInput struct {
	CompanyName          string  `json:"companyName"`
	LineItemName         string  `json:"lineItemName"`
	LineItemCost         float64 `json:"lineItemCost"`
	LineItemBillingTerms string  `json:"lineItemBillingTerms"`
}

type CreateLineItemsInput struct {
	BillingMonth string          `json:"billingMonth"`
	Items        []LineItemInput `json:"items"`
}

type EditLineItemInput struct {
	ID                   string  `json:"id"`
	LineItemName         string  `json:"lineItemName"`
	LineItemCost         float64 `json:"lineItemCost"`
	LineItemBillingTerms string  `json:"lineItemBillingTerms"`
	PaymentStatus        string  `json:"paymentStatus"`
}

type UpdatePaymentStatusInput struct {
	ID            string `json:"id"`
	PaymentStatus string `json:"paymentStatus"`
}

// CreateInvoiceInput drives Stripe invoice creation for one company's billing
// month. ApplyCardFee adds the card-processing markup to every line item.
type CreateInvoiceInput struct {
	BillingMonth string `json:"billingMonth"`
	CompanyName  string `json:"companyName"`
	ApplyCardFee bool   `json:"applyCardFee"`
	DaysUntilDue int64  `json:"daysUntilDue"`
}

type CreateInvoiceResult struct {
	StripeInvoiceID  string `json:"stripeInvoiceId"`
	HostedInvoiceURL string `json:"hostedInvoiceUrl"`
	TotalCents       int64  `json:"totalCents"`
}

type CreateCouponInput struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
}

type EditCouponInput struct {
	ID       string `json:"id"`
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
}
