package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hometown-industries/warehouse-service/internal/billing"
	"github.com/hometown-industries/warehouse-service/internal/billing/dto"
	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type BillingHandler struct {
	uc     billing.UseCase
	logger logger.Logger
}

func NewBillingHandler(uc billing.UseCase, log logger.Logger) *BillingHandler {
	return &BillingHandler{uc: uc, logger: log}
}

func (h *BillingHandler) CreateLineItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateLineItemsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.BillingMonth == "" || len(input.Items) == 0 {
		server.WriteJSONError(w, http.StatusBadRequest, "billingMonth and items are required")
		return
	}

	items, err := h.uc.CreateLineItems(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create invoice line items",
			zap.String("billing_month", input.BillingMonth), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create invoice line items")
		return
	}
	server.WriteJSON(w, http.StatusCreated, items)
}

func (h *BillingHandler) EditLineItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.EditLineItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}

	item, err := h.uc.EditLineItem(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to edit invoice line item", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to edit invoice line item")
		return
	}
	server.WriteJSON(w, http.StatusOK, item)
}

func (h *BillingHandler) DeleteLineItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.uc.DeleteLineItem(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete invoice line item", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete invoice line item")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Line item was deleted")
}

func (h *BillingHandler) ListLineItems(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()
	items, err := h.uc.ListLineItems(r.Context(), q.Get("billing_month"), q.Get("company_name"))
	if err != nil {
		h.logger.Error("failed to list invoice line items", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list invoice line items")
		return
	}
	server.WriteJSON(w, http.StatusOK, items)
}

func (h *BillingHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.UpdatePaymentStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" || input.PaymentStatus == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id and paymentStatus are required")
		return
	}

	if err := h.uc.UpdatePaymentStatus(r.Context(), &input); err != nil {
		h.logger.Error("failed to update payment status", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to update payment status")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Payment status was updated")
}

func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateInvoiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.BillingMonth == "" || input.CompanyName == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "billingMonth and companyName are required")
		return
	}

	result, err := h.uc.CreateStripeInvoice(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create stripe invoice",
			zap.String("company", input.CompanyName),
			zap.String("billing_month", input.BillingMonth),
			zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create invoice")
		return
	}
	server.WriteJSON(w, http.StatusOK, result)
}

// stripeEvent is the subset of the Stripe webhook envelope we read.
type stripeEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

// PaymentWebhook handles Stripe events. Only invoice.payment_succeeded is
// acted on; everything else is acknowledged and dropped.
func (h *BillingHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var event stripeEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid event payload")
		return
	}

	if event.Type != "invoice.payment_succeeded" {
		server.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}
	if event.Data.Object.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "event has no invoice id")
		return
	}

	if err := h.uc.HandlePaymentSucceeded(r.Context(), event.Data.Object.ID); err != nil {
		h.logger.Error("failed to process payment event",
			zap.String("invoice_id", event.Data.Object.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to process payment event")
		return
	}
	server.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func (h *BillingHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateCouponInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ClientID == "" || input.Name == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "clientId and name are required")
		return
	}

	c, err := h.uc.CreateCoupon(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create coupon", zap.String("client_id", input.ClientID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create coupon")
		return
	}
	server.WriteJSON(w, http.StatusCreated, c)
}

func (h *BillingHandler) EditCoupon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.EditCouponInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" || input.ClientID == "" || input.Name == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id, clientId and name are required")
		return
	}

	c, err := h.uc.EditCoupon(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to edit coupon", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to edit coupon")
		return
	}
	server.WriteJSON(w, http.StatusOK, c)
}

func (h *BillingHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := h.uc.DeleteCoupon(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete coupon", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete coupon")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Coupon was deleted")
}

func (h *BillingHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	coupons, err := h.uc.ListCoupons(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.logger.Error("failed to list coupons", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list coupons")
		return
	}
	server.WriteJSON(w, http.StatusOK, coupons)
}
