package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hometown-industries/warehouse-service/internal/mailer"
	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

// NotificationHandler exposes the operator-triggered emails: tracking
// information, count confirmations, collection notices, and invoice delivery.
type NotificationHandler struct {
	mailer mailer.Mailer
	logger logger.Logger
}

func NewNotificationHandler(m mailer.Mailer, log logger.Logger) *NotificationHandler {
	return &NotificationHandler{mailer: m, logger: log}
}

func (h *NotificationHandler) send(w http.ResponseWriter, r *http.Request, msg mailer.Message) {
	if err := h.mailer.Send(r.Context(), msg); err != nil {
		h.logger.Error("failed to send email",
			zap.String("subject", msg.Subject), zap.Strings("to", msg.To), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to send email")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Email was sent")
}

func (h *NotificationHandler) SendTrackingInformation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		To             []string `json:"to"`
		ShipmentNumber string   `json:"shipmentNumber"`
		Carrier        string   `json:"carrier"`
		TrackingNumber string   `json:"trackingNumber"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(input.To) == 0 || input.ShipmentNumber == "" || input.TrackingNumber == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "to, shipmentNumber and trackingNumber are required")
		return
	}

	html := fmt.Sprintf(
		"<p>Tracking information for shipment <strong>%s</strong>:</p><p>Carrier: %s<br>Tracking number: %s</p>",
		input.ShipmentNumber, input.Carrier, input.TrackingNumber)
	h.send(w, r, mailer.Message{
		To:      input.To,
		Subject: fmt.Sprintf("Tracking information for shipment %s", input.ShipmentNumber),
		HTML:    html,
	})
}

func (h *NotificationHandler) SendCountConfirmation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		To              []string `json:"to"`
		ShipmentNumber  string   `json:"shipmentNumber"`
		SKU             string   `json:"sku"`
		CountedQuantity int64    `json:"countedQuantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(input.To) == 0 || input.ShipmentNumber == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "to and shipmentNumber are required")
		return
	}

	html := fmt.Sprintf(
		"<p>Shipment <strong>%s</strong> has been received and counted.</p><p>SKU: %s<br>Counted quantity: %d</p>",
		input.ShipmentNumber, input.SKU, input.CountedQuantity)
	h.send(w, r, mailer.Message{
		To:      input.To,
		Subject: fmt.Sprintf("Count confirmation for shipment %s", input.ShipmentNumber),
		HTML:    html,
	})
}

func (h *NotificationHandler) SendCollectionEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		To           []string `json:"to"`
		CompanyName  string   `json:"companyName"`
		BillingMonth string   `json:"billingMonth"`
		AmountDue    string   `json:"amountDue"`
		InvoiceURL   string   `json:"invoiceUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(input.To) == 0 || input.CompanyName == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "to and companyName are required")
		return
	}

	html := fmt.Sprintf(
		"<p>This is a reminder that the %s invoice for %s remains unpaid.</p><p>Amount due: %s</p>",
		input.BillingMonth, input.CompanyName, input.AmountDue)
	if input.InvoiceURL != "" {
		html += fmt.Sprintf(`<p><a href="%s">Pay invoice</a></p>`, input.InvoiceURL)
	}
	h.send(w, r, mailer.Message{
		To:      input.To,
		Subject: fmt.Sprintf("Payment reminder: %s invoice", input.BillingMonth),
		HTML:    html,
	})
}

func (h *NotificationHandler) SendInvoiceEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		To           []string `json:"to"`
		CompanyName  string   `json:"companyName"`
		BillingMonth string   `json:"billingMonth"`
		InvoiceURL   string   `json:"invoiceUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(input.To) == 0 || input.InvoiceURL == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "to and invoiceUrl are required")
		return
	}

	html := fmt.Sprintf(
		`<p>Your %s invoice for %s is ready.</p><p><a href="%s">View and pay invoice</a></p>`,
		input.BillingMonth, input.CompanyName, input.InvoiceURL)
	h.send(w, r, mailer.Message{
		To:      input.To,
		Subject: fmt.Sprintf("Invoice for %s", input.BillingMonth),
		HTML:    html,
	})
}
