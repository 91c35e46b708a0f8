package server

import (
	"net/http"

	"github.com/hometown-industries/warehouse-service/pkg/logger"
)

// Handlers collects the HTTP surface of every domain. The router owns paths;
// each handler enforces its own method.
type Handlers struct {
	Webhook interface {
		Orders(http.ResponseWriter, *http.Request)
		ShipNotify(http.ResponseWriter, *http.Request)
	}
	Inventory interface {
		Create(http.ResponseWriter, *http.Request)
		Edit(http.ResponseWriter, *http.Request)
		Delete(http.ResponseWriter, *http.Request)
		List(http.ResponseWriter, *http.Request)
		Changelog(http.ResponseWriter, *http.Request)
	}
	SKUMapping interface {
		Create(http.ResponseWriter, *http.Request)
		Delete(http.ResponseWriter, *http.Request)
		List(http.ResponseWriter, *http.Request)
		ListUnmapped(http.ResponseWriter, *http.Request)
		DeleteUnmapped(http.ResponseWriter, *http.Request)
	}
	Shipment interface {
		CreateOutbound(http.ResponseWriter, *http.Request)
		EditOutbound(http.ResponseWriter, *http.Request)
		DeleteOutbound(http.ResponseWriter, *http.Request)
		FetchOutbound(http.ResponseWriter, *http.Request)
		UpdateTracking(http.ResponseWriter, *http.Request)
		CreateInbound(http.ResponseWriter, *http.Request)
		EditInbound(http.ResponseWriter, *http.Request)
		DeleteInbound(http.ResponseWriter, *http.Request)
		ListInbound(http.ResponseWriter, *http.Request)
		ConfirmCount(http.ResponseWriter, *http.Request)
	}
	User interface {
		Create(http.ResponseWriter, *http.Request)
		Edit(http.ResponseWriter, *http.Request)
		Delete(http.ResponseWriter, *http.Request)
		List(http.ResponseWriter, *http.Request)
	}
	Billing interface {
		CreateLineItems(http.ResponseWriter, *http.Request)
		EditLineItem(http.ResponseWriter, *http.Request)
		DeleteLineItem(http.ResponseWriter, *http.Request)
		ListLineItems(http.ResponseWriter, *http.Request)
		UpdatePaymentStatus(http.ResponseWriter, *http.Request)
		CreateInvoice(http.ResponseWriter, *http.Request)
		PaymentWebhook(http.ResponseWriter, *http.Request)
		CreateCoupon(http.ResponseWriter, *http.Request)
		EditCoupon(http.ResponseWriter, *http.Request)
		DeleteCoupon(http.ResponseWriter, *http.Request)
		ListCoupons(http.ResponseWriter, *http.Request)
	}
	Notification interface {
		SendTrackingInformation(http.ResponseWriter, *http.Request)
		SendCountConfirmation(http.ResponseWriter, *http.Request)
		SendCollectionEmail(http.ResponseWriter, *http.Request)
		SendInvoiceEmail(http.ResponseWriter, *http.Request)
	}
	Stores interface {
		ListStores(http.ResponseWriter, *http.Request)
	}
}

func NewRouter(h Handlers, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/webhooks/orders", h.Webhook.Orders)
	mux.HandleFunc("/webhooks/shipnotify", h.Webhook.ShipNotify)

	mux.HandleFunc("/api/inventory/create", h.Inventory.Create)
	mux.HandleFunc("/api/inventory/edit", h.Inventory.Edit)
	mux.HandleFunc("/api/inventory/delete", h.Inventory.Delete)
	mux.HandleFunc("/api/inventory/list", h.Inventory.List)
	mux.HandleFunc("/api/inventory/changelog", h.Inventory.Changelog)

	mux.HandleFunc("/api/skumapping/create", h.SKUMapping.Create)
	mux.HandleFunc("/api/skumapping/delete", h.SKUMapping.Delete)
	mux.HandleFunc("/api/skumapping/list", h.SKUMapping.List)
	mux.HandleFunc("/api/skumapping/unmapped", h.SKUMapping.ListUnmapped)
	mux.HandleFunc("/api/skumapping/unmapped/delete", h.SKUMapping.DeleteUnmapped)

	mux.HandleFunc("/api/shipments/outbound/create", h.Shipment.CreateOutbound)
	mux.HandleFunc("/api/shipments/outbound/edit", h.Shipment.EditOutbound)
	mux.HandleFunc("/api/shipments/outbound/delete", h.Shipment.DeleteOutbound)
	mux.HandleFunc("/api/shipments/outbound/fetch", h.Shipment.FetchOutbound)
	mux.HandleFunc("/api/shipments/outbound/tracking", h.Shipment.UpdateTracking)
	mux.HandleFunc("/api/shipments/inbound/create", h.Shipment.CreateInbound)
	mux.HandleFunc("/api/shipments/inbound/edit", h.Shipment.EditInbound)
	mux.HandleFunc("/api/shipments/inbound/delete", h.Shipment.DeleteInbound)
	mux.HandleFunc("/api/shipments/inbound/list", h.Shipment.ListInbound)
	mux.HandleFunc("/api/shipments/inbound/confirm-count", h.Shipment.ConfirmCount)

	mux.HandleFunc("/api/users/create", h.User.Create)
	mux.HandleFunc("/api/users/edit", h.User.Edit)
	mux.HandleFunc("/api/users/delete", h.User.Delete)
	mux.HandleFunc("/api/users/list", h.User.List)

	mux.HandleFunc("/api/billing/line-items/create", h.Billing.CreateLineItems)
	mux.HandleFunc("/api/billing/line-items/edit", h.Billing.EditLineItem)
	mux.HandleFunc("/api/billing/line-items/delete", h.Billing.DeleteLineItem)
	mux.HandleFunc("/api/billing/line-items/list", h.Billing.ListLineItems)
	mux.HandleFunc("/api/billing/payment-status", h.Billing.UpdatePaymentStatus)
	mux.HandleFunc("/api/billing/invoices/create", h.Billing.CreateInvoice)
	mux.HandleFunc("/webhooks/stripe", h.Billing.PaymentWebhook)
	mux.HandleFunc("/api/billing/coupons/create", h.Billing.CreateCoupon)
	mux.HandleFunc("/api/billing/coupons/edit", h.Billing.EditCoupon)
	mux.HandleFunc("/api/billing/coupons/delete", h.Billing.DeleteCoupon)
	mux.HandleFunc("/api/billing/coupons/list", h.Billing.ListCoupons)

	mux.HandleFunc("/api/notifications/tracking", h.Notification.SendTrackingInformation)
	mux.HandleFunc("/api/notifications/count-confirmation", h.Notification.SendCountConfirmation)
	mux.HandleFunc("/api/notifications/collection", h.Notification.SendCollectionEmail)
	mux.HandleFunc("/api/notifications/invoice", h.Notification.SendInvoiceEmail)

	mux.HandleFunc("/api/shipstation/stores", h.Stores.ListStores)

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return WithRequestID(WithLogging(log, mux))
}
