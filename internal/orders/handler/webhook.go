package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/orders"
	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

// WebhookHandler receives the shipping platform's notifications. The platform
// delivers at least once and sends only a resource_url pointer; the pipelines
// do the follow-up fetch.
type WebhookHandler struct {
	uc      orders.UseCase
	timeout time.Duration
	logger  logger.Logger
}

func NewWebhookHandler(uc orders.UseCase, timeout time.Duration, log logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, timeout: timeout, logger: log}
}

type webhookEnvelope struct {
	ResourceURL  string `json:"resource_url"`
	ResourceType string `json:"resource_type"`
}

type webhookSuccess struct {
	Success bool `json:"success"`
}

// setCORS mirrors the contract webhook senders were registered against:
// wildcard origin, POST plus preflight, Content-Type allowed.
func setCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func (h *WebhookHandler) Orders(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "order notify", h.uc.IngestOrders)
}

func (h *WebhookHandler) ShipNotify(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "ship notify", h.uc.ReconcileTracking)
}

func (h *WebhookHandler) handle(w http.ResponseWriter, r *http.Request, kind string, run func(context.Context, string) error) {
	setCORS(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var event webhookEnvelope
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if event.ResourceURL == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "Invalid webhook payload: no resource_url provided")
		return
	}

	h.logger.Info("webhook received",
		zap.String("kind", kind),
		zap.String("resource_type", event.ResourceType),
		zap.String("request_id", server.RequestIDFromContext(r.Context())),
	)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := run(ctx, event.ResourceURL); err != nil {
		h.logger.Error("webhook processing failed", zap.String("kind", kind), zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			// Transient: the sender retries on 5xx gateway errors.
			server.WriteJSONError(w, http.StatusGatewayTimeout, "Timed out fetching order data")
			return
		}
		server.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch order data")
		return
	}

	server.WriteJSON(w, http.StatusOK, webhookSuccess{Success: true})
}
