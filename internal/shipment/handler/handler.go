package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/internal/shipment"
	"github.com/hometown-industries/warehouse-service/internal/shipment/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type ShipmentHandler struct {
	uc     shipment.UseCase
	logger logger.Logger
}

func NewShipmentHandler(uc shipment.UseCase, log logger.Logger) *ShipmentHandler {
	return &ShipmentHandler{uc: uc, logger: log}
}

func (h *ShipmentHandler) CreateOutbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateOutboundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ClientID == "" || input.ShipmentNumber == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "clientId and shipmentNumber are required")
		return
	}

	row, err := h.uc.CreateOutbound(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create outbound shipment",
			zap.String("shipment_number", input.ShipmentNumber), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create outbound shipment")
		return
	}
	server.WriteJSON(w, http.StatusCreated, row)
}

func (h *ShipmentHandler) EditOutbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.EditOutboundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}

	row, err := h.uc.EditOutbound(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to edit outbound shipment", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to edit outbound shipment")
		return
	}
	server.WriteJSON(w, http.StatusOK, row)
}

func (h *ShipmentHandler) DeleteOutbound(w http.ResponseWriter, r *http.Request) {
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
	if err := h.uc.DeleteOutbound(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete outbound shipment", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete outbound shipment")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Shipment was deleted")
}

// FetchOutbound lists outbound shipments for an inclusive date range given as
// start/end query params in YYYY-MM-DD form.
func (h *ShipmentHandler) FetchOutbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()
	start, err := time.Parse("2006-01-02", q.Get("start"))
	if err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := time.Parse("2006-01-02", q.Get("end"))
	if err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid end date")
		return
	}

	rows, err := h.uc.FetchOutboundByDateRange(r.Context(), start, end)
	if err != nil {
		h.logger.Error("failed to fetch outbound shipments", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to fetch outbound shipments")
		return
	}
	server.WriteJSON(w, http.StatusOK, rows)
}

func (h *ShipmentHandler) UpdateTracking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.ManualTrackingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ClientID == "" || input.ShipmentNumber == "" || input.TrackingNumber == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "clientId, shipmentNumber and trackingNumber are required")
		return
	}

	if err := h.uc.UpdateTrackingManual(r.Context(), &input); err != nil {
		h.logger.Error("failed to update tracking",
			zap.String("shipment_number", input.ShipmentNumber), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to update tracking")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Tracking was updated")
}

func (h *ShipmentHandler) CreateInbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateInboundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ClientID == "" || input.ShipmentNumber == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "clientId and shipmentNumber are required")
		return
	}

	row, err := h.uc.CreateInbound(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create inbound shipment",
			zap.String("shipment_number", input.ShipmentNumber), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create inbound shipment")
		return
	}
	server.WriteJSON(w, http.StatusCreated, row)
}

func (h *ShipmentHandler) EditInbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.EditInboundInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}

	row, err := h.uc.EditInbound(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to edit inbound shipment", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to edit inbound shipment")
		return
	}
	server.WriteJSON(w, http.StatusOK, row)
}

func (h *ShipmentHandler) DeleteInbound(w http.ResponseWriter, r *http.Request) {
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
	if err := h.uc.DeleteInbound(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete inbound shipment", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete inbound shipment")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Shipment was deleted")
}

func (h *ShipmentHandler) ListInbound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rows, err := h.uc.ListInbound(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.logger.Error("failed to list inbound shipments", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list inbound shipments")
		return
	}
	server.WriteJSON(w, http.StatusOK, rows)
}

func (h *ShipmentHandler) ConfirmCount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.ConfirmCountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" || input.CountedQuantity < 0 {
		server.WriteJSONError(w, http.StatusBadRequest, "id and a non-negative countedQuantity are required")
		return
	}

	row, err := h.uc.ConfirmCount(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to confirm count", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to confirm count")
		return
	}
	server.WriteJSON(w, http.StatusOK, row)
}
