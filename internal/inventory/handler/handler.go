package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hometown-industries/warehouse-service/internal/inventory"
	"github.com/hometown-industries/warehouse-service/internal/inventory/dto"
	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type InventoryHandler struct {
	uc     inventory.UseCase
	logger logger.Logger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: log}
}

func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateInventoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ClientID == "" || input.Name == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "clientId and name are required")
		return
	}

	inv, err := h.uc.CreateInventory(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create inventory", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create inventory")
		return
	}
	server.WriteJSON(w, http.StatusCreated, inv)
}

func (h *InventoryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.EditInventoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}

	inv, err := h.uc.EditInventory(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to edit inventory", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to edit inventory")
		return
	}
	server.WriteJSON(w, http.StatusOK, inv)
}

func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.uc.DeleteInventory(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete inventory", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete inventory")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Inventory was deleted")
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	items, err := h.uc.ListInventory(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.logger.Error("failed to list inventory", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list inventory")
		return
	}
	server.WriteJSON(w, http.StatusOK, items)
}

func (h *InventoryHandler) Changelog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))

	entries, err := h.uc.ListChangelog(r.Context(), q.Get("client_id"), limit, offset)
	if err != nil {
		h.logger.Error("failed to list changelog", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list changelog")
		return
	}
	server.WriteJSON(w, http.StatusOK, entries)
}
