package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/internal/skumapping"
	"github.com/hometown-industries/warehouse-service/internal/skumapping/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type SKUMappingHandler struct {
	uc     skumapping.UseCase
	logger logger.Logger
}

func NewSKUMappingHandler(uc skumapping.UseCase, log logger.Logger) *SKUMappingHandler {
	return &SKUMappingHandler{uc: uc, logger: log}
}

func (h *SKUMappingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateMappingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ProductID == "" || input.ClientID == "" || input.SKU == "" || input.QuantityToDeduct <= 0 {
		server.WriteJSONError(w, http.StatusBadRequest, "product_id, client_id, sku and quantity_to_deduct are required")
		return
	}

	mapping, err := h.uc.CreateMapping(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create sku mapping", zap.String("sku", input.SKU), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create sku mapping")
		return
	}
	server.WriteJSON(w, http.StatusCreated, mapping)
}

func (h *SKUMappingHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.uc.DeleteMapping(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete sku mapping", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete sku mapping")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "SKU mapping was deleted")
}

func (h *SKUMappingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	mappings, err := h.uc.ListMappings(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.logger.Error("failed to list sku mappings", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list sku mappings")
		return
	}
	server.WriteJSON(w, http.StatusOK, mappings)
}

func (h *SKUMappingHandler) ListUnmapped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	rows, err := h.uc.ListUnmapped(r.Context(), r.URL.Query().Get("client_id"))
	if err != nil {
		h.logger.Error("failed to list unmapped skus", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list unmapped skus")
		return
	}
	server.WriteJSON(w, http.StatusOK, rows)
}

// DeleteUnmapped clears unmapped occurrences either for a whole SKU (after an
// operator adds the missing mapping) or for a single row by id.
func (h *SKUMappingHandler) DeleteUnmapped(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input struct {
		ID  string `json:"id"`
		SKU string `json:"sku"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || (input.ID == "" && input.SKU == "") {
		server.WriteJSONError(w, http.StatusBadRequest, "id or sku is required")
		return
	}

	var err error
	if input.SKU != "" {
		err = h.uc.DeleteUnmappedBySKU(r.Context(), input.SKU)
	} else {
		err = h.uc.DeleteUnmappedByID(r.Context(), input.ID)
	}
	if err != nil {
		h.logger.Error("failed to delete unmapped sku",
			zap.String("id", input.ID), zap.String("sku", input.SKU), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete unmapped sku")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "Unmapped SKU was deleted")
}
