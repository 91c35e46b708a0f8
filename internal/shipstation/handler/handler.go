package handler

import (
	"net/http"

	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/internal/shipstation"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

// StoreHandler proxies the shipping platform's store directory so the portal
// can populate store pickers without holding platform credentials.
type StoreHandler struct {
	client *shipstation.Client
	logger logger.Logger
}

func NewStoreHandler(client *shipstation.Client, log logger.Logger) *StoreHandler {
	return &StoreHandler{client: client, logger: log}
}

func (h *StoreHandler) ListStores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	stores, err := h.client.ListStores(r.Context())
	if err != nil {
		h.logger.Error("failed to list stores", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list stores")
		return
	}
	server.WriteJSON(w, http.StatusOK, stores)
}
