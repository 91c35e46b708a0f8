package handler

import (
	"encoding/json"
	"net/http"

	"github.com/hometown-industries/warehouse-service/internal/server"
	"github.com/hometown-industries/warehouse-service/internal/user"
	"github.com/hometown-industries/warehouse-service/internal/user/dto"
	"github.com/hometown-industries/warehouse-service/pkg/logger"
	"go.uber.org/zap"
)

type UserHandler struct {
	uc     user.UseCase
	logger logger.Logger
}

func NewUserHandler(uc user.UseCase, log logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: log}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.Username == "" || input.CompanyName == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "username and companyName are required")
		return
	}

	u, err := h.uc.CreateUser(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to create user", zap.String("username", input.Username), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	server.WriteJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var input dto.EditUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		server.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if input.ID == "" {
		server.WriteJSONError(w, http.StatusBadRequest, "id is required")
		return
	}

	u, err := h.uc.EditUser(r.Context(), &input)
	if err != nil {
		h.logger.Error("failed to edit user", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to edit user")
		return
	}
	if u == nil {
		server.WriteJSONError(w, http.StatusNotFound, "user not found")
		return
	}
	server.WriteJSON(w, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.uc.DeleteUser(r.Context(), input.ID); err != nil {
		h.logger.Error("failed to delete user", zap.String("id", input.ID), zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to delete user")
		return
	}
	server.WriteJSONMessage(w, http.StatusOK, "User was deleted")
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		server.WriteJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if r.URL.Query().Get("clients_only") == "true" {
		users, err := h.uc.ListClients(r.Context())
		if err != nil {
			h.logger.Error("failed to list clients", zap.Error(err))
			server.WriteJSONError(w, http.StatusInternalServerError, "failed to list clients")
			return
		}
		server.WriteJSON(w, http.StatusOK, users)
		return
	}
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		server.WriteJSONError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	server.WriteJSON(w, http.StatusOK, users)
}
