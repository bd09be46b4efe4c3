package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/handler/http/response"
)

type StoreHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyStores(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type StoreHandlerImpl struct {
	storeService store.StoreService
}

func NewStoreHandler(storeService store.StoreService) StoreHandler {
	return &StoreHandlerImpl{storeService: storeService}
}

// Create implements StoreHandler.
func (h *StoreHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq store.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.storeService.CreateStore(r.Context(), createReq)
	if err != nil {
		slog.Error("Create store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Store created successfully", resp)
}

// Get implements StoreHandler.
func (h *StoreHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.storeService.GetStore(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// GetMyStores implements StoreHandler.
func (h *StoreHandlerImpl) GetMyStores(w http.ResponseWriter, r *http.Request) {
	resp, err := h.storeService.GetMyStores(r.Context(), userIDFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// List implements StoreHandler.
func (h *StoreHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.storeService.ListStores(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements StoreHandler.
func (h *StoreHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq store.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update store decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	resp, err := h.storeService.UpdateStore(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update store service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store updated successfully", resp)
}

// Delete implements StoreHandler.
func (h *StoreHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.storeService.DeleteStore(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Store deleted successfully", nil)
}
