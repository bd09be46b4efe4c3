package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/domain/subscription"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/response"

	"github.com/go-chi/chi/v5"
)

type SubscriptionHandler interface {
	CreatePlan(w http.ResponseWriter, r *http.Request)
	UpdatePlan(w http.ResponseWriter, r *http.Request)
	ListPlans(w http.ResponseWriter, r *http.Request)

	Subscribe(w http.ResponseWriter, r *http.Request)
	GetStoreSubscription(w http.ResponseWriter, r *http.Request)
	Activate(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type SubscriptionHandlerImpl struct {
	subscriptionService subscription.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &SubscriptionHandlerImpl{subscriptionService: subscriptionService}
}

// CreatePlan implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var createReq subscription.CreatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	plan, err := h.subscriptionService.CreatePlan(r.Context(), createReq)
	if err != nil {
		slog.Error("Create plan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Plan created successfully", plan)
}

// UpdatePlan implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var updateReq subscription.UpdatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update plan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.subscriptionService.UpdatePlan(r.Context(), updateReq); err != nil {
		slog.Error("Update plan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Plan updated successfully", nil)
}

// ListPlans implements SubscriptionHandler. Non-admin callers only see
// active plans.
func (h *SubscriptionHandlerImpl) ListPlans(w http.ResponseWriter, r *http.Request) {
	activeOnly := roleFromRequest(r) != user.RoleSuperAdmin
	plans, err := h.subscriptionService.ListPlans(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, plans)
}

// Subscribe implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) Subscribe(w http.ResponseWriter, r *http.Request) {
	var subscribeReq subscription.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&subscribeReq); err != nil {
		slog.Error("Subscribe decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if roleFromRequest(r) == user.RoleStoreOwner {
		subscribeReq.StoreID = storeIDFromRequest(r)
	}

	sub, err := h.subscriptionService.Subscribe(r.Context(), subscribeReq)
	if err != nil {
		slog.Error("Subscribe service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Subscription started successfully", sub)
}

// GetStoreSubscription implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) GetStoreSubscription(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if roleFromRequest(r) == user.RoleStoreOwner && storeID != storeIDFromRequest(r) {
		response.HandleError(w, store.ErrStoreNotFound)
		return
	}

	sub, err := h.subscriptionService.GetStoreSubscription(r.Context(), storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sub)
}

// Activate implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) Activate(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscriptionService.Activate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Activate subscription service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subscription activated successfully", sub)
}

// Cancel implements SubscriptionHandler.
func (h *SubscriptionHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if roleFromRequest(r) == user.RoleStoreOwner && storeID != storeIDFromRequest(r) {
		response.HandleError(w, store.ErrStoreNotFound)
		return
	}

	if err := h.subscriptionService.Cancel(r.Context(), storeID); err != nil {
		slog.Error("Cancel subscription service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Subscription cancelled successfully", nil)
}
