package http

import (
	"net/http"

	"github.com/mawared/mawared-backend/internal/domain/dashboard"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOverview implements DashboardHandler. Store owners always get their own
// store's overview; admins and HR may scope to any store via ?store_id.
func (h *DashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	var storeID *string
	if roleFromRequest(r) == user.RoleStoreOwner {
		ownStore := storeIDFromRequest(r)
		storeID = &ownStore
	} else if queried := r.URL.Query().Get("store_id"); queried != "" {
		storeID = &queried
	}

	overview, err := h.dashboardService.GetOverview(r.Context(), storeID, r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
