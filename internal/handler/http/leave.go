package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/leave"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeaveType(w http.ResponseWriter, r *http.Request)
	UpdateLeaveType(w http.ResponseWriter, r *http.Request)
	ListLeaveTypes(w http.ResponseWriter, r *http.Request)
	DeleteLeaveType(w http.ResponseWriter, r *http.Request)

	SetBalance(w http.ResponseWriter, r *http.Request)
	GetMyBalances(w http.ResponseWriter, r *http.Request)
	GetEmployeeBalances(w http.ResponseWriter, r *http.Request)

	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListMyRequests(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	ApproveRequest(w http.ResponseWriter, r *http.Request)
	RejectRequest(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveService}
}

// CreateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateLeaveType(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	leaveType, err := h.leaveService.CreateLeaveType(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave type service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave type created successfully", leaveType)
}

// UpdateLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) UpdateLeaveType(w http.ResponseWriter, r *http.Request) {
	var updateReq leave.UpdateLeaveTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update leave type decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.leaveService.UpdateLeaveType(r.Context(), updateReq); err != nil {
		slog.Error("Update leave type service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type updated successfully", nil)
}

// ListLeaveTypes implements LeaveHandler.
func (h *LeaveHandlerImpl) ListLeaveTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.leaveService.ListLeaveTypes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// DeleteLeaveType implements LeaveHandler.
func (h *LeaveHandlerImpl) DeleteLeaveType(w http.ResponseWriter, r *http.Request) {
	if err := h.leaveService.DeleteLeaveType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave type deleted successfully", nil)
}

// SetBalance implements LeaveHandler.
func (h *LeaveHandlerImpl) SetBalance(w http.ResponseWriter, r *http.Request) {
	var setReq leave.SetLeaveBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&setReq); err != nil {
		slog.Error("Set leave balance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	balance, err := h.leaveService.SetLeaveBalance(r.Context(), setReq)
	if err != nil {
		slog.Error("Set leave balance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave balance saved successfully", leave.NewLeaveBalanceResponse(balance))
}

// GetMyBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetMyBalances(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	balances, err := h.leaveService.GetMyBalances(r.Context(), employeeID, yearFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// GetEmployeeBalances implements LeaveHandler.
func (h *LeaveHandlerImpl) GetEmployeeBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.leaveService.GetEmployeeBalances(r.Context(), chi.URLParam(r, "id"), yearFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

// CreateRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var createReq leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	createReq.EmployeeID = employeeIDFromRequest(r)
	if createReq.EmployeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	resp, err := h.leaveService.CreateLeaveRequest(r.Context(), createReq)
	if err != nil {
		slog.Error("Create leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", resp)
}

// GetRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	resp, err := h.leaveService.GetLeaveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Employees may only read their own requests; store owners only their
	// store's.
	switch roleFromRequest(r) {
	case user.RoleEmployee:
		if resp.EmployeeID != employeeIDFromRequest(r) {
			response.HandleError(w, leave.ErrLeaveRequestNotFound)
			return
		}
	case user.RoleStoreOwner:
		if resp.StoreID != storeIDFromRequest(r) {
			response.HandleError(w, leave.ErrLeaveRequestNotFound)
			return
		}
	}

	response.Success(w, resp)
}

// ListMyRequests implements LeaveHandler.
func (h *LeaveHandlerImpl) ListMyRequests(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	filter := leaveFilterFromQuery(r)
	resp, err := h.leaveService.ListMyLeaveRequests(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Requests, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: resp.Total,
	})
}

// ListRequests implements LeaveHandler. Store owners see their store's
// requests; hr and the super admin see everything.
func (h *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
	filter := leaveFilterFromQuery(r)

	var (
		resp leave.ListLeaveRequestResponse
		err  error
	)
	if roleFromRequest(r) == user.RoleStoreOwner {
		resp, err = h.leaveService.ListStoreLeaveRequests(r.Context(), storeIDFromRequest(r), filter)
	} else {
		resp, err = h.leaveService.ListLeaveRequests(r.Context(), filter)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Requests, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: resp.Total,
	})
}

// ApproveRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")
	if err := h.checkReviewerScope(r, requestID); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leaveService.ApproveLeaveRequest(r.Context(), requestID, userIDFromRequest(r)); err != nil {
		slog.Error("Approve leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved successfully", nil)
}

// RejectRequest implements LeaveHandler.
func (h *LeaveHandlerImpl) RejectRequest(w http.ResponseWriter, r *http.Request) {
	var rejectReq leave.RejectRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&rejectReq); err != nil {
		slog.Error("Reject leave request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	rejectReq.RequestID = chi.URLParam(r, "id")
	if err := h.checkReviewerScope(r, rejectReq.RequestID); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.leaveService.RejectLeaveRequest(r.Context(), rejectReq, userIDFromRequest(r)); err != nil {
		slog.Error("Reject leave request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected successfully", nil)
}

// checkReviewerScope restricts store owners to requests from their own
// store's employees. Out-of-store requests read as not found.
func (h *LeaveHandlerImpl) checkReviewerScope(r *http.Request, requestID string) error {
	if roleFromRequest(r) != user.RoleStoreOwner {
		return nil
	}

	resp, err := h.leaveService.GetLeaveRequest(r.Context(), requestID)
	if err != nil {
		return err
	}
	if resp.StoreID != storeIDFromRequest(r) {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func yearFromQuery(r *http.Request) int {
	if year, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && year > 0 {
		return year
	}
	return time.Now().Year()
}

func leaveFilterFromQuery(r *http.Request) leave.LeaveRequestFilter {
	filter := leave.LeaveRequestFilter{Page: 1, Limit: 20}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := leave.LeaveRequestStatus(status)
		filter.Status = &s
	}
	if leaveTypeID := r.URL.Query().Get("leave_type_id"); leaveTypeID != "" {
		filter.LeaveTypeID = &leaveTypeID
	}
	if start, err := time.Parse("2006-01-02", r.URL.Query().Get("start_date")); err == nil {
		filter.StartDate = &start
	}
	if end, err := time.Parse("2006-01-02", r.URL.Query().Get("end_date")); err == nil {
		filter.EndDate = &end
	}

	return filter
}
