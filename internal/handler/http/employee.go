package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/response"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMyProfile(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Store owners may only hire into their own store.
	if roleFromRequest(r) == user.RoleStoreOwner && createReq.StoreID != storeIDFromRequest(r) {
		response.HandleError(w, employee.ErrEmployeeNotInStore)
		return
	}

	resp, err := h.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", resp)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if roleFromRequest(r) == user.RoleStoreOwner && resp.StoreID != storeIDFromRequest(r) {
		response.HandleError(w, employee.ErrEmployeeNotInStore)
		return
	}

	response.Success(w, resp)
}

// GetMyProfile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetMyProfile(r.Context(), userIDFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.checkStoreScope(r, updateReq.ID); err != nil {
		response.HandleError(w, err)
		return
	}

	resp, err := h.employeeService.UpdateEmployee(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", resp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.checkStoreScope(r, id); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// checkStoreScope restricts store owners to employees of their own store.
// Out-of-store employees read as not in store.
func (h *EmployeeHandlerImpl) checkStoreScope(r *http.Request, employeeID string) error {
	if roleFromRequest(r) != user.RoleStoreOwner {
		return nil
	}

	resp, err := h.employeeService.GetEmployee(r.Context(), employeeID)
	if err != nil {
		return err
	}
	if resp.StoreID != storeIDFromRequest(r) {
		return employee.ErrEmployeeNotInStore
	}
	return nil
}

// List implements EmployeeHandler. Store owners see their own store; hr and
// the super admin see everything.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employeeFilterFromQuery(r)

	var (
		resp employee.ListEmployeeResponse
		err  error
	)
	if roleFromRequest(r) == user.RoleStoreOwner {
		resp, err = h.employeeService.ListStoreEmployees(r.Context(), storeIDFromRequest(r), filter)
	} else {
		resp, err = h.employeeService.ListEmployees(r.Context(), filter)
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, resp.Employees, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: resp.Total,
	})
}

func employeeFilterFromQuery(r *http.Request) employee.Filter {
	filter := employee.Filter{Page: 1, Limit: 20}

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := employee.Status(status)
		filter.Status = &s
	}
	if search := r.URL.Query().Get("search"); search != "" {
		filter.Search = &search
	}

	return filter
}
