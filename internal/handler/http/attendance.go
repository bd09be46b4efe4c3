package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mawared/mawared-backend/internal/domain/attendance"
	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/response"

	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	GetMyMonth(w http.ResponseWriter, r *http.Request)
	GetStoreDay(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
			slog.Error("Check-in decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	checkInReq.EmployeeID = employeeIDFromRequest(r)
	if checkInReq.EmployeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	resp, err := h.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("Check-in service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", resp)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	checkOutReq := attendance.CheckOutRequest{EmployeeID: employeeIDFromRequest(r)}
	if checkOutReq.EmployeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	resp, err := h.attendanceService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("Check-out service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", resp)
}

// GetMyMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	records, err := h.attendanceService.GetMyMonth(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// GetStoreDay implements AttendanceHandler. Store owners are pinned to
// their own store.
func (h *AttendanceHandlerImpl) GetStoreDay(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if roleFromRequest(r) == user.RoleStoreOwner && storeID != storeIDFromRequest(r) {
		response.HandleError(w, store.ErrStoreNotFound)
		return
	}

	records, err := h.attendanceService.GetStoreDay(r.Context(), storeID, r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
