package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/payroll"
	"github.com/mawared/mawared-backend/internal/domain/store"
	"github.com/mawared/mawared-backend/internal/domain/user"
	"github.com/mawared/mawared-backend/internal/handler/http/response"

	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	GenerateStoreMonth(w http.ResponseWriter, r *http.Request)
	GetMyEntries(w http.ResponseWriter, r *http.Request)
	GetStoreMonth(w http.ResponseWriter, r *http.Request)
	GetMonthSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// GenerateStoreMonth implements PayrollHandler.
func (h *PayrollHandlerImpl) GenerateStoreMonth(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if roleFromRequest(r) == user.RoleStoreOwner && storeID != storeIDFromRequest(r) {
		response.HandleError(w, store.ErrStoreNotFound)
		return
	}

	year, month := yearMonthFromQuery(r)
	entries, err := h.payrollService.GenerateStoreMonth(r.Context(), storeID, year, month)
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll generated successfully", entries)
}

// GetMyEntries implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMyEntries(w http.ResponseWriter, r *http.Request) {
	employeeID := employeeIDFromRequest(r)
	if employeeID == "" {
		response.HandleError(w, employee.ErrEmployeeHasNoProfile)
		return
	}

	entries, err := h.payrollService.GetMyEntries(r.Context(), employeeID, yearFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetStoreMonth implements PayrollHandler.
func (h *PayrollHandlerImpl) GetStoreMonth(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if roleFromRequest(r) == user.RoleStoreOwner && storeID != storeIDFromRequest(r) {
		response.HandleError(w, store.ErrStoreNotFound)
		return
	}

	year, month := yearMonthFromQuery(r)
	entries, err := h.payrollService.GetStoreMonth(r.Context(), storeID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// GetMonthSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) GetMonthSummary(w http.ResponseWriter, r *http.Request) {
	year, month := yearMonthFromQuery(r)
	summaries, err := h.payrollService.GetMonthSummary(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}

func yearMonthFromQuery(r *http.Request) (int, int) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && m >= 1 && m <= 12 {
		month = m
	}
	return year, month
}
