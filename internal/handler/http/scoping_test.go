package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/leave"
	"github.com/mawared/mawared-backend/internal/domain/user"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authedRequest builds a request carrying a verified token context, the way
// the jwtauth.Verifier middleware would leave it.
func authedRequest(t *testing.T, method, target, body string, claims map[string]interface{}) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("scoping-test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)

	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return r.WithContext(jwtauth.NewContext(r.Context(), token, nil))
}

func storeOwnerClaims(storeID string) map[string]interface{} {
	return map[string]interface{}{
		"user_id":  "owner-1",
		"role":     string(user.RoleStoreOwner),
		"store_id": storeID,
		"type":     "access",
	}
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

type fakeEmployeeService struct {
	employees map[string]employee.EmployeeResponse
	updated   []string
	deleted   []string
}

func (f *fakeEmployeeService) CreateEmployee(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{StoreID: req.StoreID}, nil
}

func (f *fakeEmployeeService) GetEmployee(_ context.Context, id string) (employee.EmployeeResponse, error) {
	resp, ok := f.employees[id]
	if !ok {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}
	return resp, nil
}

func (f *fakeEmployeeService) GetMyProfile(_ context.Context, _ string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeService) UpdateEmployee(_ context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	f.updated = append(f.updated, req.ID)
	return f.employees[req.ID], nil
}

func (f *fakeEmployeeService) DeleteEmployee(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmployeeService) ListStoreEmployees(_ context.Context, _ string, _ employee.Filter) (employee.ListEmployeeResponse, error) {
	return employee.ListEmployeeResponse{}, nil
}

func (f *fakeEmployeeService) ListEmployees(_ context.Context, _ employee.Filter) (employee.ListEmployeeResponse, error) {
	return employee.ListEmployeeResponse{}, nil
}

func newScopingEmployeeHandler() (*fakeEmployeeService, EmployeeHandler) {
	svc := &fakeEmployeeService{employees: map[string]employee.EmployeeResponse{
		"emp-own":   {ID: "emp-own", StoreID: "store-1"},
		"emp-other": {ID: "emp-other", StoreID: "store-2"},
	}}
	return svc, NewEmployeeHandler(svc)
}

func TestEmployeeHandlerStoreOwnerScope(t *testing.T) {
	t.Run("update within own store passes", func(t *testing.T) {
		svc, handler := newScopingEmployeeHandler()

		r := authedRequest(t, http.MethodPut, "/employees/emp-own", `{"position":"Cashier"}`, storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "emp-own")
		w := httptest.NewRecorder()
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"emp-own"}, svc.updated)
	})

	t.Run("update of another store's employee is refused", func(t *testing.T) {
		svc, handler := newScopingEmployeeHandler()

		r := authedRequest(t, http.MethodPut, "/employees/emp-other", `{"position":"Cashier"}`, storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "emp-other")
		w := httptest.NewRecorder()
		handler.Update(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, svc.updated)
	})

	t.Run("delete of another store's employee is refused", func(t *testing.T) {
		svc, handler := newScopingEmployeeHandler()

		r := authedRequest(t, http.MethodDelete, "/employees/emp-other", "", storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "emp-other")
		w := httptest.NewRecorder()
		handler.Delete(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Empty(t, svc.deleted)
	})

	t.Run("hr updates across stores", func(t *testing.T) {
		svc, handler := newScopingEmployeeHandler()

		r := authedRequest(t, http.MethodPut, "/employees/emp-other", `{"position":"Cashier"}`, map[string]interface{}{
			"user_id": "hr-1",
			"role":    string(user.RoleHR),
			"type":    "access",
		})
		r = withURLParam(r, "id", "emp-other")
		w := httptest.NewRecorder()
		handler.Update(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"emp-other"}, svc.updated)
	})
}

type fakeScopedLeaveService struct {
	leave.LeaveService // unused methods panic if called

	requests map[string]leave.LeaveRequestResponse
	approved []string
	rejected []string
}

func (f *fakeScopedLeaveService) GetLeaveRequest(_ context.Context, requestID string) (leave.LeaveRequestResponse, error) {
	resp, ok := f.requests[requestID]
	if !ok {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestNotFound
	}
	return resp, nil
}

func (f *fakeScopedLeaveService) ApproveLeaveRequest(_ context.Context, requestID string, _ string) error {
	f.approved = append(f.approved, requestID)
	return nil
}

func (f *fakeScopedLeaveService) RejectLeaveRequest(_ context.Context, req leave.RejectRequestRequest, _ string) error {
	f.rejected = append(f.rejected, req.RequestID)
	return nil
}

func newScopingLeaveHandler() (*fakeScopedLeaveService, LeaveHandler) {
	svc := &fakeScopedLeaveService{requests: map[string]leave.LeaveRequestResponse{
		"req-own":   {ID: "req-own", EmployeeID: "emp-own", StoreID: "store-1", Status: "pending"},
		"req-other": {ID: "req-other", EmployeeID: "emp-other", StoreID: "store-2", Status: "pending"},
	}}
	return svc, NewLeaveHandler(svc)
}

func TestLeaveHandlerStoreOwnerScope(t *testing.T) {
	t.Run("approve within own store passes", func(t *testing.T) {
		svc, handler := newScopingLeaveHandler()

		r := authedRequest(t, http.MethodPost, "/leave/requests/req-own/approve", "", storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "req-own")
		w := httptest.NewRecorder()
		handler.ApproveRequest(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"req-own"}, svc.approved)
	})

	t.Run("approve of another store's request is refused", func(t *testing.T) {
		svc, handler := newScopingLeaveHandler()

		r := authedRequest(t, http.MethodPost, "/leave/requests/req-other/approve", "", storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "req-other")
		w := httptest.NewRecorder()
		handler.ApproveRequest(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, svc.approved)
	})

	t.Run("reject of another store's request is refused", func(t *testing.T) {
		svc, handler := newScopingLeaveHandler()

		r := authedRequest(t, http.MethodPost, "/leave/requests/req-other/reject", `{"reason":"coverage"}`, storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "req-other")
		w := httptest.NewRecorder()
		handler.RejectRequest(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, svc.rejected)
	})

	t.Run("hr approves across stores", func(t *testing.T) {
		svc, handler := newScopingLeaveHandler()

		r := authedRequest(t, http.MethodPost, "/leave/requests/req-other/approve", "", map[string]interface{}{
			"user_id": "hr-1",
			"role":    string(user.RoleHR),
			"type":    "access",
		})
		r = withURLParam(r, "id", "req-other")
		w := httptest.NewRecorder()
		handler.ApproveRequest(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"req-other"}, svc.approved)
	})

	t.Run("get of another store's request reads as not found", func(t *testing.T) {
		_, handler := newScopingLeaveHandler()

		r := authedRequest(t, http.MethodGet, "/leave/requests/req-other", "", storeOwnerClaims("store-1"))
		r = withURLParam(r, "id", "req-other")
		w := httptest.NewRecorder()
		handler.GetRequest(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
