package leave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/leave"
	"github.com/mawared/mawared-backend/internal/pkg/workdays"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture ids are UUIDv7 because request validation checks the format.
const (
	emp1ID     = "01900000-0000-7000-8000-000000000001"
	emp2ID     = "01900000-0000-7000-8000-000000000002"
	emp9ID     = "01900000-0000-7000-8000-000000000009"
	ltAnnualID = "01900000-0000-7000-8000-00000000000a"
	ltFrozenID = "01900000-0000-7000-8000-00000000000b"
)

// passthroughTx runs the closure without a real transaction so the service
// can be exercised against in-memory repositories.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func (f *fakeLeaveTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	lt.ID = "lt-" + lt.Name
	lt.IsActive = true
	f.types[lt.ID] = lt
	return lt, nil
}

func (f *fakeLeaveTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	lt, ok := f.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (f *fakeLeaveTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	list := []leave.LeaveType{}
	for _, lt := range f.types {
		list = append(list, lt)
	}
	return list, nil
}

func (f *fakeLeaveTypeRepo) Update(_ context.Context, lt leave.LeaveType) error {
	if _, ok := f.types[lt.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	f.types[lt.ID] = lt
	return nil
}

func (f *fakeLeaveTypeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.types[id]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	delete(f.types, id)
	return nil
}

type balanceKey struct {
	employeeID  string
	leaveTypeID string
	year        int
}

type fakeLeaveBalanceRepo struct {
	balances map[balanceKey]leave.LeaveBalance
	readErr  error
}

func (f *fakeLeaveBalanceRepo) Create(_ context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	b.ID = "bal-" + b.EmployeeID + "-" + b.LeaveTypeID
	f.balances[balanceKey{b.EmployeeID, b.LeaveTypeID, b.Year}] = b
	return b, nil
}

func (f *fakeLeaveBalanceRepo) GetByEmployeeTypeYear(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	if f.readErr != nil {
		return leave.LeaveBalance{}, f.readErr
	}
	b, ok := f.balances[balanceKey{employeeID, leaveTypeID, year}]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrLeaveBalanceNotFound
	}
	return b, nil
}

func (f *fakeLeaveBalanceRepo) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	list := []leave.LeaveBalance{}
	for k, b := range f.balances {
		if k.employeeID == employeeID && k.year == year {
			list = append(list, b)
		}
	}
	return list, nil
}

func (f *fakeLeaveBalanceRepo) Update(_ context.Context, b leave.LeaveBalance) error {
	f.balances[balanceKey{b.EmployeeID, b.LeaveTypeID, b.Year}] = b
	return nil
}

func (f *fakeLeaveBalanceRepo) IncrementUsed(_ context.Context, balanceID string, days int) error {
	for k, b := range f.balances {
		if b.ID == balanceID {
			if b.UsedDays+days > b.TotalDays {
				return leave.ErrInsufficientBalance
			}
			b.UsedDays += days
			f.balances[k] = b
			return nil
		}
	}
	return leave.ErrLeaveBalanceNotFound
}

type fakeLeaveRequestRepo struct {
	requests []leave.LeaveRequest
	nextID   int

	lockedEmployees []string
	lockErr         error
}

func (f *fakeLeaveRequestRepo) LockEmployee(_ context.Context, employeeID string) error {
	if f.lockErr != nil {
		return f.lockErr
	}
	f.lockedEmployees = append(f.lockedEmployees, employeeID)
	return nil
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, r leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	r.ID = "req-" + string(rune('0'+f.nextID))
	r.SubmittedAt = time.Now()
	f.requests = append(f.requests, r)
	return r, nil
}

func (f *fakeLeaveRequestRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	for _, r := range f.requests {
		if r.ID == id {
			return r, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRequestRepo) ListByEmployee(_ context.Context, employeeID string, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	list := []leave.LeaveRequest{}
	for _, r := range f.requests {
		if r.EmployeeID == employeeID {
			list = append(list, r)
		}
	}
	return list, int64(len(list)), nil
}

func (f *fakeLeaveRequestRepo) ListByStore(_ context.Context, _ string, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return f.requests, int64(len(f.requests)), nil
}

func (f *fakeLeaveRequestRepo) List(_ context.Context, _ leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	return f.requests, int64(len(f.requests)), nil
}

func (f *fakeLeaveRequestRepo) ListOpenOverlapping(_ context.Context, employeeID string, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	window := leave.DateRange{Start: startDate, End: endDate}
	list := []leave.LeaveRequest{}
	for _, r := range f.requests {
		if r.EmployeeID == employeeID && r.IsOpen() && r.Range().Overlaps(window) {
			list = append(list, r)
		}
	}
	return list, nil
}

func (f *fakeLeaveRequestRepo) UpdateStatus(_ context.Context, id string, status leave.LeaveRequestStatus, reviewedBy *string, rejectionReason *string) error {
	for i, r := range f.requests {
		if r.ID == id {
			if r.Status != leave.LeaveRequestStatusPending {
				return leave.ErrLeaveRequestAlreadyProcessed
			}
			now := time.Now()
			f.requests[i].Status = status
			f.requests[i].ReviewedBy = reviewedBy
			f.requests[i].ReviewedAt = &now
			f.requests[i].RejectionReason = rejectionReason
			return nil
		}
	}
	return leave.ErrLeaveRequestNotFound
}

func newTestService(t *testing.T) (leave.LeaveService, *fakeLeaveTypeRepo, *fakeLeaveBalanceRepo, *fakeLeaveRequestRepo) {
	t.Helper()

	typeRepo := &fakeLeaveTypeRepo{types: map[string]leave.LeaveType{
		ltAnnualID: {ID: ltAnnualID, Name: "Annual", IsActive: true, DefaultDays: 21},
		ltFrozenID: {ID: ltFrozenID, Name: "Frozen", IsActive: false, DefaultDays: 5},
	}}
	balanceRepo := &fakeLeaveBalanceRepo{balances: map[balanceKey]leave.LeaveBalance{
		{emp1ID, ltAnnualID, 2024}: {
			ID: "bal-1", EmployeeID: emp1ID, LeaveTypeID: ltAnnualID,
			Year: 2024, TotalDays: 21, UsedDays: 16,
		},
	}}
	requestRepo := &fakeLeaveRequestRepo{}

	svc := NewLeaveService(passthroughTx{}, typeRepo, balanceRepo, requestRepo, workdays.NewCalculator(nil))
	return svc, typeRepo, balanceRepo, requestRepo
}

func TestCreateLeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a valid request within balance", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		// Sunday through Thursday of one week: 5 working days, remaining is 5.
		resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-06",
			Reason:      "family trip",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.RequestedDays)
		assert.Equal(t, string(leave.LeaveRequestStatusPending), resp.Status)
	})

	t.Run("rejects when working days exceed remaining balance", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		// Full week spans 7 calendar days but 5 working days; push past the
		// 5 remaining with a second week day.
		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-09",
			Reason:      "long trip",
		})
		assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	})

	t.Run("weekend-only range consumes no balance", func(t *testing.T) {
		svc, _, balanceRepo, _ := newTestService(t)
		balanceRepo.balances[balanceKey{emp1ID, ltAnnualID, 2024}] = leave.LeaveBalance{
			ID: "bal-1", EmployeeID: emp1ID, LeaveTypeID: ltAnnualID,
			Year: 2024, TotalDays: 21, UsedDays: 21,
		}

		// Friday and Saturday only: zero working days, passes even at zero
		// remaining.
		resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-07",
			EndDate:     "2024-06-08",
			Reason:      "weekend errand",
		})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.RequestedDays)
	})

	t.Run("takes the employee lock before inserting", func(t *testing.T) {
		svc, _, _, requestRepo := newTestService(t)

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-06",
			Reason:      "family trip",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{emp1ID}, requestRepo.lockedEmployees)
	})

	t.Run("aborts without inserting when the lock cannot be taken", func(t *testing.T) {
		svc, _, _, requestRepo := newTestService(t)
		requestRepo.lockErr = errors.New("connection closed")

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-06",
			Reason:      "family trip",
		})
		require.Error(t, err)
		assert.Empty(t, requestRepo.requests)
	})

	t.Run("rejects overlap with an open request", func(t *testing.T) {
		svc, _, _, requestRepo := newTestService(t)
		requestRepo.requests = append(requestRepo.requests, leave.LeaveRequest{
			ID:         "req-existing",
			EmployeeID: emp1ID,
			StartDate:  time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
			Status:     leave.LeaveRequestStatusPending,
		})

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-10",
			EndDate:     "2024-06-12",
			Reason:      "errand",
		})
		assert.ErrorIs(t, err, leave.ErrOverlappingRequest)
	})

	t.Run("rejected request does not block the same dates", func(t *testing.T) {
		svc, _, _, requestRepo := newTestService(t)
		requestRepo.requests = append(requestRepo.requests, leave.LeaveRequest{
			ID:         "req-rejected",
			EmployeeID: emp1ID,
			StartDate:  time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			Status:     leave.LeaveRequestStatusRejected,
		})

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-10",
			EndDate:     "2024-06-12",
			Reason:      "retry after rejection",
		})
		assert.NoError(t, err)
	})

	t.Run("missing balance fails closed", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp2ID, // no balance row
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-03",
			Reason:      "no balance yet",
		})
		assert.ErrorIs(t, err, leave.ErrInsufficientBalance)
	})

	t.Run("balance read failure surfaces as unavailable", func(t *testing.T) {
		svc, _, balanceRepo, _ := newTestService(t)
		balanceRepo.readErr = context.DeadlineExceeded

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-03",
			Reason:      "balance outage",
		})
		assert.ErrorIs(t, err, leave.ErrBalanceUnavailable)
	})

	t.Run("inactive leave type is refused", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltFrozenID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-03",
			Reason:      "frozen type",
		})
		assert.ErrorIs(t, err, leave.ErrLeaveTypeInactive)
	})

	t.Run("end before start is rejected by validation", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-10",
			EndDate:     "2024-06-09",
			Reason:      "inverted range",
		})
		assert.Error(t, err)
	})
}

func TestApproveLeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("approval decrements the balance", func(t *testing.T) {
		svc, _, balanceRepo, _ := newTestService(t)

		resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-04",
			Reason:      "family trip",
		})
		require.NoError(t, err)
		require.Equal(t, 3, resp.RequestedDays)

		err = svc.ApproveLeaveRequest(ctx, resp.ID, "reviewer-1")
		require.NoError(t, err)

		balance := balanceRepo.balances[balanceKey{emp1ID, ltAnnualID, 2024}]
		assert.Equal(t, 19, balance.UsedDays)
		assert.Equal(t, 2, balance.RemainingDays())
	})

	t.Run("approving twice fails", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-03",
			Reason:      "family trip",
		})
		require.NoError(t, err)

		require.NoError(t, svc.ApproveLeaveRequest(ctx, resp.ID, "reviewer-1"))
		err = svc.ApproveLeaveRequest(ctx, resp.ID, "reviewer-1")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
	})

	t.Run("unknown request id", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		err := svc.ApproveLeaveRequest(ctx, "req-missing", "reviewer-1")
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}

func TestRejectLeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("rejection keeps the balance untouched", func(t *testing.T) {
		svc, _, balanceRepo, _ := newTestService(t)

		resp, err := svc.CreateLeaveRequest(ctx, leave.CreateLeaveRequestRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			StartDate:   "2024-06-02",
			EndDate:     "2024-06-04",
			Reason:      "family trip",
		})
		require.NoError(t, err)

		err = svc.RejectLeaveRequest(ctx, leave.RejectRequestRequest{
			RequestID: resp.ID,
			Reason:    "short staffed that week",
		}, "reviewer-1")
		require.NoError(t, err)

		balance := balanceRepo.balances[balanceKey{emp1ID, ltAnnualID, 2024}]
		assert.Equal(t, 16, balance.UsedDays)

		got, err := svc.GetLeaveRequest(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, string(leave.LeaveRequestStatusRejected), got.Status)
		require.NotNil(t, got.RejectionReason)
		assert.Equal(t, "short staffed that week", *got.RejectionReason)
	})

	t.Run("rejection requires a reason", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		err := svc.RejectLeaveRequest(ctx, leave.RejectRequestRequest{
			RequestID: "req-1",
		}, "reviewer-1")
		assert.Error(t, err)
	})
}

func TestSetLeaveBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("updating an allowance keeps used days", func(t *testing.T) {
		svc, _, balanceRepo, _ := newTestService(t)

		balance, err := svc.SetLeaveBalance(ctx, leave.SetLeaveBalanceRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltAnnualID,
			Year:        2024,
			TotalDays:   30,
		})
		require.NoError(t, err)
		assert.Equal(t, 30, balance.TotalDays)
		assert.Equal(t, 16, balance.UsedDays)

		stored := balanceRepo.balances[balanceKey{emp1ID, ltAnnualID, 2024}]
		assert.Equal(t, 14, stored.RemainingDays())
	})

	t.Run("new balance starts unused", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		balance, err := svc.SetLeaveBalance(ctx, leave.SetLeaveBalanceRequest{
			EmployeeID:  emp9ID,
			LeaveTypeID: ltAnnualID,
			Year:        2025,
			TotalDays:   21,
		})
		require.NoError(t, err)
		assert.Equal(t, 0, balance.UsedDays)
		assert.Equal(t, 21, balance.RemainingDays())
	})

	t.Run("inactive type is refused", func(t *testing.T) {
		svc, _, _, _ := newTestService(t)

		_, err := svc.SetLeaveBalance(ctx, leave.SetLeaveBalanceRequest{
			EmployeeID:  emp1ID,
			LeaveTypeID: ltFrozenID,
			Year:        2024,
			TotalDays:   5,
		})
		assert.ErrorIs(t, err, leave.ErrLeaveTypeInactive)
	})
}
