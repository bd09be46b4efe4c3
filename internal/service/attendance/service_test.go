package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/attendance"
	"github.com/mawared/mawared-backend/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordKey struct {
	employeeID string
	date       time.Time
}

type fakeAttendanceRepo struct {
	records map[recordKey]attendance.Attendance
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[recordKey]attendance.Attendance{}}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.nextID++
	att.ID = "att-" + string(rune('0'+f.nextID))
	f.records[recordKey{att.EmployeeID, att.Date}] = att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeDate(_ context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	att, ok := f.records[recordKey{employeeID, date}]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return att, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOutAt time.Time) error {
	for k, att := range f.records {
		if att.ID == id {
			if att.CheckOutAt != nil {
				return attendance.ErrNotCheckedIn
			}
			att.CheckOutAt = &checkOutAt
			f.records[k] = att
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(_ context.Context, employeeID string, year, month int) ([]attendance.Attendance, error) {
	list := []attendance.Attendance{}
	for k, att := range f.records {
		if k.employeeID == employeeID && k.date.Year() == year && int(k.date.Month()) == month {
			list = append(list, att)
		}
	}
	return list, nil
}

func (f *fakeAttendanceRepo) ListByStoreDate(_ context.Context, _ string, date time.Time) ([]attendance.Attendance, error) {
	list := []attendance.Attendance{}
	for k, att := range f.records {
		if k.date.Equal(date) {
			list = append(list, att)
		}
	}
	return list, nil
}

type fakeSettingsRepo struct {
	settings map[string]settings.Setting
}

func (f *fakeSettingsRepo) Get(_ context.Context, key string) (settings.Setting, error) {
	s, ok := f.settings[key]
	if !ok {
		return settings.Setting{}, settings.ErrSettingNotFound
	}
	return s, nil
}

func (f *fakeSettingsRepo) List(_ context.Context) ([]settings.Setting, error) {
	list := []settings.Setting{}
	for _, s := range f.settings {
		list = append(list, s)
	}
	return list, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s settings.Setting) error {
	f.settings[s.Key] = s
	return nil
}

func newTestService(clock time.Time, stored map[string]settings.Setting) (*AttendanceServiceImpl, *fakeAttendanceRepo) {
	if stored == nil {
		stored = map[string]settings.Setting{}
	}
	repo := newFakeAttendanceRepo()
	svc := &AttendanceServiceImpl{
		AttendanceRepository: repo,
		SettingsRepository:   &fakeSettingsRepo{settings: stored},
		now:                  func() time.Time { return clock },
	}
	return svc, repo
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("on time is present", func(t *testing.T) {
		svc, _ := newTestService(time.Date(2024, 6, 2, 8, 55, 0, 0, time.UTC), nil)

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	})

	t.Run("within the grace window is present", func(t *testing.T) {
		svc, _ := newTestService(time.Date(2024, 6, 2, 9, 10, 0, 0, time.UTC), nil)

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	})

	t.Run("past the grace window is late", func(t *testing.T) {
		svc, _ := newTestService(time.Date(2024, 6, 2, 9, 16, 0, 0, time.UTC), nil)

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusLate), resp.Status)
	})

	t.Run("settings override the defaults", func(t *testing.T) {
		svc, _ := newTestService(time.Date(2024, 6, 2, 8, 40, 0, 0, time.UTC), map[string]settings.Setting{
			settings.KeyWorkdayStart:      {Key: settings.KeyWorkdayStart, Value: "08:00", Kind: settings.KindString},
			settings.KeyLateThresholdMins: {Key: settings.KeyLateThresholdMins, Value: "30", Kind: settings.KindInt},
		})

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusLate), resp.Status)
	})

	t.Run("second check-in the same day fails", func(t *testing.T) {
		svc, _ := newTestService(time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), nil)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("closes the open record", func(t *testing.T) {
		svc, repo := newTestService(time.Date(2024, 6, 2, 9, 0, 0, 0, time.UTC), nil)

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Date(2024, 6, 2, 17, 0, 0, 0, time.UTC) }
		resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		require.NotNil(t, resp.CheckOutAt)

		stored := repo.records[recordKey{"emp-1", time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)}]
		assert.NotNil(t, stored.CheckOutAt)
	})

	t.Run("without a check-in fails", func(t *testing.T) {
		svc, _ := newTestService(time.Date(2024, 6, 2, 17, 0, 0, 0, time.UTC), nil)

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})
}
