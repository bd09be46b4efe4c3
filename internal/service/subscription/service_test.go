package subscription

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/subscription"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture ids are UUIDv7 because request validation checks the format.
const (
	store1ID    = "01900000-0000-7000-8000-000000000101"
	planBasicID = "01900000-0000-7000-8000-000000000201"
	planProID   = "01900000-0000-7000-8000-000000000202"
	planOldID   = "01900000-0000-7000-8000-000000000203"
)

type fakePlanRepo struct {
	plans map[string]subscription.Plan
}

func (f *fakePlanRepo) Create(_ context.Context, p subscription.Plan) (subscription.Plan, error) {
	p.ID = "plan-" + p.Name
	p.IsActive = true
	f.plans[p.ID] = p
	return p, nil
}

func (f *fakePlanRepo) GetByID(_ context.Context, id string) (subscription.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return subscription.Plan{}, subscription.ErrPlanNotFound
	}
	return p, nil
}

func (f *fakePlanRepo) List(_ context.Context, activeOnly bool) ([]subscription.Plan, error) {
	list := []subscription.Plan{}
	for _, p := range f.plans {
		if activeOnly && !p.IsActive {
			continue
		}
		list = append(list, p)
	}
	return list, nil
}

func (f *fakePlanRepo) Update(_ context.Context, p subscription.Plan) error {
	if _, ok := f.plans[p.ID]; !ok {
		return subscription.ErrPlanNotFound
	}
	f.plans[p.ID] = p
	return nil
}

type fakeSubscriptionRepo struct {
	subs  map[string]subscription.Subscription // by store id
	plans *fakePlanRepo
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	sub.ID = "sub-" + sub.StoreID
	f.subs[sub.StoreID] = sub
	return sub, nil
}

func (f *fakeSubscriptionRepo) GetByStore(ctx context.Context, storeID string) (subscription.Subscription, error) {
	sub, ok := f.subs[storeID]
	if !ok {
		return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
	}
	if plan, err := f.plans.GetByID(ctx, sub.PlanID); err == nil {
		sub.Plan = &plan
	}
	return sub, nil
}

func (f *fakeSubscriptionRepo) Update(_ context.Context, sub subscription.Subscription) error {
	stored, ok := f.subs[sub.StoreID]
	if !ok {
		return subscription.ErrSubscriptionNotFound
	}
	sub.Plan = nil
	sub.ID = stored.ID
	f.subs[sub.StoreID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) ExpireLapsed(_ context.Context) (int64, error) {
	var expired int64
	now := time.Now()
	for k, sub := range f.subs {
		live := sub.Status == subscription.StatusTrial || sub.Status == subscription.StatusActive
		lapsedPeriod := live && sub.CurrentPeriodEnd.Before(now)
		lapsedTrial := sub.Status == subscription.StatusTrial &&
			sub.TrialEndsAt != nil && sub.TrialEndsAt.Before(now)
		if lapsedPeriod || lapsedTrial {
			sub.Status = subscription.StatusExpired
			f.subs[k] = sub
			expired++
		}
	}
	return expired, nil
}

type fakeEmployeeCounter struct {
	employee.EmployeeRepository
	counts map[string]int64
}

func (f *fakeEmployeeCounter) CountByStore(_ context.Context, storeID string) (int64, error) {
	return f.counts[storeID], nil
}

func newTestService(counts map[string]int64) (*SubscriptionServiceImpl, *fakePlanRepo, *fakeSubscriptionRepo) {
	maxFive := 5
	planRepo := &fakePlanRepo{plans: map[string]subscription.Plan{
		planBasicID: {ID: planBasicID, Name: "Basic", PricePerSeat: decimal.NewFromInt(29), MaxEmployees: &maxFive, IsActive: true},
		planProID:   {ID: planProID, Name: "Pro", PricePerSeat: decimal.NewFromInt(59), IsActive: true},
		planOldID:   {ID: planOldID, Name: "Legacy", PricePerSeat: decimal.NewFromInt(9), IsActive: false},
	}}
	subRepo := &fakeSubscriptionRepo{subs: map[string]subscription.Subscription{}, plans: planRepo}
	if counts == nil {
		counts = map[string]int64{}
	}

	svc := &SubscriptionServiceImpl{
		PlanRepository:         planRepo,
		SubscriptionRepository: subRepo,
		EmployeeRepository:     &fakeEmployeeCounter{counts: counts},
		logger:                 slog.Default(),
		now:                    time.Now,
	}
	return svc, planRepo, subRepo
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("new subscription starts in trial", func(t *testing.T) {
		svc, _, _ := newTestService(nil)

		sub, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID:      store1ID,
			PlanID:       planBasicID,
			BillingCycle: "monthly",
		})
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusTrial, sub.Status)
		require.NotNil(t, sub.TrialEndsAt)
		assert.True(t, sub.CurrentPeriodEnd.After(sub.CurrentPeriodStart))
	})

	t.Run("inactive plan is refused", func(t *testing.T) {
		svc, _, _ := newTestService(nil)

		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID:      store1ID,
			PlanID:       planOldID,
			BillingCycle: "monthly",
		})
		assert.ErrorIs(t, err, subscription.ErrPlanInactive)
	})

	t.Run("malformed ids are rejected", func(t *testing.T) {
		svc, _, _ := newTestService(nil)

		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID:      "not-a-uuid",
			PlanID:       planBasicID,
			BillingCycle: "monthly",
		})
		assert.Error(t, err)
	})

	t.Run("double subscribe is refused while live", func(t *testing.T) {
		svc, _, _ := newTestService(nil)

		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID:      store1ID,
			PlanID:       planBasicID,
			BillingCycle: "monthly",
		})
		require.NoError(t, err)

		_, err = svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID:      store1ID,
			PlanID:       planProID,
			BillingCycle: "monthly",
		})
		assert.ErrorIs(t, err, subscription.ErrAlreadySubscribed)
	})
}

func TestCanAddEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("no subscription blocks growth", func(t *testing.T) {
		svc, _, _ := newTestService(nil)

		ok, err := svc.CanAddEmployee(ctx, store1ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("under the seat limit", func(t *testing.T) {
		svc, _, _ := newTestService(map[string]int64{store1ID: 4})
		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID: store1ID, PlanID: planBasicID, BillingCycle: "monthly",
		})
		require.NoError(t, err)

		ok, err := svc.CanAddEmployee(ctx, store1ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("at the seat limit", func(t *testing.T) {
		svc, _, _ := newTestService(map[string]int64{store1ID: 5})
		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID: store1ID, PlanID: planBasicID, BillingCycle: "monthly",
		})
		require.NoError(t, err)

		ok, err := svc.CanAddEmployee(ctx, store1ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unlimited plan never blocks", func(t *testing.T) {
		svc, _, _ := newTestService(map[string]int64{store1ID: 500})
		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID: store1ID, PlanID: planProID, BillingCycle: "yearly",
		})
		require.NoError(t, err)

		ok, err := svc.CanAddEmployee(ctx, store1ID)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("expired subscription blocks growth", func(t *testing.T) {
		svc, _, subRepo := newTestService(map[string]int64{store1ID: 1})
		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID: store1ID, PlanID: planBasicID, BillingCycle: "monthly",
		})
		require.NoError(t, err)

		sub := subRepo.subs[store1ID]
		sub.Status = subscription.StatusExpired
		subRepo.subs[store1ID] = sub

		ok, err := svc.CanAddEmployee(ctx, store1ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestExpireLapsedSubscriptions(t *testing.T) {
	ctx := context.Background()

	svc, _, subRepo := newTestService(nil)
	subRepo.subs["store-lapsed"] = subscription.Subscription{
		ID: "sub-store-lapsed", StoreID: "store-lapsed", PlanID: planBasicID,
		Status:           subscription.StatusActive,
		CurrentPeriodEnd: time.Now().AddDate(0, 0, -1),
	}
	subRepo.subs["store-live"] = subscription.Subscription{
		ID: "sub-store-live", StoreID: "store-live", PlanID: planBasicID,
		Status:           subscription.StatusActive,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	}

	require.NoError(t, svc.ExpireLapsedSubscriptions(ctx))
	assert.Equal(t, subscription.StatusExpired, subRepo.subs["store-lapsed"].Status)
	assert.Equal(t, subscription.StatusActive, subRepo.subs["store-live"].Status)
}

func TestExpireLapsedSubscriptions_TrialEnd(t *testing.T) {
	ctx := context.Background()

	svc, _, subRepo := newTestService(nil)
	lapsedTrial := time.Now().AddDate(0, 0, -1)
	runningTrial := time.Now().AddDate(0, 0, 7)
	subRepo.subs["store-trial-over"] = subscription.Subscription{
		ID: "sub-store-trial-over", StoreID: "store-trial-over", PlanID: planBasicID,
		Status:           subscription.StatusTrial,
		TrialEndsAt:      &lapsedTrial,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0), // period still running
	}
	subRepo.subs["store-trial-live"] = subscription.Subscription{
		ID: "sub-store-trial-live", StoreID: "store-trial-live", PlanID: planBasicID,
		Status:           subscription.StatusTrial,
		TrialEndsAt:      &runningTrial,
		CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
	}

	require.NoError(t, svc.ExpireLapsedSubscriptions(ctx))
	assert.Equal(t, subscription.StatusExpired, subRepo.subs["store-trial-over"].Status)
	assert.Equal(t, subscription.StatusTrial, subRepo.subs["store-trial-live"].Status)
}

func TestActivate(t *testing.T) {
	ctx := context.Background()

	t.Run("trial becomes active and outlives the trial end", func(t *testing.T) {
		svc, _, subRepo := newTestService(nil)
		_, err := svc.Subscribe(ctx, subscription.SubscribeRequest{
			StoreID: store1ID, PlanID: planBasicID, BillingCycle: "monthly",
		})
		require.NoError(t, err)

		sub, err := svc.Activate(ctx, store1ID)
		require.NoError(t, err)
		assert.Equal(t, subscription.StatusActive, sub.Status)
		assert.Nil(t, sub.TrialEndsAt)

		// The sweep must not touch an activated subscription.
		require.NoError(t, svc.ExpireLapsedSubscriptions(ctx))
		assert.Equal(t, subscription.StatusActive, subRepo.subs[store1ID].Status)
	})

	t.Run("activating a non-trial subscription fails", func(t *testing.T) {
		svc, _, subRepo := newTestService(nil)
		subRepo.subs[store1ID] = subscription.Subscription{
			ID: "sub-store-1", StoreID: store1ID, PlanID: planBasicID,
			Status:           subscription.StatusActive,
			CurrentPeriodEnd: time.Now().AddDate(0, 1, 0),
		}

		_, err := svc.Activate(ctx, store1ID)
		assert.ErrorIs(t, err, subscription.ErrNotInTrial)
	})

	t.Run("activating without a subscription fails", func(t *testing.T) {
		svc, _, _ := newTestService(nil)

		_, err := svc.Activate(ctx, store1ID)
		assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
	})
}
