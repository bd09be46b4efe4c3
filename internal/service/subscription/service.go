package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mawared/mawared-backend/internal/domain/employee"
	"github.com/mawared/mawared-backend/internal/domain/subscription"
	"github.com/shopspring/decimal"
)

const trialDays = 14

type SubscriptionServiceImpl struct {
	subscription.PlanRepository
	subscription.SubscriptionRepository
	employee.EmployeeRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewSubscriptionService(
	planRepository subscription.PlanRepository,
	subscriptionRepository subscription.SubscriptionRepository,
	employeeRepository employee.EmployeeRepository,
	logger *slog.Logger,
) subscription.SubscriptionService {
	return &SubscriptionServiceImpl{
		PlanRepository:         planRepository,
		SubscriptionRepository: subscriptionRepository,
		EmployeeRepository:     employeeRepository,
		logger:                 logger,
		now:                    time.Now,
	}
}

// CreatePlan implements subscription.SubscriptionService.
func (s *SubscriptionServiceImpl) CreatePlan(ctx context.Context, req subscription.CreatePlanRequest) (subscription.Plan, error) {
	if err := req.Validate(); err != nil {
		return subscription.Plan{}, err
	}

	price, err := decimal.NewFromString(req.PricePerSeat)
	if err != nil {
		return subscription.Plan{}, fmt.Errorf("failed to parse price: %w", err)
	}

	created, err := s.PlanRepository.Create(ctx, subscription.Plan{
		Name:         req.Name,
		PricePerSeat: price,
		MaxEmployees: req.MaxEmployees,
	})
	if err != nil {
		return subscription.Plan{}, fmt.Errorf("failed to create plan: %w", err)
	}

	return created, nil
}

// UpdatePlan implements subscription.SubscriptionService.
func (s *SubscriptionServiceImpl) UpdatePlan(ctx context.Context, req subscription.UpdatePlanRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	plan, err := s.PlanRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.PricePerSeat != nil {
		price, err := decimal.NewFromString(*req.PricePerSeat)
		if err != nil {
			return fmt.Errorf("failed to parse price: %w", err)
		}
		plan.PricePerSeat = price
	}
	if req.MaxEmployees != nil {
		plan.MaxEmployees = req.MaxEmployees
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.PlanRepository.Update(ctx, plan); err != nil {
		return fmt.Errorf("failed to update plan: %w", err)
	}

	return nil
}

// ListPlans implements subscription.SubscriptionService.
func (s *SubscriptionServiceImpl) ListPlans(ctx context.Context, activeOnly bool) ([]subscription.Plan, error) {
	plans, err := s.PlanRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// Subscribe implements subscription.SubscriptionService. New subscriptions
// start in a trial; unless activated before the trial ends, the hourly sweep
// expires them.
func (s *SubscriptionServiceImpl) Subscribe(ctx context.Context, req subscription.SubscribeRequest) (subscription.Subscription, error) {
	if err := req.Validate(); err != nil {
		return subscription.Subscription{}, err
	}

	plan, err := s.PlanRepository.GetByID(ctx, req.PlanID)
	if err != nil {
		return subscription.Subscription{}, err
	}
	if !plan.IsActive {
		return subscription.Subscription{}, subscription.ErrPlanInactive
	}

	existing, err := s.SubscriptionRepository.GetByStore(ctx, req.StoreID)
	if err == nil && existing.IsActive() {
		return subscription.Subscription{}, subscription.ErrAlreadySubscribed
	}
	if err != nil && !errors.Is(err, subscription.ErrSubscriptionNotFound) {
		return subscription.Subscription{}, fmt.Errorf("failed to get store subscription: %w", err)
	}

	now := s.now()
	trialEnd := now.AddDate(0, 0, trialDays)
	periodEnd := now.AddDate(0, 1, 0)
	if subscription.BillingCycle(req.BillingCycle) == subscription.BillingCycleYearly {
		periodEnd = now.AddDate(1, 0, 0)
	}

	created, err := s.SubscriptionRepository.Create(ctx, subscription.Subscription{
		StoreID:            req.StoreID,
		PlanID:             req.PlanID,
		Status:             subscription.StatusTrial,
		BillingCycle:       subscription.BillingCycle(req.BillingCycle),
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   periodEnd,
		TrialEndsAt:        &trialEnd,
	})
	if err != nil {
		return subscription.Subscription{}, fmt.Errorf("failed to create subscription: %w", err)
	}
	created.Plan = &plan

	return created, nil
}

// GetStoreSubscription implements subscription.SubscriptionService.
func (s *SubscriptionServiceImpl) GetStoreSubscription(ctx context.Context, storeID string) (subscription.Subscription, error) {
	return s.SubscriptionRepository.GetByStore(ctx, storeID)
}

// Cancel implements subscription.SubscriptionService.
// Activate implements subscription.SubscriptionService. The super admin
// confirms payment collected outside the system; the trial flag is cleared so
// the expiry sweep no longer cuts the subscription off at the trial end.
func (s *SubscriptionServiceImpl) Activate(ctx context.Context, storeID string) (subscription.Subscription, error) {
	sub, err := s.SubscriptionRepository.GetByStore(ctx, storeID)
	if err != nil {
		return subscription.Subscription{}, err
	}
	if sub.Status != subscription.StatusTrial {
		return subscription.Subscription{}, subscription.ErrNotInTrial
	}

	sub.Status = subscription.StatusActive
	sub.TrialEndsAt = nil
	if err := s.SubscriptionRepository.Update(ctx, sub); err != nil {
		return subscription.Subscription{}, fmt.Errorf("failed to activate subscription: %w", err)
	}
	return sub, nil
}

func (s *SubscriptionServiceImpl) Cancel(ctx context.Context, storeID string) error {
	sub, err := s.SubscriptionRepository.GetByStore(ctx, storeID)
	if err != nil {
		return err
	}
	if !sub.IsActive() {
		return subscription.ErrSubscriptionExpired
	}

	sub.Status = subscription.StatusCancelled
	return s.SubscriptionRepository.Update(ctx, sub)
}

// CanAddEmployee implements subscription.SubscriptionService. A store without
// a live subscription cannot grow, and plan seat limits are enforced against
// the active headcount.
func (s *SubscriptionServiceImpl) CanAddEmployee(ctx context.Context, storeID string) (bool, error) {
	sub, err := s.SubscriptionRepository.GetByStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, subscription.ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get store subscription: %w", err)
	}
	if !sub.IsActive() {
		return false, nil
	}
	if sub.Plan == nil || sub.Plan.MaxEmployees == nil {
		return true, nil
	}

	count, err := s.EmployeeRepository.CountByStore(ctx, storeID)
	if err != nil {
		return false, fmt.Errorf("failed to count store employees: %w", err)
	}

	return count < int64(*sub.Plan.MaxEmployees), nil
}

// ExpireLapsedSubscriptions implements subscription.SubscriptionService. It
// runs from the cron scheduler.
func (s *SubscriptionServiceImpl) ExpireLapsedSubscriptions(ctx context.Context) error {
	expired, err := s.SubscriptionRepository.ExpireLapsed(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire lapsed subscriptions: %w", err)
	}
	if expired > 0 {
		s.logger.InfoContext(ctx, "expired lapsed subscriptions", slog.Int64("count", expired))
	}
	return nil
}
