package subscription

import (
	"context"

	"github.com/mawared/mawared-backend/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type SubscriptionService interface {
	// Plans (super admin catalog)
	CreatePlan(ctx context.Context, req CreatePlanRequest) (Plan, error)
	UpdatePlan(ctx context.Context, req UpdatePlanRequest) error
	ListPlans(ctx context.Context, activeOnly bool) ([]Plan, error)

	// Store subscriptions
	Subscribe(ctx context.Context, req SubscribeRequest) (Subscription, error)
	GetStoreSubscription(ctx context.Context, storeID string) (Subscription, error)
	// Activate confirms a trial whose payment was collected out of band.
	Activate(ctx context.Context, storeID string) (Subscription, error)
	Cancel(ctx context.Context, storeID string) error
	CanAddEmployee(ctx context.Context, storeID string) (bool, error)
	// ExpireLapsedSubscriptions is run from the cron scheduler.
	ExpireLapsedSubscriptions(ctx context.Context) error
}

type CreatePlanRequest struct {
	Name         string `json:"name"`
	PricePerSeat string `json:"price_per_seat"`
	MaxEmployees *int   `json:"max_employees,omitempty"`
}

func (r *CreatePlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if price, err := decimal.NewFromString(r.PricePerSeat); err != nil || price.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "price_per_seat",
			Message: "price_per_seat must be a non-negative amount",
		})
	}
	if r.MaxEmployees != nil && *r.MaxEmployees <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_employees",
			Message: "max_employees must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePlanRequest struct {
	ID           string  `json:"id"`
	Name         *string `json:"name,omitempty"`
	PricePerSeat *string `json:"price_per_seat,omitempty"`
	MaxEmployees *int    `json:"max_employees,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *UpdatePlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.PricePerSeat != nil {
		if price, err := decimal.NewFromString(*r.PricePerSeat); err != nil || price.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "price_per_seat",
				Message: "price_per_seat must be a non-negative amount",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SubscribeRequest struct {
	StoreID      string `json:"store_id"`
	PlanID       string `json:"plan_id"`
	BillingCycle string `json:"billing_cycle"`
}

func (r *SubscribeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id is required",
		})
	} else if !validator.IsValidUUID(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}
	if validator.IsEmpty(r.PlanID) {
		errs = append(errs, validator.ValidationError{
			Field:   "plan_id",
			Message: "plan_id is required",
		})
	} else if !validator.IsValidUUID(r.PlanID) {
		errs = append(errs, validator.ValidationError{
			Field:   "plan_id",
			Message: "plan_id must be a valid UUID",
		})
	}
	if !validator.IsInSlice(r.BillingCycle, []string{
		string(BillingCycleMonthly), string(BillingCycleYearly),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "billing_cycle",
			Message: "billing_cycle must be monthly or yearly",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
