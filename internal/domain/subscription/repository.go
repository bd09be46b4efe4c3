package subscription

import "context"

// PlanRepository - interface for subscription_plans table
type PlanRepository interface {
	Create(ctx context.Context, plan Plan) (Plan, error)
	GetByID(ctx context.Context, id string) (Plan, error)
	List(ctx context.Context, activeOnly bool) ([]Plan, error)
	Update(ctx context.Context, plan Plan) error
}

// SubscriptionRepository - interface for subscriptions table
type SubscriptionRepository interface {
	Create(ctx context.Context, sub Subscription) (Subscription, error)
	GetByStore(ctx context.Context, storeID string) (Subscription, error)
	Update(ctx context.Context, sub Subscription) error
	// ExpireLapsed flips trial/active subscriptions whose period has ended to
	// expired, returning the number of rows changed.
	ExpireLapsed(ctx context.Context) (int64, error)
}
