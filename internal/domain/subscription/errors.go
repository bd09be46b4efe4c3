package subscription

import "errors"

var (
	ErrPlanNotFound         = errors.New("Subscription plan not found")
	ErrPlanInactive         = errors.New("Subscription plan is inactive")
	ErrSubscriptionNotFound = errors.New("Subscription not found")
	ErrSubscriptionExpired  = errors.New("Subscription has expired")
	ErrSeatLimitExceeded    = errors.New("Employee seat limit exceeded for this plan")
	ErrAlreadySubscribed    = errors.New("Store already has an active subscription")
	ErrNotInTrial           = errors.New("Subscription is not in a trial")
)
