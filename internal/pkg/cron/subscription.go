package cron

import (
	"time"

	"github.com/mawared/mawared-backend/internal/domain/subscription"
)

// RegisterSubscriptionJobs wires the subscription maintenance jobs into the
// scheduler: lapsed trials and ended billing periods flip to expired.
func RegisterSubscriptionJobs(scheduler *Scheduler, subscriptionService subscription.SubscriptionService) {
	scheduler.AddJob(
		"expire_lapsed_subscriptions",
		1*time.Hour,
		subscriptionService.ExpireLapsedSubscriptions,
	)
}
