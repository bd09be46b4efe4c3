package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/mawared/mawared-backend/internal/domain/subscription"
	"github.com/mawared/mawared-backend/internal/pkg/database"
)

type planRepositoryImpl struct {
	db *database.DB
}

func NewPlanRepository(db *database.DB) subscription.PlanRepository {
	return &planRepositoryImpl{db: db}
}

const planColumns = `
	p.id, p.name, p.price_per_seat, p.max_employees, p.is_active, p.created_at, p.updated_at
`

func scanPlan(row pgx.Row) (subscription.Plan, error) {
	var p subscription.Plan
	err := row.Scan(
		&p.ID, &p.Name, &p.PricePerSeat, &p.MaxEmployees, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Plan{}, subscription.ErrPlanNotFound
		}
		return subscription.Plan{}, err
	}
	return p, nil
}

func (r *planRepositoryImpl) Create(ctx context.Context, plan subscription.Plan) (subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subscription_plans (id, name, price_per_seat, max_employees, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query, plan.Name, plan.PricePerSeat, plan.MaxEmployees).
		Scan(&plan.ID, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return subscription.Plan{}, err
	}
	plan.IsActive = true

	return plan, nil
}

func (r *planRepositoryImpl) GetByID(ctx context.Context, id string) (subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + planColumns + ` FROM subscription_plans p WHERE p.id = $1`
	return scanPlan(q.QueryRow(ctx, query, id))
}

func (r *planRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]subscription.Plan, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + planColumns + ` FROM subscription_plans p`
	if activeOnly {
		query += ` WHERE p.is_active = true`
	}
	query += ` ORDER BY p.price_per_seat`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := []subscription.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plans, nil
}

func (r *planRepositoryImpl) Update(ctx context.Context, plan subscription.Plan) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subscription_plans SET
			name = $2, price_per_seat = $3, max_employees = $4, is_active = $5, updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query, plan.ID, plan.Name, plan.PricePerSeat, plan.MaxEmployees, plan.IsActive)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return subscription.ErrPlanNotFound
	}
	return nil
}

type subscriptionRepositoryImpl struct {
	db *database.DB
}

func NewSubscriptionRepository(db *database.DB) subscription.SubscriptionRepository {
	return &subscriptionRepositoryImpl{db: db}
}

const subscriptionColumns = `
	sub.id, sub.store_id, sub.plan_id, sub.status, sub.billing_cycle,
	sub.current_period_start, sub.current_period_end, sub.trial_ends_at,
	sub.created_at, sub.updated_at
`

func scanSubscription(row pgx.Row) (subscription.Subscription, error) {
	var s subscription.Subscription
	err := row.Scan(
		&s.ID, &s.StoreID, &s.PlanID, &s.Status, &s.BillingCycle,
		&s.CurrentPeriodStart, &s.CurrentPeriodEnd, &s.TrialEndsAt,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return subscription.Subscription{}, subscription.ErrSubscriptionNotFound
		}
		return subscription.Subscription{}, err
	}
	return s, nil
}

func (r *subscriptionRepositoryImpl) Create(ctx context.Context, sub subscription.Subscription) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO subscriptions (
			id, store_id, plan_id, status, billing_cycle,
			current_period_start, current_period_end, trial_ends_at, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		sub.StoreID, sub.PlanID, sub.Status, sub.BillingCycle,
		sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.TrialEndsAt,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		return subscription.Subscription{}, err
	}

	return sub, nil
}

func (r *subscriptionRepositoryImpl) GetByStore(ctx context.Context, storeID string) (subscription.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions sub
		WHERE sub.store_id = $1
		ORDER BY sub.created_at DESC
		LIMIT 1
	`
	sub, err := scanSubscription(q.QueryRow(ctx, query, storeID))
	if err != nil {
		return subscription.Subscription{}, err
	}

	plan, err := r.planForSubscription(ctx, q, sub.PlanID)
	if err != nil {
		return subscription.Subscription{}, err
	}
	sub.Plan = &plan

	return sub, nil
}

func (r *subscriptionRepositoryImpl) planForSubscription(ctx context.Context, q database.Querier, planID string) (subscription.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM subscription_plans p WHERE p.id = $1`
	return scanPlan(q.QueryRow(ctx, query, planID))
}

func (r *subscriptionRepositoryImpl) Update(ctx context.Context, sub subscription.Subscription) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subscriptions SET
			plan_id = $2, status = $3, billing_cycle = $4,
			current_period_start = $5, current_period_end = $6, trial_ends_at = $7,
			updated_at = NOW()
		WHERE id = $1
	`
	tag, err := q.Exec(ctx, query,
		sub.ID, sub.PlanID, sub.Status, sub.BillingCycle,
		sub.CurrentPeriodStart, sub.CurrentPeriodEnd, sub.TrialEndsAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return subscription.ErrSubscriptionNotFound
	}
	return nil
}

func (r *subscriptionRepositoryImpl) ExpireLapsed(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE subscriptions SET status = 'expired', updated_at = NOW()
		WHERE (status IN ('trial', 'active') AND current_period_end < NOW())
		   OR (status = 'trial' AND trial_ends_at < NOW())
	`
	tag, err := q.Exec(ctx, query)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
