package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Food-Inventory/pkg/expiry"
	"Food-Inventory/pkg/food"
	"Food-Inventory/pkg/logger"
	"Food-Inventory/pkg/metrics"
)

const RefreshJobName = "status_refresh"

// Transition records one item whose stored status was rewritten.
type Transition struct {
	ID             uint
	Name           string
	From           expiry.Status
	To             expiry.Status
	ExpirationDate expiry.Date
}

type RefreshReport struct {
	Checked     int
	Changed     int
	Transitions []Transition
	// Skipped is set when another process held the lock.
	Skipped bool
}

type RefresherParams struct {
	Repository food.FoodRepository
	Policy     expiry.Policy
	Lock       Lock
	Metrics    *metrics.JobMetrics
	Notifier   Notifier
	Logger     *logger.Logger
}

// StatusRefresher reclassifies every stored item against today's date.
type StatusRefresher struct {
	repo     food.FoodRepository
	policy   expiry.Policy
	lock     Lock
	metrics  *metrics.JobMetrics
	notifier Notifier
	logg     *logger.Logger
}

func NewStatusRefresher(params RefresherParams) (*StatusRefresher, error) {
	if params.Repository == nil {
		return nil, errors.New("food repository required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	lock := params.Lock
	if lock == nil {
		lock = NoopLock{}
	}
	notifier := params.Notifier
	if notifier == nil {
		notifier = LogNotifier{Logger: logg}
	}
	return &StatusRefresher{
		repo:     params.Repository,
		policy:   params.Policy,
		lock:     lock,
		metrics:  params.Metrics,
		notifier: notifier,
		logg:     logg,
	}, nil
}

// Run performs one refresh. Today is captured once so every item in the run is
// classified against the same date, and only rows whose status changed are
// written. Running it twice at the same instant writes nothing the second time.
func (r *StatusRefresher) Run(ctx context.Context) (RefreshReport, error) {
	ctx = r.logg.WithJob(ctx, RefreshJobName)

	locked, err := r.lock.Acquire(ctx)
	if err != nil {
		r.metrics.IncFailure(RefreshJobName)
		return RefreshReport{}, fmt.Errorf("lock acquire: %w", err)
	}
	if !locked {
		r.logg.Warn(ctx, "another refresh is running; skipping")
		return RefreshReport{Skipped: true}, nil
	}
	defer func() {
		if relErr := r.lock.Release(ctx); relErr != nil {
			r.logg.Error(ctx, "failed to release refresh lock", relErr)
		}
	}()

	start := time.Now()
	report, err := r.refresh(ctx)
	duration := time.Since(start)
	r.metrics.ObserveDuration(RefreshJobName, duration)

	ctx = r.logg.WithFields(ctx, map[string]any{
		"checked":     report.Checked,
		"changed":     report.Changed,
		"duration_ms": duration.Milliseconds(),
	})
	if err != nil {
		r.metrics.IncFailure(RefreshJobName)
		r.logg.Error(ctx, "status refresh failed", err)
		return report, err
	}
	r.metrics.IncSuccess(RefreshJobName)
	r.logg.Info(ctx, "status refresh complete")

	if pending := attention(report.Transitions); len(pending) > 0 {
		if err := r.notifier.Notify(ctx, pending); err != nil {
			r.logg.Error(ctx, "status refresh notification failed", err)
			return report, fmt.Errorf("notify: %w", err)
		}
	}
	return report, nil
}

func (r *StatusRefresher) refresh(ctx context.Context) (RefreshReport, error) {
	now := r.policy.Now()
	today := r.policy.DateOf(now)

	items, err := r.repo.GetFoodItems(ctx, "")
	if err != nil {
		return RefreshReport{}, fmt.Errorf("list food items: %w", err)
	}

	report := RefreshReport{Checked: len(items)}
	for _, item := range items {
		next := r.policy.Classify(item.ExpirationDate, today)
		if next == item.Status {
			continue
		}
		if err := r.repo.UpdateFoodItemStatus(ctx, item.ID, next, now); err != nil {
			return report, fmt.Errorf("update status of food item %d: %w", item.ID, err)
		}
		report.Changed++
		report.Transitions = append(report.Transitions, Transition{
			ID:             item.ID,
			Name:           item.Name,
			From:           item.Status,
			To:             next,
			ExpirationDate: item.ExpirationDate,
		})
		r.metrics.AddStatusChange(next.String())
	}
	return report, nil
}
