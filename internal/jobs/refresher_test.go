package jobs

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"Food-Inventory/entities"
	"Food-Inventory/internal/testutil"
	"Food-Inventory/pkg/expiry"
	"Food-Inventory/pkg/food"
	"Food-Inventory/pkg/logger"
	"Food-Inventory/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLock struct {
	held     bool
	acquired int
	released int
}

func (f *fakeLock) Acquire(context.Context) (bool, error) {
	if f.held {
		return false, nil
	}
	f.acquired++
	return true, nil
}

func (f *fakeLock) Release(context.Context) error {
	f.released++
	return nil
}

type recordingNotifier struct {
	calls [][]Transition
	err   error
}

func (n *recordingNotifier) Notify(_ context.Context, transitions []Transition) error {
	n.calls = append(n.calls, transitions)
	return n.err
}

func seed(t *testing.T, db *gorm.DB, name string, expiration expiry.Date, status expiry.Status) *entities.FoodItem {
	t.Helper()
	item := &entities.FoodItem{
		Name:             name,
		ProductionDate:   expiration,
		ExpiryPeriodUnit: expiry.UnitDays,
		Quantity:         1,
		ExpirationDate:   expiration,
		Status:           status,
	}
	require.NoError(t, db.Create(item).Error)
	return item
}

func newRefresher(t *testing.T, repo food.FoodRepository, lock Lock, notifier Notifier, reg prometheus.Registerer) *StatusRefresher {
	t.Helper()
	now := time.Date(2024, time.June, 10, 23, 59, 0, 0, time.UTC)
	refresher, err := NewStatusRefresher(RefresherParams{
		Repository: repo,
		Policy: expiry.Policy{
			WarningWindowDays: 7,
			Location:          time.UTC,
			Clock:             func() time.Time { return now },
		},
		Lock:     lock,
		Metrics:  metrics.NewJobMetrics(reg),
		Notifier: notifier,
		Logger:   logger.Nop(),
	})
	require.NoError(t, err)
	return refresher
}

func TestStatusRefresherRunIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := food.NewFoodRepository(db)
	today := expiry.MustParseDate("2024-06-10")

	honey := seed(t, db, "Honey", today.AddDays(100), expiry.StatusActive)
	milk := seed(t, db, "Milk", today.AddDays(3), expiry.StatusActive)
	bread := seed(t, db, "Bread", today.AddDays(-1), expiry.StatusWarning)
	jam := seed(t, db, "Jam", today.AddDays(30), expiry.StatusExpired)

	reg := prometheus.NewRegistry()
	notifier := &recordingNotifier{}
	lock := &fakeLock{}
	refresher := newRefresher(t, repo, lock, notifier, reg)

	report, err := refresher.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, 3, report.Changed)
	assert.False(t, report.Skipped)

	want := map[uint]expiry.Status{
		honey.ID: expiry.StatusActive,
		milk.ID:  expiry.StatusWarning,
		bread.ID: expiry.StatusExpired,
		jam.ID:   expiry.StatusActive,
	}
	for id, status := range want {
		stored, err := repo.GetFoodItemByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, status, stored.Status, "item %d", id)
	}

	require.Len(t, notifier.calls, 1)
	assert.Len(t, notifier.calls[0], 2)

	second, err := refresher.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, second.Checked)
	assert.Zero(t, second.Changed)
	assert.Empty(t, second.Transitions)
	assert.Len(t, notifier.calls, 1)

	assert.Equal(t, 2, lock.acquired)
	assert.Equal(t, 2, lock.released)
	expected := `
# HELP job_success_total Successful batch job executions.
# TYPE job_success_total counter
job_success_total{job="status_refresh"} 2
`
	assert.NoError(t, promtest.GatherAndCompare(reg, strings.NewReader(expected), "job_success_total"))
}

func TestStatusRefresherSkipsWhenLockHeld(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := food.NewFoodRepository(db)
	item := seed(t, db, "Milk", expiry.MustParseDate("2024-06-01"), expiry.StatusActive)

	refresher := newRefresher(t, repo, &fakeLock{held: true}, &recordingNotifier{}, nil)
	report, err := refresher.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Skipped)

	stored, err := repo.GetFoodItemByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, expiry.StatusActive, stored.Status)
}

func TestStatusRefresherReportsNotifierFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := food.NewFoodRepository(db)
	seed(t, db, "Milk", expiry.MustParseDate("2024-06-01"), expiry.StatusActive)

	notifier := &recordingNotifier{err: errors.New("smtp down")}
	refresher := newRefresher(t, repo, &fakeLock{}, notifier, nil)

	report, err := refresher.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, report.Changed)
}

func TestNewStatusRefresherRequiresRepository(t *testing.T) {
	_, err := NewStatusRefresher(RefresherParams{})
	assert.Error(t, err)
}

type signalLock struct {
	released chan struct{}
}

func (l signalLock) Acquire(context.Context) (bool, error) { return true, nil }

func (l signalLock) Release(context.Context) error {
	l.released <- struct{}{}
	return nil
}

func TestRunEveryStopsOnCancel(t *testing.T) {
	db := testutil.NewTestDB(t)
	lock := signalLock{released: make(chan struct{}, 1)}
	refresher := newRefresher(t, food.NewFoodRepository(db), lock, &recordingNotifier{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- refresher.RunEvery(ctx, time.Hour) }()

	select {
	case <-lock.released:
	case <-time.After(time.Second):
		t.Fatal("first run did not happen")
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
