package controllers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracker/src/config"
	"tracker/src/models"
	"tracker/src/scheduler"
	"tracker/src/schemas"
	controllers "tracker/src/worker/controllers"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPortfolioService struct {
	total float64
	err   error
}

func (m *mockPortfolioService) Summary(ctx context.Context) (*schemas.PortfolioSummary, error) {
	return nil, errors.New("not used")
}

func (m *mockPortfolioService) TotalValue(ctx context.Context) (float64, error) {
	return m.total, m.err
}

type mockPricingService struct {
	runs int
	err  error
}

func (m *mockPricingService) PerturbPrices(ctx context.Context) error {
	m.runs++
	return m.err
}

type mockNetWorthRepo struct {
	saved []*models.NetWorth
	err   error
}

func (m *mockNetWorthRepo) GetAll(ctx context.Context) ([]models.NetWorth, error) {
	return nil, nil
}

func (m *mockNetWorthRepo) Upsert(ctx context.Context, n *models.NetWorth) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, n)
	return nil
}

func newJobsController(portfolio *mockPortfolioService, pricing *mockPricingService, repo *mockNetWorthRepo) *controllers.Controller {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &controllers.Controller{
		PortfolioService: portfolio,
		PricingService:   pricing,
		NetWorthRepo:     repo,
		Logger:           logger,
		Schedulers:       map[string]*scheduler.ScheduledTask{},
	}
}

func TestSnapshotNetWorth(t *testing.T) {
	t.Run("persists the rounded total for today", func(t *testing.T) {
		repo := &mockNetWorthRepo{}
		c := newJobsController(&mockPortfolioService{total: 10500.12345}, &mockPricingService{}, repo)

		err := c.SnapshotNetWorth(context.Background())
		require.NoError(t, err)
		require.Len(t, repo.saved, 1)
		assert.Equal(t, 10500.12, repo.saved[0].Total)
		assert.WithinDuration(t, time.Now(), repo.saved[0].Date, time.Minute)
	})

	t.Run("valuation failure aborts the snapshot", func(t *testing.T) {
		repo := &mockNetWorthRepo{}
		c := newJobsController(&mockPortfolioService{err: errors.New("db down")}, &mockPricingService{}, repo)

		err := c.SnapshotNetWorth(context.Background())
		require.Error(t, err)
		assert.Empty(t, repo.saved)
	})

	t.Run("upsert failure is surfaced", func(t *testing.T) {
		repo := &mockNetWorthRepo{err: errors.New("constraint")}
		c := newJobsController(&mockPortfolioService{total: 100}, &mockPricingService{}, repo)

		err := c.SnapshotNetWorth(context.Background())
		require.Error(t, err)
	})
}

func TestRunPriceFeed(t *testing.T) {
	pricing := &mockPricingService{}
	c := newJobsController(&mockPortfolioService{}, pricing, &mockNetWorthRepo{})

	require.NoError(t, c.RunPriceFeed(context.Background()))
	assert.Equal(t, 1, pricing.runs)
}

func TestStartAndStopJobs(t *testing.T) {
	c := newJobsController(&mockPortfolioService{total: 1}, &mockPricingService{}, &mockNetWorthRepo{})

	cfg := &config.Config{}
	cfg.Jobs.PriceFeedCron = "@every 1h"
	cfg.Jobs.NetWorthCron = "@every 24h"

	require.NoError(t, c.StartJobs(cfg))
	assert.Len(t, c.Schedulers, 2)

	// Rescheduling replaces the existing entries rather than stacking them.
	require.NoError(t, c.StartJobs(cfg))
	assert.Len(t, c.Schedulers, 2)

	c.StopJobs()
	assert.Empty(t, c.Schedulers)
}

func TestStartJobsRejectsBadCron(t *testing.T) {
	c := newJobsController(&mockPortfolioService{}, &mockPricingService{}, &mockNetWorthRepo{})

	cfg := &config.Config{}
	cfg.Jobs.PriceFeedCron = "not a cron spec"

	require.Error(t, c.StartJobs(cfg))
	c.StopJobs()
}
