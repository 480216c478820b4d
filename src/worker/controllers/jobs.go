package controllers

import (
	"context"
	"math"
	"time"

	"tracker/src/config"
	"tracker/src/models"
	"tracker/src/scheduler"
	"tracker/src/utils"

	"github.com/sirupsen/logrus"
)

const (
	priceFeedJob = "price_feed"
	netWorthJob  = "networth_snapshot"

	defaultPriceFeedCron = "@every 1s"
	defaultNetWorthCron  = "0 0 * * *"
)

// StartJobs schedules the simulated price feed and the daily net-worth
// snapshot. Rescheduling a job cancels its previous schedule.
func (c *Controller) StartJobs(cfg *config.Config) error {
	priceCron := cfg.Jobs.PriceFeedCron
	if priceCron == "" {
		priceCron = defaultPriceFeedCron
	}
	netWorthCron := cfg.Jobs.NetWorthCron
	if netWorthCron == "" {
		netWorthCron = defaultNetWorthCron
	}

	if err := c.scheduleJob(priceFeedJob, priceCron, func() {
		if err := c.RunPriceFeed(c.jobContext()); err != nil {
			c.Logger.Errorf("price feed run failed: %v", err)
		}
	}); err != nil {
		return err
	}

	return c.scheduleJob(netWorthJob, netWorthCron, func() {
		if err := c.SnapshotNetWorth(c.jobContext()); err != nil {
			c.Logger.Errorf("net worth snapshot failed: %v", err)
		}
	})
}

// StopJobs cancels every scheduled job.
func (c *Controller) StopJobs() {
	c.SchedulerMutex.Lock()
	defer c.SchedulerMutex.Unlock()
	for name, task := range c.Schedulers {
		task.Cancel()
		delete(c.Schedulers, name)
	}
}

// RunPriceFeed performs one price perturbation pass.
func (c *Controller) RunPriceFeed(ctx context.Context) error {
	return c.PricingService.PerturbPrices(ctx)
}

// SnapshotNetWorth persists today's total portfolio value. The valuation
// is read-only; the single insert below is the job's only write.
func (c *Controller) SnapshotNetWorth(ctx context.Context) error {
	total, err := c.PortfolioService.TotalValue(ctx)
	if err != nil {
		return err
	}

	snapshot := &models.NetWorth{
		Total: math.Round(total*100) / 100,
		Date:  time.Now(),
	}
	if err := c.NetWorthRepo.Upsert(ctx, snapshot); err != nil {
		return err
	}
	c.Logger.Infof("net worth snapshot recorded: %.2f", snapshot.Total)
	return nil
}

func (c *Controller) scheduleJob(name, cronSpec string, taskFunc func()) error {
	c.SchedulerMutex.Lock()
	defer c.SchedulerMutex.Unlock()

	if existingTask, exists := c.Schedulers[name]; exists {
		existingTask.Cancel()
		delete(c.Schedulers, name)
	}

	task, err := scheduler.NewScheduledTask(cronSpec, taskFunc)
	if err != nil {
		return err
	}
	c.Schedulers[name] = task
	return nil
}

func (c *Controller) jobContext() context.Context {
	return utils.WithLogger(context.Background(), logrus.NewEntry(c.Logger))
}
