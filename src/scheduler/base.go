package scheduler

import (
	"github.com/robfig/cron/v3"
)

// ScheduledTask runs a function on a cron schedule until cancelled. The
// worker keeps one per job (price feed, net-worth snapshot).
type ScheduledTask struct {
	entryID cron.EntryID
	cron    *cron.Cron
	cancel  chan struct{}
}

// NewScheduledTask validates the cron spec and starts the schedule.
// Accepts the standard 5-field syntax plus descriptors like "@every 1s".
func NewScheduledTask(cronSpec string, taskFunc func()) (*ScheduledTask, error) {
	c := cron.New()
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.entryID = id
	c.Start()
	return task, nil
}

// Cancel stops the schedule. A run already in flight is not interrupted.
func (s *ScheduledTask) Cancel() {
	s.cron.Remove(s.entryID)
	close(s.cancel)
}
