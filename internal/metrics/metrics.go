package metrics

import "sync/atomic"

// JobCounters tracks analysis job outcomes. Failed jobs are invisible to
// clients, so the counter is the only aggregate signal that jobs are dying.
type JobCounters struct {
	completed atomic.Int64
	failed    atomic.Int64
}

func (c *JobCounters) JobCompleted() {
	c.completed.Add(1)
}

func (c *JobCounters) JobFailed() {
	c.failed.Add(1)
}

func (c *JobCounters) Snapshot() (completed, failed int64) {
	return c.completed.Load(), c.failed.Load()
}
