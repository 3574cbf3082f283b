package tasks

import "time"

// Config tunes the background queue. The queue only carries periodic
// maintenance work (audit retention sweeps), so the defaults favour low
// concurrency over throughput.
type Config struct {
	// Workers is the number of concurrent task workers.
	Workers int

	// MaxRetries is the maximum retry attempts for failed tasks.
	MaxRetries int

	// RetryDelay is the backoff duration between retries.
	RetryDelay time.Duration

	// TaskTimeout bounds a single task execution.
	TaskTimeout time.Duration

	// ReleaseAfter is when stuck tasks are released back to the queue.
	ReleaseAfter time.Duration

	// CleanupInterval is how often completed tasks are cleaned up.
	CleanupInterval time.Duration

	// RetentionDuration is how long completed tasks are kept.
	RetentionDuration time.Duration
}

// DefaultConfig returns a Config sized for the maintenance workload.
func DefaultConfig() Config {
	return Config{
		Workers:           2,
		MaxRetries:        3,
		RetryDelay:        1 * time.Minute,
		TaskTimeout:       2 * time.Minute,
		ReleaseAfter:      15 * time.Minute,
		CleanupInterval:   1 * time.Hour,
		RetentionDuration: 24 * time.Hour,
	}
}
