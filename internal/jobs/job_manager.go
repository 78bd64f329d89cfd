package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the console.
type JobManager struct {
	sessionPurgeJob *SessionPurgeJob
}

// NewJobManager wires every job to its command handler.
func NewJobManager(purger SessionPurger, purgeSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		sessionPurgeJob: NewSessionPurgeJob(purger, purgeSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start session purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.sessionPurgeJob.Stop()
}
