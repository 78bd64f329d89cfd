package jobs

import (
	"context"
	"log/slog"

	"sellerdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSessionPurgeSchedule runs the purge at the start of every minute.
const DefaultSessionPurgeSchedule = "0 * * * * *"

// SessionPurger deletes expired console sessions.
type SessionPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredSessionsCommand) (int64, error)
}

// SessionPurgeJob removes expired console sessions on a cron schedule.
type SessionPurgeJob struct {
	handler  SessionPurger
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionPurgeJob creates the purge job. The schedule is a six-field cron
// expression (seconds first); an empty schedule uses DefaultSessionPurgeSchedule.
func NewSessionPurgeJob(handler SessionPurger, schedule string, logger *slog.Logger) *SessionPurgeJob {
	if schedule == "" {
		schedule = DefaultSessionPurgeSchedule
	}
	return &SessionPurgeJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_purge_job"),
	}
}

// Start registers the purge and starts the scheduler.
func (j *SessionPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session purge job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *SessionPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session purge job stopped")
}

func (j *SessionPurgeJob) run() {
	ctx := context.Background()

	purged, err := j.handler.Handle(ctx, commands.NewPurgeExpiredSessionsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session purge job failed", "error", err)
		return
	}
	if purged > 0 {
		j.logger.InfoContext(ctx, "Expired sessions purged", "count", purged)
	}
}
