// Package jobs provides scheduled background tasks for the seller console.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and call application command handlers.
//
// # Available Jobs
//
// SessionPurgeJob deletes console sessions whose expiry has passed. It runs
// on SESSION_PURGE_SCHEDULE, every minute by default.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(purgeHandler, cfg.SessionPurgeSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed purge is logged and retried on the next tick. An invalid schedule
// fails StartAll.
package jobs
