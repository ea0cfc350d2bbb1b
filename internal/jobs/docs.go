// Package jobs provides scheduled background tasks for the fulfillment core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. NotificationRetryJob - Runs every second to redeliver order confirmations that failed their synchronous send
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(retryQueue, notificationRegistry, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A pending notification whose channel has been detached is dropped
// - A message that keeps failing is re-enqueued until its attempt cap, then dropped with an error log
// - One drain pass never loops over its own re-enqueues
package jobs
