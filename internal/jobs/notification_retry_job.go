package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// maxNotifyAttempts bounds redelivery per message, counting the original
// synchronous attempt.
const maxNotifyAttempts = 5

// NotificationRetryJob redelivers order confirmations that failed their
// synchronous send. Runs every second, draining the retry queue and pushing
// messages that keep failing back with an incremented attempt count until
// the attempt cap is reached.
type NotificationRetryJob struct {
	retries       ports.RetryQueue
	notifications ports.NotificationRegistry
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewNotificationRetryJob creates a job that drains the notification retry
// queue every second.
func NewNotificationRetryJob(
	retries ports.RetryQueue,
	notifications ports.NotificationRegistry,
	logger *slog.Logger,
) *NotificationRetryJob {
	return &NotificationRetryJob{
		retries:       retries,
		notifications: notifications,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "notification_retry_job"),
	}
}

// Start begins the retry job to run every second.
func (j *NotificationRetryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.Drain(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification retry job started (running every second)")
	return nil
}

// Stop stops the retry job.
func (j *NotificationRetryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification retry job stopped")
}

// Drain attempts redelivery for every message pending at the start of the
// call. Messages that fail again go back on the queue for the next tick, so
// one call never loops over its own re-enqueues.
func (j *NotificationRetryJob) Drain(ctx context.Context) {
	for pending := j.retries.Len(); pending > 0; pending-- {
		n, ok := j.retries.Dequeue()
		if !ok {
			return
		}
		j.redeliver(ctx, n)
	}
}

func (j *NotificationRetryJob) redeliver(ctx context.Context, n ports.PendingNotification) {
	channel, err := j.notifications.Get(n.CustomerID)
	if err != nil {
		// The channel was detached after the order was placed.
		j.logger.WarnContext(ctx, "Dropping pending notification without a channel",
			"customer_id", n.CustomerID,
			"attempts", n.Attempts,
		)
		return
	}

	if err := channel.Notify(ctx, n.Message); err == nil {
		j.logger.InfoContext(ctx, "Pending notification delivered",
			"customer_id", n.CustomerID,
			"attempts", n.Attempts+1,
		)
		return
	}

	n.Attempts++
	if n.Attempts >= maxNotifyAttempts {
		j.logger.ErrorContext(ctx, "Dropping notification after exhausting retries",
			"customer_id", n.CustomerID,
			"attempts", n.Attempts,
		)
		return
	}

	j.retries.Enqueue(n)
}
