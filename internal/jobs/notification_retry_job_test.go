package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"fulfillment/internal/adapters/out/inmem"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationChannel struct{ mock.Mock }

func (m *MockNotificationChannel) Notify(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func newRetryJob(
	retries ports.RetryQueue, notifications ports.NotificationRegistry,
) *jobs.NotificationRetryJob {
	return jobs.NewNotificationRetryJob(retries, notifications, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNotificationRetryJob_Drain_DeliversPending(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	channel := new(MockNotificationChannel)
	channel.On("Notify", ctx, "order confirmed").Return(nil).Once()

	notifications := inmem.NewRegistry[ports.NotificationChannel]("notification channel")
	notifications.Attach(customerID, channel)

	retries := inmem.NewRetryQueue()
	retries.Enqueue(ports.PendingNotification{
		CustomerID: customerID,
		Message:    "order confirmed",
		Attempts:   1,
	})

	newRetryJob(retries, notifications).Drain(ctx)

	assert.Equal(t, 0, retries.Len())
	channel.AssertExpectations(t)
}

func TestNotificationRetryJob_Drain_RequeuesFailures(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	channel := new(MockNotificationChannel)
	channel.On("Notify", ctx, "order confirmed").Return(ports.ErrDeliveryFailed).Once()

	notifications := inmem.NewRegistry[ports.NotificationChannel]("notification channel")
	notifications.Attach(customerID, channel)

	retries := inmem.NewRetryQueue()
	retries.Enqueue(ports.PendingNotification{
		CustomerID: customerID,
		Message:    "order confirmed",
		Attempts:   1,
	})

	newRetryJob(retries, notifications).Drain(ctx)

	require.Equal(t, 1, retries.Len())
	requeued, ok := retries.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 2, requeued.Attempts)
	assert.Equal(t, "order confirmed", requeued.Message)
}

func TestNotificationRetryJob_Drain_DropsAfterAttemptCap(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	channel := new(MockNotificationChannel)
	channel.On("Notify", ctx, mock.AnythingOfType("string")).Return(ports.ErrDeliveryFailed)

	notifications := inmem.NewRegistry[ports.NotificationChannel]("notification channel")
	notifications.Attach(customerID, channel)

	retries := inmem.NewRetryQueue()
	retries.Enqueue(ports.PendingNotification{
		CustomerID: customerID,
		Message:    "order confirmed",
		Attempts:   1,
	})

	job := newRetryJob(retries, notifications)
	for i := 0; i < 10; i++ {
		job.Drain(ctx)
	}

	assert.Equal(t, 0, retries.Len(), "a message that keeps failing must eventually be dropped")
}

func TestNotificationRetryJob_Drain_DropsDetachedChannel(t *testing.T) {
	ctx := context.Background()

	notifications := inmem.NewRegistry[ports.NotificationChannel]("notification channel")

	retries := inmem.NewRetryQueue()
	retries.Enqueue(ports.PendingNotification{
		CustomerID: kernel.NewUUID(),
		Message:    "order confirmed",
		Attempts:   1,
	})

	newRetryJob(retries, notifications).Drain(ctx)

	assert.Equal(t, 0, retries.Len())
}

func TestNotificationRetryJob_Drain_ProcessesOnlyCurrentBacklog(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	calls := 0
	channel := new(MockNotificationChannel)
	channel.On("Notify", ctx, mock.AnythingOfType("string")).
		Run(func(mock.Arguments) { calls++ }).
		Return(errors.New("still down"))

	notifications := inmem.NewRegistry[ports.NotificationChannel]("notification channel")
	notifications.Attach(customerID, channel)

	retries := inmem.NewRetryQueue()
	retries.Enqueue(ports.PendingNotification{CustomerID: customerID, Message: "a", Attempts: 1})
	retries.Enqueue(ports.PendingNotification{CustomerID: customerID, Message: "b", Attempts: 1})

	newRetryJob(retries, notifications).Drain(ctx)

	assert.Equal(t, 2, calls, "one drain pass attempts each backlog entry once")
	assert.Equal(t, 2, retries.Len())
}
