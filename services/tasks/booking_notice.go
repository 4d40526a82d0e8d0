package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"wellnest/models"
)

const TypeBookingNotice = "booking:notice"

// NewBookingNoticeTask wraps a notification request as an asynq task.
func NewBookingNoticeTask(payload models.NotificationRequest) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingNotice, b), nil
}

// AsynqDispatcher enqueues booking notices on the redis-backed queue. It is
// the production implementation of notification.Dispatcher.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) Enqueue(ctx context.Context, req models.NotificationRequest) error {
	task, err := NewBookingNoticeTask(req)
	if err != nil {
		return fmt.Errorf("failed to build booking notice task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue booking notice: %w", err)
	}
	return nil
}
