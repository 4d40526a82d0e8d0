package notification

import (
	"context"

	"wellnest/models"
)

// Dispatcher enqueues a notification request for asynchronous delivery. The
// booking engine only ever talks to this interface; delivery runs on the
// worker so a slow or failing provider never blocks a booking response.
type Dispatcher interface {
	Enqueue(ctx context.Context, req models.NotificationRequest) error
}

// NotificationService delivers booking notices by email and SMS. Consumed by
// the queue worker, never by request handlers.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, req models.NotificationRequest) error
	SendBookingCancellation(ctx context.Context, req models.NotificationRequest) error
}
