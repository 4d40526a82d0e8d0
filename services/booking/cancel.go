package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	bookingRepo "wellnest/database/repository/booking"
	"wellnest/models"
	"wellnest/utils"
)

// CancelBooking flips the booking to cancelled. The status update is a
// compare-and-set at the store layer, so a concurrent double-cancel loses
// cleanly: the second caller gets an already-cancelled error instead of a
// silent no-op. Cancellation permanently removes the booking from all
// future occupancy sums.
func (eng *DefaultBookingEngine) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	matched, err := eng.Repo.MarkCancelled(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !matched {
		// Nothing matched: either the id is unknown or the booking was
		// already cancelled. One read distinguishes the two.
		existing, err := eng.Repo.GetByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrNoBooking) {
				return nil, NewNotFoundError(bookingID)
			}
			return nil, err
		}
		if existing.Status == models.StatusCancelled {
			return nil, NewAlreadyCancelledError(bookingID)
		}
		return nil, NewNotFoundError(bookingID)
	}

	booking, err := eng.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var service *models.Service
	if booking.ServiceID != "" {
		if svc, err := eng.ServiceRepo.GetByID(ctx, booking.ServiceID); err == nil {
			service = svc
		}
	}
	if err := eng.enqueueNotice(ctx, models.NoticeBookingCancellation, *booking, service); err != nil {
		logger.Error("failed to enqueue booking cancellation notice",
			zap.String("bookingID", bookingID), zap.Error(err))
	}

	return booking, nil
}
