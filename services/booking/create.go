package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"wellnest/models"
	"wellnest/utils"
)

// CreateBooking validates the request, computes the admission report, and
// persists the booking. Admission always succeeds; over-capacity state is
// carried in the result for the caller to surface. The confirmation notice
// is enqueued best-effort after the booking is committed.
func (eng *DefaultBookingEngine) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.CreateBookingResult, error) {
	logger := utils.GetLogger()

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}
	partySize := clampPartySize(req.PartySize)

	var service *models.Service
	if req.ServiceID != "" {
		svc, err := eng.ServiceRepo.GetByID(ctx, req.ServiceID)
		if err != nil {
			return nil, NewValidationError(fmt.Sprintf("unknown service %s", req.ServiceID))
		}
		service = svc
	}

	occupancy, err := eng.ComputeOccupancy(ctx, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	admission := eng.EvaluateAdmission(partySize, occupancy)

	now := time.Now().UTC()
	booking := models.Booking{
		ID:        uuid.New().String(),
		ServiceID: req.ServiceID,
		UserName:  req.UserName,
		Email:     req.Email,
		Phone:     req.Phone,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
		PartySize: partySize,
		Status:    models.StatusPending,
		CreatedAt: now,
	}

	if err := eng.Repo.Create(ctx, &booking); err != nil {
		return nil, fmt.Errorf("booking persist failed: %w", err)
	}

	// Re-count after the insert so the reported totals include any booking
	// that landed between the occupancy read and our write. The admission
	// decision itself is unaffected; only the report is refreshed.
	if recount, err := eng.ComputeOccupancy(ctx, req.StartTime, req.EndTime, ""); err == nil {
		available := eng.Settings.CapacityCeiling - recount.TotalPartySize
		if available < 0 {
			available = 0
		}
		admission = models.AdmissionResult{
			NewTotal:       recount.TotalPartySize,
			IsOverCapacity: recount.TotalPartySize > eng.Settings.CapacityCeiling,
			AvailableSpots: available,
		}
	} else {
		logger.Warn("post-insert occupancy recount failed, reporting pre-insert totals",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	if err := eng.enqueueNotice(ctx, models.NoticeBookingConfirmation, booking, service); err != nil {
		logger.Error("failed to enqueue booking confirmation notice",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return &models.CreateBookingResult{
		Booking:   booking,
		Admission: admission,
		Message:   eng.createMessage(partySize, admission),
	}, nil
}

func validateCreateRequest(req CreateBookingRequest) error {
	switch {
	case strings.TrimSpace(req.UserName) == "":
		return NewValidationError("missing required field: user_name")
	case strings.TrimSpace(req.Email) == "":
		return NewValidationError("missing required field: email")
	case !strings.Contains(req.Email, "@"):
		return NewValidationError("invalid email format")
	case strings.TrimSpace(req.Phone) == "":
		return NewValidationError("missing required field: phone")
	case req.StartTime.IsZero() || req.EndTime.IsZero():
		return NewValidationError("missing required field: start_time/end_time")
	}
	if !req.StartTime.Before(req.EndTime) {
		return NewInvalidWindowError("end_time must be after start_time")
	}
	return nil
}

func (eng *DefaultBookingEngine) createMessage(partySize int, admission models.AdmissionResult) string {
	msg := fmt.Sprintf("Booking created successfully for %d %s!", partySize, peopleWord(partySize))
	if admission.IsOverCapacity {
		msg += fmt.Sprintf(" Note: this time slot is over capacity (%d booked, ceiling %d).",
			admission.NewTotal, eng.Settings.CapacityCeiling)
	}
	return msg
}

func peopleWord(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}

// enqueueNotice builds the notification request value and hands it to the
// dispatcher. Fire-and-forget: callers log failures and move on.
func (eng *DefaultBookingEngine) enqueueNotice(ctx context.Context, kind string, booking models.Booking, service *models.Service) error {
	if eng.Notifier == nil {
		return nil
	}
	req := models.NotificationRequest{
		Kind:       kind,
		BookingID:  booking.ID,
		UserName:   booking.UserName,
		Email:      booking.Email,
		Phone:      booking.Phone,
		PartySize:  booking.PartySize,
		StartLocal: eng.Settings.FormatLocal(booking.StartTime),
		EndLocal:   eng.Settings.FormatLocal(booking.EndTime),
	}
	if service != nil {
		req.ServiceName = service.Name
		req.Price = service.Price
	}
	return eng.Notifier.Enqueue(ctx, req)
}
