package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wellnest/models"
)

// SearchBookings finds a customer's bookings by email and/or phone fragment,
// newest start time first. At least one of the two is required.
func (eng *DefaultBookingEngine) SearchBookings(ctx context.Context, email, phone string) ([]models.BookingSummary, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if email == "" && phone == "" {
		return nil, NewValidationError("email or phone number required")
	}

	bookings, err := eng.Repo.SearchByContact(ctx, email, phone)
	if err != nil {
		return nil, err
	}

	serviceNames := map[string]string{}
	summaries := make([]models.BookingSummary, 0, len(bookings))
	for _, b := range bookings {
		name := ""
		if b.ServiceID != "" {
			if cached, ok := serviceNames[b.ServiceID]; ok {
				name = cached
			} else if svc, err := eng.ServiceRepo.GetByID(ctx, b.ServiceID); err == nil {
				name = svc.Name
				serviceNames[b.ServiceID] = name
			}
		}
		summaries = append(summaries, models.BookingSummary{
			ID:          b.ID,
			UserName:    b.UserName,
			Email:       b.Email,
			Phone:       b.Phone,
			ServiceName: name,
			StartTime:   eng.Settings.FormatLocal(b.StartTime),
			EndTime:     eng.Settings.FormatLocal(b.EndTime),
			Status:      b.Status,
			PartySize:   b.PartySize,
		})
	}
	return summaries, nil
}

// ListEvents returns every booking as a calendar event for the studio's
// schedule view.
func (eng *DefaultBookingEngine) ListEvents(ctx context.Context) ([]models.BookingEvent, error) {
	bookings, err := eng.Repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]models.BookingEvent, 0, len(bookings))
	for _, b := range bookings {
		color := "#ffc107"
		if b.Status == models.StatusConfirmed {
			color = "#28a745"
		}
		events = append(events, models.BookingEvent{
			ID:              b.ID,
			Title:           fmt.Sprintf("%s (%d %s) - %s", b.UserName, b.PartySize, peopleWord(b.PartySize), b.Status),
			Start:           b.StartTime.Format(time.RFC3339),
			End:             b.EndTime.Format(time.RFC3339),
			BackgroundColor: color,
			BorderColor:     color,
		})
	}
	return events, nil
}
