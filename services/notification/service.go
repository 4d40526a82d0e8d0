package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	serviceRepo "wellnest/database/repository/service"
	"wellnest/models"
	"wellnest/utils"
)

// DefaultNotificationService renders booking notices and delivers them by
// email and SMS. Templates are operator-editable documents looked up by
// name; when none exists a built-in body is used.
type DefaultNotificationService struct {
	Email     EmailSender
	SMS       SMSSender
	Templates serviceRepo.ServiceRepository
}

func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, req models.NotificationRequest) error {
	subject, body := s.render(ctx, models.NoticeBookingConfirmation, req)
	return s.deliver(ctx, req, subject, body,
		fmt.Sprintf("Your booking for %s on %s is received. See you soon!", serviceLabel(req), req.StartLocal))
}

func (s *DefaultNotificationService) SendBookingCancellation(ctx context.Context, req models.NotificationRequest) error {
	subject, body := s.render(ctx, models.NoticeBookingCancellation, req)
	return s.deliver(ctx, req, subject, body,
		fmt.Sprintf("Your booking for %s on %s has been cancelled.", serviceLabel(req), req.StartLocal))
}

// deliver sends email and SMS independently; one channel failing does not
// stop the other, and both failures are reported together.
func (s *DefaultNotificationService) deliver(ctx context.Context, req models.NotificationRequest, subject, body, smsText string) error {
	logger := utils.GetLogger()

	var errs []error
	if req.Email != "" {
		if err := s.Email.Send(req.Email, subject, body); err != nil {
			logger.Error("email delivery failed",
				zap.String("bookingID", req.BookingID), zap.Error(err))
			errs = append(errs, fmt.Errorf("email: %w", err))
		}
	}
	if req.Phone != "" {
		if err := s.SMS.Send(ctx, req.Phone, smsText); err != nil {
			logger.Error("sms delivery failed",
				zap.String("bookingID", req.BookingID), zap.Error(err))
			errs = append(errs, fmt.Errorf("sms: %w", err))
		}
	}
	return errors.Join(errs...)
}

// render resolves the stored template for the notice kind and substitutes
// placeholders, falling back to the built-in message.
func (s *DefaultNotificationService) render(ctx context.Context, kind string, req models.NotificationRequest) (subject, body string) {
	if s.Templates != nil {
		if tpl, err := s.Templates.GetEmailTemplate(ctx, kind); err == nil {
			return substitute(tpl.Subject, req), substitute(tpl.Body, req)
		}
	}
	return defaultMessage(kind, req)
}

func substitute(text string, req models.NotificationRequest) string {
	r := strings.NewReplacer(
		"{user_name}", req.UserName,
		"{service_name}", serviceLabel(req),
		"{service_price}", fmt.Sprintf("%.2f", req.Price),
		"{start_time}", req.StartLocal,
		"{end_time}", req.EndLocal,
		"{num_people}", fmt.Sprintf("%d", req.PartySize),
		"{people_text}", peopleText(req.PartySize),
	)
	return r.Replace(text)
}

func defaultMessage(kind string, req models.NotificationRequest) (string, string) {
	switch kind {
	case models.NoticeBookingCancellation:
		subject := fmt.Sprintf("Booking Cancelled - %s", serviceLabel(req))
		body := fmt.Sprintf(`Dear %s,

Your booking has been cancelled.

Service: %s
Date & Time: %s - %s

We hope to see you again soon.
`, req.UserName, serviceLabel(req), req.StartLocal, req.EndLocal)
		return subject, body
	default:
		subject := fmt.Sprintf("Booking Confirmation - %s", serviceLabel(req))
		body := fmt.Sprintf(`Dear %s,

Your booking has been received!

Service: %s
Date & Time: %s - %s
Number of People: %d %s
Price: $%.2f

Thank you for choosing our services!
`, req.UserName, serviceLabel(req), req.StartLocal, req.EndLocal, req.PartySize, peopleText(req.PartySize), req.Price)
		return subject, body
	}
}

func serviceLabel(req models.NotificationRequest) string {
	if req.ServiceName != "" {
		return req.ServiceName
	}
	return "your session"
}

func peopleText(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}
