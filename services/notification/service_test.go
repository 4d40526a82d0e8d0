package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serviceRepo "wellnest/database/repository/service"
	"wellnest/models"
)

type recordingEmail struct {
	to      []string
	subject string
	body    string
	err     error
}

func (e *recordingEmail) Send(to, subject, body string) error {
	e.to = append(e.to, to)
	e.subject = subject
	e.body = body
	return e.err
}

type recordingSMS struct {
	to   []string
	text string
	err  error
}

func (s *recordingSMS) Send(_ context.Context, to, text string) error {
	s.to = append(s.to, to)
	s.text = text
	return s.err
}

// templateRepo serves one canned template per notice kind.
type templateRepo struct {
	templates map[string]models.EmailTemplate
}

func (r *templateRepo) GetByID(context.Context, string) (*models.Service, error) {
	return nil, serviceRepo.ErrNoService
}

func (r *templateRepo) ListByLanguage(context.Context, string) ([]models.Service, error) {
	return nil, nil
}

func (r *templateRepo) GetEmailTemplate(_ context.Context, name string) (*models.EmailTemplate, error) {
	tpl, ok := r.templates[name]
	if !ok {
		return nil, serviceRepo.ErrNoTemplate
	}
	return &tpl, nil
}

func (r *templateRepo) EnsureIndexes() error { return nil }

func sampleRequest() models.NotificationRequest {
	return models.NotificationRequest{
		Kind:        models.NoticeBookingConfirmation,
		BookingID:   "b1",
		UserName:    "Jamie Rivers",
		Email:       "jamie@example.com",
		Phone:       "+15551234567",
		ServiceName: "Relaxing Massage",
		Price:       80,
		PartySize:   2,
		StartLocal:  "2026-03-10 9:00 AM",
		EndLocal:    "2026-03-10 10:00 AM",
	}
}

func TestSubstitutePlaceholders(t *testing.T) {
	req := sampleRequest()
	out := substitute("{user_name} booked {service_name} ({num_people} {people_text}) at {start_time} for ${service_price}", req)
	assert.Equal(t, "Jamie Rivers booked Relaxing Massage (2 people) at 2026-03-10 9:00 AM for $80.00", out)

	req.PartySize = 1
	assert.Equal(t, "1 person", substitute("{num_people} {people_text}", req))
}

func TestConfirmationUsesStoredTemplate(t *testing.T) {
	email := &recordingEmail{}
	sms := &recordingSMS{}
	svc := &DefaultNotificationService{
		Email: email,
		SMS:   sms,
		Templates: &templateRepo{templates: map[string]models.EmailTemplate{
			models.NoticeBookingConfirmation: {
				Name:    models.NoticeBookingConfirmation,
				Subject: "See you soon, {user_name}",
				Body:    "{service_name} starts at {start_time}.",
			},
		}},
	}

	err := svc.SendBookingConfirmation(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, []string{"jamie@example.com"}, email.to)
	assert.Equal(t, "See you soon, Jamie Rivers", email.subject)
	assert.Equal(t, "Relaxing Massage starts at 2026-03-10 9:00 AM.", email.body)
	assert.Equal(t, []string{"+15551234567"}, sms.to)
	assert.Contains(t, sms.text, "Relaxing Massage")
}

func TestCancellationFallsBackToDefaultMessage(t *testing.T) {
	email := &recordingEmail{}
	svc := &DefaultNotificationService{
		Email:     email,
		SMS:       &recordingSMS{},
		Templates: &templateRepo{},
	}

	req := sampleRequest()
	req.Kind = models.NoticeBookingCancellation
	err := svc.SendBookingCancellation(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Booking Cancelled - Relaxing Massage", email.subject)
	assert.Contains(t, email.body, "has been cancelled")
}

func TestDeliverChannelsAreIndependent(t *testing.T) {
	email := &recordingEmail{err: errors.New("smtp down")}
	sms := &recordingSMS{}
	svc := &DefaultNotificationService{Email: email, SMS: sms, Templates: &templateRepo{}}

	err := svc.SendBookingConfirmation(context.Background(), sampleRequest())
	require.Error(t, err)
	// The SMS still went out despite the email failure.
	assert.Equal(t, []string{"+15551234567"}, sms.to)
}

func TestDeliverSkipsMissingContacts(t *testing.T) {
	email := &recordingEmail{}
	sms := &recordingSMS{}
	svc := &DefaultNotificationService{Email: email, SMS: sms, Templates: &templateRepo{}}

	req := sampleRequest()
	req.Phone = ""
	require.NoError(t, svc.SendBookingConfirmation(context.Background(), req))
	assert.Empty(t, sms.to)
	assert.Len(t, email.to, 1)
}

func TestBuildMessageHeaders(t *testing.T) {
	msg := buildMessage("studio@wellnest.local", "jamie@example.com", "Hello", "Body text")
	assert.Contains(t, msg, "From: studio@wellnest.local\r\n")
	assert.Contains(t, msg, "To: jamie@example.com\r\n")
	assert.Contains(t, msg, "Subject: Hello\r\n")
	assert.Contains(t, msg, "\r\n\r\nBody text\r\n")
}
