package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	serviceRepo "wellnest/database/repository/service"
	"wellnest/models"
	"wellnest/services/booking"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubEngine returns canned values so handler translation can be tested in
// isolation.
type stubEngine struct {
	createResult *models.CreateBookingResult
	createErr    error
	createReq    booking.CreateBookingRequest

	cancelResult *models.Booking
	cancelErr    error

	searchErr error
	slots     []models.SlotInfo
}

func (s *stubEngine) ComputeOccupancy(context.Context, time.Time, time.Time, string) (models.Occupancy, error) {
	return models.Occupancy{}, nil
}

func (s *stubEngine) EvaluateAdmission(int, models.Occupancy) models.AdmissionResult {
	return models.AdmissionResult{}
}

func (s *stubEngine) CreateBooking(_ context.Context, req booking.CreateBookingRequest) (*models.CreateBookingResult, error) {
	s.createReq = req
	return s.createResult, s.createErr
}

func (s *stubEngine) CancelBooking(context.Context, string) (*models.Booking, error) {
	return s.cancelResult, s.cancelErr
}

func (s *stubEngine) SearchBookings(context.Context, string, string) ([]models.BookingSummary, error) {
	return nil, s.searchErr
}

func (s *stubEngine) GenerateSlots(context.Context, time.Time, models.Service) ([]models.SlotInfo, error) {
	return s.slots, nil
}

func (s *stubEngine) ListEvents(context.Context) ([]models.BookingEvent, error) {
	return nil, nil
}

type stubServiceRepo struct {
	service *models.Service
}

func (r *stubServiceRepo) GetByID(context.Context, string) (*models.Service, error) {
	if r.service == nil {
		return nil, serviceRepo.ErrNoService
	}
	return r.service, nil
}

func (r *stubServiceRepo) ListByLanguage(context.Context, string) ([]models.Service, error) {
	return nil, nil
}

func (r *stubServiceRepo) GetEmailTemplate(context.Context, string) (*models.EmailTemplate, error) {
	return nil, serviceRepo.ErrNoTemplate
}

func (r *stubServiceRepo) EnsureIndexes() error { return nil }

func newTestRouter(engine *stubEngine, repo *stubServiceRepo) *gin.Engine {
	h := NewBookingHandler(engine, repo, zap.NewNop())
	r := gin.New()
	r.POST("/api/booking/events", h.CreateBooking)
	r.POST("/api/booking/events/:bookingID/cancel", h.CancelBooking)
	r.GET("/api/booking/available-slots", h.GetAvailableSlots)
	r.GET("/api/booking/my-bookings/search", h.SearchBookings)
	return r
}

func TestCreateBookingEndpoint(t *testing.T) {
	engine := &stubEngine{
		createResult: &models.CreateBookingResult{
			Booking: models.Booking{
				ID:        "b1",
				PartySize: 5,
				StartTime: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC),
				Status:    models.StatusPending,
			},
			Admission: models.AdmissionResult{NewTotal: 9, IsOverCapacity: false, AvailableSpots: 1},
			Message:   "Booking received.",
		},
	}
	router := newTestRouter(engine, &stubServiceRepo{})

	payload := map[string]any{
		"user_name":  "Jamie Rivers",
		"email":      "jamie@example.com",
		"phone":      "+15551234567",
		"service_id": "massage-60",
		"start_time": "2026-03-10T14:30:00",
		"end_time":   "2026-03-10T15:30:00",
		"num_people": 5,
	}
	body, _ := json.Marshal(payload)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b1", resp["id"])
	assert.Equal(t, float64(9), resp["newTotal"])
	assert.Equal(t, false, resp["isOverCapacity"])
	assert.Equal(t, float64(1), resp["availableSpots"])
	assert.Equal(t, models.StatusPending, resp["status"])

	// Naive timestamps are interpreted as UTC before reaching the engine.
	assert.Equal(t, time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC), engine.createReq.StartTime)
}

func TestCreateBookingDefaultsOmittedPartySize(t *testing.T) {
	engine := &stubEngine{
		createResult: &models.CreateBookingResult{Booking: models.Booking{ID: "b1", PartySize: 1}},
	}
	router := newTestRouter(engine, &stubServiceRepo{})

	body := []byte(`{"user_name":"Jamie","email":"jamie@example.com","phone":"+15551234567","start_time":"2026-03-10T09:00:00","end_time":"2026-03-10T10:00:00"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, engine.createReq.PartySize)
}

func TestCreateBookingRejectsBadTimestamp(t *testing.T) {
	router := newTestRouter(&stubEngine{}, &stubServiceRepo{})

	body := []byte(`{"user_name":"Jamie","email":"j@e.com","phone":"1","start_time":"not-a-date","end_time":"2026-03-10T10:00:00"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelBookingStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"not found", booking.NewNotFoundError("b1"), http.StatusNotFound},
		{"already cancelled", booking.NewAlreadyCancelledError("b1"), http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newTestRouter(&stubEngine{cancelErr: tc.err}, &stubServiceRepo{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking/events/b1/cancel", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestCancelBookingSuccess(t *testing.T) {
	engine := &stubEngine{
		cancelResult: &models.Booking{ID: "b1", Status: models.StatusCancelled},
	}
	router := newTestRouter(engine, &stubServiceRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking/events/b1/cancel", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusCancelled, resp["status"])
}

func TestGetAvailableSlotsValidation(t *testing.T) {
	router := newTestRouter(&stubEngine{}, &stubServiceRepo{})

	// Missing parameters.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/available-slots?date=2026-03-10", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown service.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/booking/available-slots?date=2026-03-10&service_id=nope", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableSlotsReturnsGrid(t *testing.T) {
	engine := &stubEngine{slots: []models.SlotInfo{
		{TimeString: "8:30 AM", AvailableSpots: 10, Available: true},
	}}
	repo := &stubServiceRepo{service: &models.Service{ID: "massage-60", Name: "Relaxing Massage", Duration: 60}}
	router := newTestRouter(engine, repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/available-slots?date=2026-03-10&service_id=massage-60", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var slots []models.SlotInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 1)
	assert.Equal(t, "8:30 AM", slots[0].TimeString)
}

func TestSearchBookingsRequiresContact(t *testing.T) {
	router := newTestRouter(&stubEngine{searchErr: booking.NewValidationError("email or phone is required")}, &stubServiceRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/my-bookings/search", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
