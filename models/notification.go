package models

// Notification kinds consumed by the delivery worker.
const (
	NoticeBookingConfirmation = "booking_confirmation"
	NoticeBookingCancellation = "booking_cancellation"
)

// NotificationRequest is a value describing what to send. The booking engine
// only enqueues these; delivery happens on the worker, off the request path.
type NotificationRequest struct {
	Kind        string  `json:"kind"`
	BookingID   string  `json:"bookingId"`
	UserName    string  `json:"userName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	PartySize   int     `json:"partySize"`
	StartLocal  string  `json:"startLocal"` // pre-formatted studio-local times
	EndLocal    string  `json:"endLocal"`
}
