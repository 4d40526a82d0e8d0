package models

import "time"

// Booking statuses. A booking is only ever mutated by cancellation;
// cancelled is terminal and excludes the booking from all capacity sums.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking represents a reservation of studio capacity for a time window.
type Booking struct {
	ID        string    `bson:"id" json:"id"`                                   // Unique booking identifier (UUID)
	ServiceID string    `bson:"service_id,omitempty" json:"service_id"`         // Optional link to a Service; legacy bookings may lack it
	UserName  string    `bson:"user_name" json:"user_name"`                     // Customer name
	Email     string    `bson:"email" json:"email"`                             // Contact email for confirmations
	Phone     string    `bson:"phone" json:"phone"`                             // Contact phone for SMS
	StartTime time.Time `bson:"start_time" json:"start_time"`                   // UTC instant, inclusive
	EndTime   time.Time `bson:"end_time" json:"end_time"`                       // UTC instant, exclusive; stored, never re-derived from the service
	PartySize int       `bson:"party_size" json:"party_size"`                   // Attendee units this booking occupies (1-10)
	Status    string    `bson:"status" json:"status"`                           // pending, confirmed, cancelled
	CreatedAt time.Time `bson:"created_at" json:"created_at"`                   // Set once at creation
}

// Countable reports whether the booking contributes to occupancy sums.
func (b Booking) Countable() bool {
	return b.Status != StatusCancelled
}

// Overlaps applies the half-open interval rule: [a, b) and [c, d)
// overlap iff a < d && b > c. Touching boundaries do not overlap.
func (b Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// BookingSummary is the search-result view of a booking.
type BookingSummary struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceName string `json:"service_name,omitempty"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
	PartySize   int    `json:"party_size"`
}

// BookingEvent is the calendar-feed view of a booking.
type BookingEvent struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	End             string `json:"end"`
	BackgroundColor string `json:"backgroundColor"`
	BorderColor     string `json:"borderColor"`
}
