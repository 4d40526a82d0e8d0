package models

import "time"

// SlotInfo annotates one offerable start time with its current occupancy.
// Available is always true: a fully booked slot stays selectable and the
// over-capacity state is reported, not enforced.
type SlotInfo struct {
	Time           time.Time `json:"time"`
	TimeString     string    `json:"timeString"` // studio-local, e.g. "8:30 AM"
	TotalPeople    int       `json:"totalPeople"`
	AvailableSpots int       `json:"availableSpots"`
	IsFullyBooked  bool      `json:"isFullyBooked"`
	BookingCount   int       `json:"bookingCount"`
	Available      bool      `json:"available"`
}

// Occupancy is the result of an overlap query over countable bookings.
type Occupancy struct {
	Bookings       []Booking `json:"bookings"`
	TotalPartySize int       `json:"totalPartySize"`
}

// AdmissionResult reports the capacity state a new booking would land in.
// Admission never rejects; IsOverCapacity is a warning for the operator.
type AdmissionResult struct {
	NewTotal       int  `json:"newTotal"`
	IsOverCapacity bool `json:"isOverCapacity"`
	AvailableSpots int  `json:"availableSpots"`
}

// CreateBookingResult pairs the persisted booking with its admission report.
type CreateBookingResult struct {
	Booking   Booking         `json:"booking"`
	Admission AdmissionResult `json:"admission"`
	Message   string          `json:"message"`
}
