package models

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Gender represents the passenger gender
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// IsValid reports whether g is a known gender value
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Booking represents one confirmed or cancelled ticket purchase.
// The PNR is the public identifier; id is internal only.
type Booking struct {
	ID            int64         `json:"id" db:"id"`
	PNR           string        `json:"pnr" db:"pnr"`
	BusName       string        `json:"bus_name" db:"bus_name"`
	FromLocation  string        `json:"from_location" db:"from_location"`
	ToLocation    string        `json:"to_location" db:"to_location"`
	JourneyDate   string        `json:"journey_date" db:"journey_date"`
	DepartureTime string        `json:"departure_time" db:"departure_time"`
	ArrivalTime   string        `json:"arrival_time" db:"arrival_time"`
	Adults        int           `json:"adults" db:"adults"`
	Children      int           `json:"children" db:"children"`
	PassengerName string        `json:"passenger_name" db:"passenger_name"`
	Gender        Gender        `json:"gender" db:"gender"`
	Age           int           `json:"age" db:"age"`
	Email         string        `json:"email" db:"email"`
	Mobile        string        `json:"mobile" db:"mobile"`
	Status        BookingStatus `json:"status" db:"status"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// CanBeCancelled checks if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == BookingStatusConfirmed
}

// CreateBookingRequest represents the request to create a booking
type CreateBookingRequest struct {
	BusName       string `json:"busName"`
	FromLocation  string `json:"fromLocation"`
	ToLocation    string `json:"toLocation"`
	JourneyDate   string `json:"journeyDate"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	PassengerName string `json:"passengerName"`
	Gender        Gender `json:"gender"`
	Age           int    `json:"age"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
}

// Validate checks that every required field is present and well-formed.
// Adults and children are not required; see ApplyDefaults.
func (r *CreateBookingRequest) Validate() error {
	required := []struct {
		value string
		name  string
	}{
		{r.BusName, "busName"},
		{r.FromLocation, "fromLocation"},
		{r.ToLocation, "toLocation"},
		{r.JourneyDate, "journeyDate"},
		{r.DepartureTime, "departureTime"},
		{r.ArrivalTime, "arrivalTime"},
		{r.PassengerName, "passengerName"},
		{r.Email, "email"},
		{r.Mobile, "mobile"},
	}
	for _, f := range required {
		if f.value == "" {
			return NewValidationError(f.name + " is required")
		}
	}

	if r.Gender == "" {
		return NewValidationError("gender is required")
	}
	if !r.Gender.IsValid() {
		return NewValidationError("gender must be Male or Female")
	}

	if r.Age == 0 {
		return NewValidationError("age is required")
	}
	if r.Age < 1 || r.Age > 120 {
		return NewValidationError("age must be between 1 and 120")
	}

	if r.Adults < 0 {
		return NewValidationError("adults cannot be negative")
	}
	if r.Children < 0 {
		return NewValidationError("children cannot be negative")
	}

	return nil
}

// ApplyDefaults fills the optional passenger counts: one adult, no children
func (r *CreateBookingRequest) ApplyDefaults() {
	if r.Adults <= 0 {
		r.Adults = 1
	}
	if r.Children < 0 {
		r.Children = 0
	}
}

// CancelBookingRequest represents the request to cancel a booking.
// All three fields must match a stored booking; the PNR alone is not enough.
type CancelBookingRequest struct {
	PNR    string `json:"pnr"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
}
