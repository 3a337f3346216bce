package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/redroute/bus-reservation-backend/internal/models"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors
const uniqueViolation = "23505"

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new booking and fills its id and created_at.
// A PNR collision is reported as models.ErrDuplicatePNR so the caller can
// retry with a fresh PNR.
func (r *BookingRepository) Create(booking *models.Booking) error {
	query := `
		INSERT INTO bookings (
			pnr, bus_name, from_location, to_location,
			journey_date, departure_time, arrival_time,
			adults, children, passenger_name, gender, age,
			email, mobile, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		booking.PNR, booking.BusName, booking.FromLocation, booking.ToLocation,
		booking.JourneyDate, booking.DepartureTime, booking.ArrivalTime,
		booking.Adults, booking.Children, booking.PassengerName, booking.Gender, booking.Age,
		booking.Email, booking.Mobile, booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return models.ErrDuplicatePNR
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

// GetByPNR retrieves a booking by its PNR
func (r *BookingRepository) GetByPNR(pnr string) (*models.Booking, error) {
	query := `
		SELECT id, pnr, bus_name, from_location, to_location,
			   journey_date, departure_time, arrival_time,
			   adults, children, passenger_name, gender, age,
			   email, mobile, status, created_at
		FROM bookings
		WHERE pnr = $1
	`

	return r.scanBooking(r.db.QueryRow(query, pnr))
}

// GetByPNREmailMobile retrieves a booking only when all three identifiers
// match. This triple match is the cancellation authorization check.
func (r *BookingRepository) GetByPNREmailMobile(pnr, email, mobile string) (*models.Booking, error) {
	query := `
		SELECT id, pnr, bus_name, from_location, to_location,
			   journey_date, departure_time, arrival_time,
			   adults, children, passenger_name, gender, age,
			   email, mobile, status, created_at
		FROM bookings
		WHERE pnr = $1 AND email = $2 AND mobile = $3
	`

	return r.scanBooking(r.db.QueryRow(query, pnr, email, mobile))
}

// UpdateStatus sets the status of the booking with the given PNR.
// The caller is responsible for checking the current status first.
func (r *BookingRepository) UpdateStatus(pnr string, status models.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE pnr = $1
	`

	result, err := r.db.Exec(query, pnr, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return models.ErrBookingNotFound
	}

	return nil
}

// scanner abstracts sql.Row for single-row scans
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking scans a single booking row
func (r *BookingRepository) scanBooking(row scanner) (*models.Booking, error) {
	booking := &models.Booking{}

	err := row.Scan(
		&booking.ID, &booking.PNR, &booking.BusName, &booking.FromLocation, &booking.ToLocation,
		&booking.JourneyDate, &booking.DepartureTime, &booking.ArrivalTime,
		&booking.Adults, &booking.Children, &booking.PassengerName, &booking.Gender, &booking.Age,
		&booking.Email, &booking.Mobile, &booking.Status, &booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	return booking, nil
}
