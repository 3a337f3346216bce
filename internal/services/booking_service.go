package services

import (
	"errors"
	"fmt"

	"github.com/redroute/bus-reservation-backend/internal/models"
	"github.com/redroute/bus-reservation-backend/pkg/validator"
	"github.com/sirupsen/logrus"
)

// maxPNRAttempts bounds the regeneration loop when a generated PNR collides
// with an existing booking. With 36^7 combinations a single retry is already
// vanishingly unlikely.
const maxPNRAttempts = 3

// BookingStore defines the persistence operations the service needs
type BookingStore interface {
	Create(booking *models.Booking) error
	GetByPNR(pnr string) (*models.Booking, error)
	GetByPNREmailMobile(pnr, email, mobile string) (*models.Booking, error)
	UpdateStatus(pnr string, status models.BookingStatus) error
}

// PNRGenerator produces public booking reference codes
type PNRGenerator interface {
	Generate() string
}

// BookingService orchestrates booking creation, lookup and cancellation
type BookingService struct {
	store     BookingStore
	generator PNRGenerator
	mobile    *validator.MobileValidator
	logger    *logrus.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(store BookingStore, generator PNRGenerator, logger *logrus.Logger) *BookingService {
	return &BookingService{
		store:     store,
		generator: generator,
		mobile:    validator.NewMobileValidator(),
		logger:    logger,
	}
}

// CreateBooking validates the request, assigns a PNR and persists the
// booking with status confirmed. Returns the assigned PNR.
func (s *BookingService) CreateBooking(req *models.CreateBookingRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	req.ApplyDefaults()

	mobile, err := s.mobile.Validate(req.Mobile)
	if err != nil {
		return "", models.NewValidationError(err.Error())
	}
	if err := validator.ValidateEmail(req.Email); err != nil {
		return "", models.NewValidationError(err.Error())
	}

	booking := &models.Booking{
		BusName:       req.BusName,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		JourneyDate:   req.JourneyDate,
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		Adults:        req.Adults,
		Children:      req.Children,
		PassengerName: req.PassengerName,
		Gender:        req.Gender,
		Age:           req.Age,
		Email:         req.Email,
		Mobile:        mobile,
		Status:        models.BookingStatusConfirmed,
	}

	// The generator does not check existing records; the unique index on
	// pnr is the backstop and a collision just means another attempt.
	for attempt := 1; attempt <= maxPNRAttempts; attempt++ {
		booking.PNR = s.generator.Generate()

		err := s.store.Create(booking)
		if err == nil {
			s.logger.WithFields(logrus.Fields{
				"pnr":   booking.PNR,
				"route": fmt.Sprintf("%s-%s", booking.FromLocation, booking.ToLocation),
			}).Info("Booking created")
			return booking.PNR, nil
		}

		if errors.Is(err, models.ErrDuplicatePNR) {
			s.logger.WithField("pnr", booking.PNR).Warnf("PNR collision, attempt %d/%d", attempt, maxPNRAttempts)
			continue
		}

		return "", models.NewStorageError("create booking", err)
	}

	return "", models.NewStorageError("create booking", fmt.Errorf("pnr collision persisted after %d attempts", maxPNRAttempts))
}

// GetBooking fetches a booking by PNR. The PNR alone is the credential here;
// only cancellation requires the matching contact details.
func (s *BookingService) GetBooking(pnr string) (*models.Booking, error) {
	if pnr == "" {
		return nil, models.NewValidationError("PNR number is required")
	}

	booking, err := s.store.GetByPNR(pnr)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			return nil, err
		}
		return nil, models.NewStorageError("fetch booking", err)
	}

	return booking, nil
}

// CancelBooking transitions a booking from confirmed to cancelled. The
// booking must match PNR, email and mobile together; a mismatch answers
// exactly like an unknown PNR. Cancelling twice is an error, not a no-op.
func (s *BookingService) CancelBooking(req *models.CancelBookingRequest) (string, error) {
	if req.PNR == "" || req.Email == "" || req.Mobile == "" {
		return "", models.NewValidationError("PNR, Email, and Mobile are required")
	}

	// Stored mobiles are sanitized, so sanitize the probe the same way
	mobile := s.mobile.Sanitize(req.Mobile)

	booking, err := s.store.GetByPNREmailMobile(req.PNR, req.Email, mobile)
	if err != nil {
		if errors.Is(err, models.ErrBookingNotFound) {
			return "", err
		}
		return "", models.NewStorageError("fetch booking for cancellation", err)
	}

	if !booking.CanBeCancelled() {
		return "", models.ErrAlreadyCancelled
	}

	if err := s.store.UpdateStatus(booking.PNR, models.BookingStatusCancelled); err != nil {
		return "", models.NewStorageError("cancel booking", err)
	}

	s.logger.WithField("pnr", booking.PNR).Info("Booking cancelled")

	return fmt.Sprintf("Ticket with PNR %s has been cancelled successfully. Refund will be processed within 7 working days.", booking.PNR), nil
}
