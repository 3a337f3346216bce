package services

import (
	"testing"

	"github.com/redroute/bus-reservation-backend/internal/models"
	"github.com/redroute/bus-reservation-backend/pkg/pnr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateETicket(t *testing.T) {
	store := newFakeStore()
	bookingService := NewBookingService(store, pnr.NewGenerator(), testLogger())
	ticketService := NewTicketService(bookingService)

	code, err := bookingService.CreateBooking(validCreateRequest())
	require.NoError(t, err)

	data, filename, err := ticketService.GenerateETicket(code)
	require.NoError(t, err)

	assert.Equal(t, "ETICKET_"+code+".pdf", filename)
	require.Greater(t, len(data), 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateETicket_CancelledBookingStillRenders(t *testing.T) {
	store := newFakeStore()
	bookingService := NewBookingService(store, pnr.NewGenerator(), testLogger())
	ticketService := NewTicketService(bookingService)

	code, err := bookingService.CreateBooking(validCreateRequest())
	require.NoError(t, err)

	_, err = bookingService.CancelBooking(&models.CancelBookingRequest{
		PNR: code, Email: "a@b.com", Mobile: "9876543210",
	})
	require.NoError(t, err)

	data, _, err := ticketService.GenerateETicket(code)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestGenerateETicket_UnknownPNR(t *testing.T) {
	bookingService := NewBookingService(newFakeStore(), pnr.NewGenerator(), testLogger())
	ticketService := NewTicketService(bookingService)

	_, _, err := ticketService.GenerateETicket("PNRMISSING")
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestGenerateETicket_EmptyPNR(t *testing.T) {
	bookingService := NewBookingService(newFakeStore(), pnr.NewGenerator(), testLogger())
	ticketService := NewTicketService(bookingService)

	_, _, err := ticketService.GenerateETicket("")
	assert.True(t, models.IsValidationError(err))
}
