package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a printable e-ticket for a booking
type TicketService struct {
	booking *BookingService
}

// NewTicketService creates a new TicketService
func NewTicketService(booking *BookingService) *TicketService {
	return &TicketService{booking: booking}
}

// GenerateETicket builds a PDF e-ticket for the booking with the given PNR.
// Cancelled bookings still render, stamped with their status.
func (s *TicketService) GenerateETicket(pnr string) ([]byte, string, error) {
	booking, err := s.booking.GetBooking(pnr)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("PNR            : %s", booking.PNR),
		fmt.Sprintf("Status         : %s", strings.ToUpper(string(booking.Status))),
		fmt.Sprintf("Bus            : %s", booking.BusName),
		fmt.Sprintf("Route          : %s -> %s", booking.FromLocation, booking.ToLocation),
		fmt.Sprintf("Journey Date   : %s", booking.JourneyDate),
		fmt.Sprintf("Departure      : %s", booking.DepartureTime),
		fmt.Sprintf("Arrival        : %s", booking.ArrivalTime),
		fmt.Sprintf("Passenger      : %s (%s, %d)", booking.PassengerName, booking.Gender, booking.Age),
		fmt.Sprintf("Travellers     : %d adult(s), %d child(ren)", booking.Adults, booking.Children),
		fmt.Sprintf("Contact        : %s / %s", booking.Email, booking.Mobile),
		fmt.Sprintf("Booked At      : %s", booking.CreatedAt.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Note: Please carry a valid photo ID along with this e-ticket. Report at the boarding point 15 minutes before departure.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render e-ticket: %w", err)
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", booking.PNR)
	return buf.Bytes(), filename, nil
}
