package services

import (
	"bytes"
	"context"
	"fmt"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders reservation tickets as PDF.
type DocsService struct {
	Reservations ReservationService
	Plans        TravelPlanService
	RequestID    string
	Loader       func(ctx context.Context, reservationID int64, rc domain.RequestContext) (ticketData, error)
}

type ticketData struct {
	Reservation models.Reservation
	Plan        models.TravelPlan
}

// GenerateTicket returns the PDF bytes and a download filename.
func (s DocsService) GenerateTicket(ctx context.Context, reservationID int64, rc domain.RequestContext) ([]byte, string, error) {
	data, err := s.load(ctx, reservationID, rc)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_ticket", fmt.Sprintf("reservation_id=%d", reservationID))
	pdf, name, err := buildTicketPDF(data)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to render ticket", Err: err}
	}
	return pdf, name, nil
}

func (s DocsService) load(ctx context.Context, reservationID int64, rc domain.RequestContext) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, reservationID, rc)
	}
	res, err := s.Reservations.Get(ctx, reservationID, rc)
	if err != nil {
		return ticketData{}, err
	}
	plan, err := s.Plans.Get(ctx, res.TravelPlanID)
	if err != nil {
		return ticketData{}, err
	}
	return ticketData{Reservation: res, Plan: plan}, nil
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	r, p := d.Reservation, d.Plan

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Reservation Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RESERVATION TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reservation    : #%d", r.ID),
		fmt.Sprintf("Route          : %s -> %s", safe(p.Departure, "-"), safe(p.Destination, "-")),
		fmt.Sprintf("Date/Time      : %s %s", safe(p.Date, "-"), safe(p.Time, "-")),
		fmt.Sprintf("Seats          : %d", r.Seats),
		fmt.Sprintf("Price per seat : %s", utils.FormatCents(p.Price)),
		fmt.Sprintf("Total          : %s", utils.FormatCents(r.TotalPrice)),
		fmt.Sprintf("ID card        : %s", utils.MaskTail(r.IDCardNumber, 4)),
		fmt.Sprintf("Reserved at    : %s", r.ReservedAt.UTC().Format("2006-01-02 15:04 MST")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Present this ticket together with the identity document used for the reservation.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("ticket-%d.pdf", r.ID), nil
}

func safe(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
