package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"travellounge/internal/domain/models"
	"travellounge/internal/repositories"
	"travellounge/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking vouchers and invoices as PDF.
type DocsService struct {
	BookingRepo repositories.BookingRepo
	ServiceRepo repositories.ServiceRepo
	// Company is printed in the document header.
	Company   string
	RequestID string
	Loader    func(context.Context, int64) (bookingDocData, error)
}

type bookingDocData struct {
	BookingID     int64
	Status        string
	CreatedAt     time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceName   string
	Location      string
	CheckIn       string
	CheckOut      string
	Travelers     int
	Message       string
	Inclusions    []string
	Total         float64
	Currency      string
}

func (s DocsService) GenerateVoucher(ctx context.Context, bookingID int64) ([]byte, string, error) {
	data, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(s.company(), data)
}

func (s DocsService) GenerateInvoice(ctx context.Context, bookingID int64) ([]byte, string, error) {
	data, err := s.load(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(s.company(), data)
}

func (s DocsService) company() string {
	return safe(s.Company, "Travel Lounge")
}

func (s DocsService) load(ctx context.Context, bookingID int64) (bookingDocData, error) {
	if err := requireID("id", bookingID); err != nil {
		return bookingDocData{}, err
	}
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}
	b, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return bookingDocData{}, wrap(err)
	}
	return docDataFromBooking(ctx, b, s.ServiceRepo), nil
}

func docDataFromBooking(ctx context.Context, b models.Booking, services repositories.ServiceRepo) bookingDocData {
	c := b.CustomerInfo.V
	d := b.ServiceDetails.V
	out := bookingDocData{
		BookingID:     b.ID,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
		CustomerName:  c.Name,
		CustomerEmail: c.Email,
		CustomerPhone: c.Phone,
		ServiceName:   d.Name,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		Travelers:     d.Travelers,
		Message:       d.Message,
		Total:         b.TotalAmount,
		Currency:      b.Currency,
	}
	// product details are optional; a deleted product still leaves a usable voucher
	if b.ServiceID != nil {
		if svc, err := services.GetByID(ctx, *b.ServiceID); err == nil {
			if strings.TrimSpace(out.ServiceName) == "" {
				out.ServiceName = svc.Name
			}
			out.Location = svc.Location
			out.Inclusions = svc.Inclusions.V
		}
	}
	return out
}

func header(pdf *gofpdf.Fpdf, company, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, company)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, title)
	pdf.Ln(14)
}

func buildVoucherPDF(company string, d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking voucher", false)
	pdf.AddPage()
	header(pdf, company, "BOOKING VOUCHER")

	dates := safe(d.CheckIn, "-")
	if d.CheckOut != "" {
		dates += " to " + d.CheckOut
	}
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Voucher no   : VCH-%06d", d.BookingID),
		fmt.Sprintf("Status       : %s", strings.ToUpper(safe(d.Status, "-"))),
		fmt.Sprintf("Guest        : %s", safe(d.CustomerName, "-")),
		fmt.Sprintf("Email        : %s", safe(d.CustomerEmail, "-")),
		fmt.Sprintf("Phone        : %s", safe(d.CustomerPhone, "-")),
		fmt.Sprintf("Service      : %s", safe(d.ServiceName, "-")),
		fmt.Sprintf("Location     : %s", safe(d.Location, "-")),
		fmt.Sprintf("Dates        : %s", dates),
		fmt.Sprintf("Travelers    : %d", d.Travelers),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if len(d.Inclusions) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Included:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, inc := range d.Inclusions {
			pdf.Cell(0, 6, "- "+inc)
			pdf.Ln(6)
		}
	}
	if strings.TrimSpace(d.Message) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 6, "Guest notes: "+d.Message, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher on arrival. It is valid only for the dates and travelers shown.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", d.BookingID, utils.SafeFilenamePart(d.CustomerName))
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(company string, d bookingDocData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()
	header(pdf, company, "INVOICE")

	issued := d.CreatedAt
	if issued.IsZero() {
		issued = time.Now()
	}
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice no : INV-%06d", d.BookingID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date       : "+issued.Format("2006-01-02"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Billed to:")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, safe(d.CustomerName, "-"))
	pdf.Ln(7)
	pdf.Cell(0, 7, safe(d.CustomerEmail, "-"))
	pdf.Ln(10)

	desc := safe(d.ServiceName, "Travel service")
	if d.CheckIn != "" {
		desc += " (" + d.CheckIn
		if d.CheckOut != "" {
			desc += " to " + d.CheckOut
		}
		desc += ")"
	}
	if d.Travelers > 0 {
		desc += fmt.Sprintf(", %d traveler(s)", d.Travelers)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Details:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+utils.FormatPrice(d.Total, d.Currency))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Booking status: "+safe(d.Status, "-")+". Amounts are final once the booking is confirmed.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("INVOICE_%d_%s.pdf", d.BookingID, utils.SafeFilenamePart(d.CustomerName))
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
