package services

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestDocsServiceGenerate(t *testing.T) {
	loader := func(_ context.Context, id int64) (bookingDocData, error) {
		return bookingDocData{
			BookingID:     id,
			Status:        "confirmed",
			CreatedAt:     time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC),
			CustomerName:  "Tester",
			CustomerEmail: "tester@example.com",
			ServiceName:   "Ile aux Cerfs day trip",
			Location:      "Trou d'Eau Douce",
			CheckIn:       "2024-06-01",
			Travelers:     2,
			Inclusions:    []string{"Lunch", "Transfers"},
			Total:         7800,
			Currency:      "MUR",
		}, nil
	}

	svc := DocsService{Loader: loader}

	pdf, filename, err := svc.GenerateVoucher(context.Background(), 10)
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(pdf) == 0 || filename != "VOUCHER_10_Tester.pdf" {
		t.Fatalf("GenerateVoucher returned %d bytes, filename %q", len(pdf), filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("voucher is not a PDF")
	}

	invoice, invName, err := svc.GenerateInvoice(context.Background(), 10)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName != "INVOICE_10_Tester.pdf" {
		t.Fatalf("GenerateInvoice returned %d bytes, filename %q", len(invoice), invName)
	}
}

func TestDocsServiceRejectsBadID(t *testing.T) {
	svc := DocsService{Loader: func(context.Context, int64) (bookingDocData, error) {
		t.Fatalf("loader should not run")
		return bookingDocData{}, nil
	}}
	if _, _, err := svc.GenerateVoucher(context.Background(), 0); err == nil {
		t.Fatalf("expected error for id 0")
	}
}
