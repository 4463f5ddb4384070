package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/admin/bookings/:id/voucher
func (a *API) BookingVoucherPDF(c *gin.Context) {
	a.servePDF(c, a.docs(c).GenerateVoucher)
}

// GET /api/admin/bookings/:id/invoice
func (a *API) BookingInvoicePDF(c *gin.Context) {
	a.servePDF(c, a.docs(c).GenerateInvoice)
}

// servePDF streams a generated document inline; ?download=1 forces a save dialog.
func (a *API) servePDF(c *gin.Context, gen func(context.Context, int64) ([]byte, string, error)) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	pdfBytes, filename, err := gen(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	disposition := "inline"
	if c.Query("download") == "1" {
		disposition = "attachment"
	}
	c.Header("Content-Disposition", disposition+`; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
