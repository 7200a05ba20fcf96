package payment

import (
	"context"

	"coden/models"
)

// InvoiceRequest carries everything the provider needs to issue an invoice.
type InvoiceRequest struct {
	BookingID   string
	Amount      int64
	PayerName   string
	PayerPhone  string
	Description string
}

// Provider issues payment invoices for bookings and reports their status.
type Provider interface {
	// CreateInvoice creates a QRIS/checkout invoice for a booking.
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*models.Invoice, error)
	// GetInvoiceStatus reports the current payment progress of an invoice.
	GetInvoiceStatus(ctx context.Context, invoiceID string) (*models.InvoiceStatus, error)
}
