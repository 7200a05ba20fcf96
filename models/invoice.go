package models

import "time"

// Invoice status values reported by the payment provider.
const (
	InvoicePending = "PENDING"
	InvoicePaid    = "PAID"
	InvoiceExpired = "EXPIRED"
)

// Invoice represents a payment invoice created for a booking.
type Invoice struct {
	InvoiceID   string    `bson:"invoice_id" json:"invoiceId"`
	BookingID   string    `bson:"booking_id" json:"bookingId"`
	Amount      int64     `bson:"amount" json:"amount"`
	CheckoutURL string    `bson:"checkout_url" json:"checkoutUrl"`
	QRPayload   string    `bson:"qr_payload,omitempty" json:"qrPayload,omitempty"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expiresAt"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// InvoiceStatus is the provider's view of an invoice's payment progress.
type InvoiceStatus struct {
	Status     string     `json:"status"` // PENDING, PAID or EXPIRED
	PaidAmount int64      `json:"paidAmount"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
}

// PaymentResult is the outcome of a payment attempt fed back into the
// booking lifecycle (webhook, poll, or manual entry by staff).
type PaymentResult struct {
	InvoiceID  string     `json:"invoiceId"`
	Status     string     `json:"status"` // a Payment* constant
	PaidAmount int64      `json:"paidAmount"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
}
