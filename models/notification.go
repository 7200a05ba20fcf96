package models

import "time"

// WhatsApp notification template types.
const (
	NotifyCheckInCode         = "check_in_code"
	NotifyInternetCredentials = "internet_credentials"
	NotifyPaymentReminder     = "payment_reminder"
	NotifyBookingConfirmation = "booking_confirmation"
	NotifyThankYou            = "thank_you"
)

// Delivery status values reported by the messaging provider.
const (
	MessageSent      = "sent"
	MessageDelivered = "delivered"
	MessageRead      = "read"
	MessageFailed    = "failed"
)

// NotificationRecord tracks one templated message dispatched to a customer.
type NotificationRecord struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	Phone     string    `bson:"phone" json:"phone"`
	Type      string    `bson:"type" json:"type"`
	MessageID string    `bson:"message_id,omitempty" json:"messageId,omitempty"`
	Status    string    `bson:"status" json:"status"`
	SentAt    time.Time `bson:"sent_at" json:"sentAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Usage is a snapshot of a captive-portal login's traffic counters.
type Usage struct {
	UploadBytes    int64 `json:"uploadBytes"`
	DownloadBytes  int64 `json:"downloadBytes"`
	SessionSeconds int64 `json:"sessionSeconds"`
}
