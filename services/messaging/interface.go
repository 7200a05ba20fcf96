package messaging

import "context"

// Provider delivers templated messages to phone-identified recipients.
type Provider interface {
	// Send delivers a rendered message and returns the provider message ID.
	Send(ctx context.Context, phone, message string) (string, error)
	// GetStatus reports delivery status for a previously sent message.
	GetStatus(ctx context.Context, messageID string) (string, error)
}
