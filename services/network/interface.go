package network

import (
	"context"

	"coden/models"
)

// Provider manages time-boxed captive-portal logins on the network gateway.
type Provider interface {
	// Create provisions a login valid for durationMinutes with the given
	// bandwidth profile and returns its credentials.
	Create(ctx context.Context, loginID string, durationMinutes int, bandwidth string) (*models.Credentials, error)
	// Enable re-activates a disabled login.
	Enable(ctx context.Context, loginID string) error
	// Disable deactivates a login without removing it.
	Disable(ctx context.Context, loginID string) error
	// Delete removes a login entirely.
	Delete(ctx context.Context, loginID string) error
	// Usage returns the traffic counters for a login.
	Usage(ctx context.Context, loginID string) (*models.Usage, error)
}
