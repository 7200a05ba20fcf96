package booking

import (
	"context"
	"fmt"

	"coden/models"
	"coden/services/messaging"
	"coden/services/network"

	"go.uber.org/zap"
)

// GrantNetworkAccess provisions a captive-portal login for the booking and
// moves it to ACTIVE. Re-granting on a booking that already has access is
// idempotent: the existing credentials are returned without re-provisioning.
func (s *DefaultBookingService) GrantNetworkAccess(ctx context.Context, id string) (*models.Booking, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.InternetAccess && b.InternetCredentials != nil {
		return b, nil
	}
	if b.Status != models.BookingCheckedIn && b.Status != models.BookingActive {
		return nil, &StateError{Operation: "grant network access", Status: b.Status}
	}

	loginID := network.LoginName(b.ID)
	var creds *models.Credentials
	err = s.callCollaborator(ctx, "network", func(callCtx context.Context) error {
		var callErr error
		creds, callErr = s.Network.Create(callCtx, loginID, b.Duration, "")
		return callErr
	})
	if err != nil {
		// Provider failure leaves the booking exactly where it was:
		// CHECKED_IN, no access, no credentials.
		return nil, s.attachBooking(err, b)
	}

	b.InternetAccess = true
	b.InternetCredentials = creds
	b.Status = models.BookingActive
	if err := s.BookingRepo.Update(b); err != nil {
		// The login exists but the booking could not record it; tear the
		// login down so no orphaned credentials stay active.
		if delErr := s.Network.Delete(ctx, loginID); delErr != nil {
			s.Logger.Error("failed to clean up orphaned login",
				zap.String("login", loginID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to persist network access: %w", err)
	}

	if err := s.sendBookingNotification(ctx, b, models.NotifyInternetCredentials, messaging.TemplateData{
		Username: creds.Username,
		Password: creds.Password,
	}); err != nil {
		return b, s.attachBooking(err, b)
	}

	s.Logger.Info("granted network access",
		zap.String("bookingId", b.ID),
		zap.String("login", loginID))
	return b, nil
}

// RevokeNetworkAccess disables the booking's captive-portal login. Local
// state is cleared regardless of the provider's answer: after a revoke the
// booking must never claim access is active.
func (s *DefaultBookingService) RevokeNetworkAccess(ctx context.Context, id, reason string) (*models.Booking, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.InternetAccess && b.InternetCredentials == nil {
		return b, nil
	}

	s.revokeLocked(ctx, b, reason)
	if err := s.BookingRepo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to persist network revocation: %w", err)
	}
	return b, nil
}

// revokeLocked clears network access on a booking the caller already holds
// the lock for. The provider call is best-effort: a failure is logged for
// manual follow-up, local state is cleared either way.
func (s *DefaultBookingService) revokeLocked(ctx context.Context, b *models.Booking, reason string) {
	loginID := network.LoginName(b.ID)
	err := s.callCollaborator(ctx, "network", func(callCtx context.Context) error {
		return s.Network.Disable(callCtx, loginID)
	})
	if err != nil {
		s.Logger.Warn("network provider revoke failed, login may still be active on the gateway",
			zap.String("bookingId", b.ID),
			zap.String("login", loginID),
			zap.String("reason", reason),
			zap.Error(err))
	}

	b.InternetAccess = false
	b.InternetCredentials = nil
	if b.Status == models.BookingActive {
		b.Status = models.BookingCheckedIn
	}
}

// Usage returns traffic counters for the booking's captive-portal login.
func (s *DefaultBookingService) Usage(ctx context.Context, id string) (*models.Usage, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.InternetAccess || b.InternetCredentials == nil {
		return nil, &StateError{Operation: "read usage", Status: b.Status}
	}

	var usage *models.Usage
	err = s.callCollaborator(ctx, "network", func(callCtx context.Context) error {
		var callErr error
		usage, callErr = s.Network.Usage(callCtx, network.LoginName(b.ID))
		return callErr
	})
	if err != nil {
		return nil, s.attachBooking(err, b)
	}
	return usage, nil
}
