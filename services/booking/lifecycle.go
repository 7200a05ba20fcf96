package booking

import (
	"context"
	"fmt"

	"coden/models"
	"coden/services/messaging"

	"go.uber.org/zap"
)

// ConfirmPayment applies a payment result to the booking. Replaying the same
// successful result is a no-op: the state does not change twice and the
// confirmation message is sent at most once.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, id string, result models.PaymentResult) (*models.Booking, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Terminal() {
		return nil, &StateError{Operation: "confirm payment", Status: b.Status}
	}

	switch result.Status {
	case models.PaymentPaid, models.PaymentPartial, models.PaymentFailed, models.PaymentRefunded, models.PaymentPending:
	default:
		return nil, NewValidationError("unknown payment status %q", result.Status)
	}

	changed := false
	// A PENDING result carries no new information and must never regress a
	// settled payment status, e.g. a stale webhook replayed after payment.
	if result.Status != models.PaymentPending && b.PaymentStatus != result.Status {
		b.PaymentStatus = result.Status
		changed = true
	}
	if result.Status == models.PaymentPaid && b.Status == models.BookingPending {
		b.Status = models.BookingConfirmed
		changed = true
	}
	if changed {
		if err := s.BookingRepo.Update(b); err != nil {
			return nil, fmt.Errorf("failed to persist payment result: %w", err)
		}
	}

	// The confirmation message follows the PENDING→CONFIRMED transition and
	// is guarded so a replayed payment result cannot send it again.
	if result.Status == models.PaymentPaid && !b.ConfirmationNotified {
		if err := s.sendBookingNotification(ctx, b, models.NotifyBookingConfirmation, messaging.TemplateData{}); err != nil {
			return b, s.attachBooking(err, b)
		}
		b.ConfirmationNotified = true
		if err := s.BookingRepo.Update(b); err != nil {
			return nil, fmt.Errorf("failed to persist notification flag: %w", err)
		}
	}

	return b, nil
}

// CheckIn validates the customer's check-in code on-site.
func (s *DefaultBookingService) CheckIn(ctx context.Context, id, suppliedCode string) (*models.Booking, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingConfirmed {
		return nil, &StateError{Operation: "check in", Status: b.Status}
	}
	if suppliedCode != b.CheckInCode {
		return nil, &InvalidCodeError{BookingID: b.ID}
	}

	b.Status = models.BookingCheckedIn
	if err := s.BookingRepo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to persist check-in: %w", err)
	}

	s.Logger.Info("booking checked in", zap.String("bookingId", b.ID))
	return b, nil
}

// Complete closes a booking whose session has ended. Valid only from ACTIVE;
// network access is revoked first and the area unit is returned.
func (s *DefaultBookingService) Complete(ctx context.Context, id string) (*models.Booking, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != models.BookingActive {
		return nil, &StateError{Operation: "complete", Status: b.Status}
	}

	if b.InternetAccess {
		s.revokeLocked(ctx, b, "booking completed")
	}

	b.Status = models.BookingCompleted
	if err := s.BookingRepo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to persist completion: %w", err)
	}
	s.releaseUnit(b.AreaID)

	if err := s.sendBookingNotification(ctx, b, models.NotifyThankYou, messaging.TemplateData{}); err != nil {
		s.Logger.Warn("failed to send thank-you message",
			zap.String("bookingId", b.ID), zap.Error(err))
	}

	s.Logger.Info("booking completed", zap.String("bookingId", b.ID))
	return b, nil
}

// Cancel aborts a booking from any non-terminal state. Network access is
// revoked first so credentials can never stay active on a cancelled booking.
func (s *DefaultBookingService) Cancel(ctx context.Context, id, reason string) (*models.Booking, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Terminal() {
		return nil, &StateError{Operation: "cancel", Status: b.Status}
	}

	if b.InternetAccess {
		s.revokeLocked(ctx, b, "booking cancelled")
	}

	b.Status = models.BookingCancelled
	b.CancelReason = reason
	if err := s.BookingRepo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to persist cancellation: %w", err)
	}
	s.releaseUnit(b.AreaID)

	s.Logger.Info("booking cancelled",
		zap.String("bookingId", b.ID),
		zap.String("reason", reason))
	return b, nil
}

// sendBookingNotification fills in customer and area details and dispatches
// a templated message through the messaging collaborator.
func (s *DefaultBookingService) sendBookingNotification(ctx context.Context, b *models.Booking, templateType string, data messaging.TemplateData) error {
	customer, err := s.CustomerRepo.GetByID(b.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return &NotFoundError{Entity: "customer", ID: b.CustomerID}
	}

	data.CustomerName = customer.Name
	data.BookingID = b.ID
	data.CheckInCode = b.CheckInCode
	data.StartTime = b.StartTime
	data.Duration = b.Duration
	data.Amount = b.TotalAmount
	if data.AreaName == "" {
		if area, err := s.AreaRepo.GetByID(b.AreaID); err == nil && area != nil {
			data.AreaName = area.Name
		}
	}

	return s.callCollaborator(ctx, "messaging", func(callCtx context.Context) error {
		return s.Notifier.Notify(callCtx, b.ID, customer.Phone, templateType, data)
	})
}
