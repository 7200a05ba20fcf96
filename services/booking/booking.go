package booking

import (
	"context"
	"fmt"
	"time"

	"coden/models"
	"coden/services/messaging"
	"coden/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates a booking request, reserves an area unit and persists a
// new booking in PENDING. The unit reservation is a conditional decrement,
// so concurrent requests can never overbook the area.
func (s *DefaultBookingService) Create(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error) {
	if input.Duration <= 0 {
		return nil, NewValidationError("duration must be positive, got %d", input.Duration)
	}
	if input.StartTime.Before(time.Now()) {
		return nil, NewValidationError("start time %s is in the past", input.StartTime.Format(time.RFC3339))
	}
	tier := input.PricingTier
	if tier == "" {
		tier = models.TierHourly
	}
	switch tier {
	case models.TierHourly, models.TierDaily, models.TierWeekly, models.TierMonthly:
	default:
		return nil, NewValidationError("unknown pricing tier %q", tier)
	}
	for _, a := range input.AddOns {
		if a.Quantity <= 0 || a.UnitPrice < 0 {
			return nil, NewValidationError("invalid add-on %q", a.Name)
		}
	}

	customer, err := s.CustomerRepo.GetByID(input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "customer", ID: input.CustomerID}
	}

	area, err := s.AreaRepo.GetByID(input.AreaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, &NotFoundError{Entity: "area", ID: input.AreaID}
	}
	if !area.IsAvailable {
		return nil, &CapacityError{AreaID: area.ID}
	}
	if area.MinDuration > 0 && input.Duration < area.MinDuration {
		return nil, NewValidationError("duration %d below area minimum %d", input.Duration, area.MinDuration)
	}
	if area.MaxDuration > 0 && input.Duration > area.MaxDuration {
		return nil, NewValidationError("duration %d above area maximum %d", input.Duration, area.MaxDuration)
	}

	reserved, err := s.AreaRepo.ReserveUnit(area.ID)
	if err != nil {
		return nil, err
	}
	if !reserved {
		return nil, &CapacityError{AreaID: area.ID}
	}

	code, err := s.generateCheckInCode()
	if err != nil {
		s.releaseUnit(area.ID)
		return nil, err
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		CheckInCode:   code,
		CustomerID:    customer.ID,
		AreaID:        area.ID,
		StartTime:     input.StartTime,
		EndTime:       input.StartTime.Add(time.Duration(input.Duration) * time.Minute),
		Duration:      input.Duration,
		PricingTier:   tier,
		TotalAmount:   Quote(area.Pricing, tier, input.Duration, input.AddOns),
		AddOns:        input.AddOns,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}

	if err := s.BookingRepo.Create(b); err != nil {
		s.releaseUnit(area.ID)
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// The code message is a courtesy; the customer can always retrieve it
	// from staff, so a messaging failure does not fail the create.
	if err := s.sendBookingNotification(ctx, b, models.NotifyCheckInCode, messaging.TemplateData{AreaName: area.Name}); err != nil {
		s.Logger.Warn("failed to send check-in code",
			zap.String("bookingId", b.ID), zap.Error(err))
	}

	s.Logger.Info("created booking",
		zap.String("bookingId", b.ID),
		zap.String("areaId", area.ID),
		zap.Int64("totalAmount", b.TotalAmount))
	return b, nil
}

// Get retrieves a booking by ID.
func (s *DefaultBookingService) Get(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &NotFoundError{Entity: "booking", ID: id}
	}
	return b, nil
}

// List retrieves bookings, optionally filtered by status.
func (s *DefaultBookingService) List(ctx context.Context, status string) ([]models.Booking, error) {
	return s.BookingRepo.ListByStatus(status)
}

// IssueInvoice asks the payment collaborator for a QRIS invoice covering the
// booking's total amount and records its ID on the booking.
func (s *DefaultBookingService) IssueInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	defer s.locks.acquire(id)()

	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Terminal() {
		return nil, &StateError{Operation: "invoice", Status: b.Status}
	}

	customer, err := s.CustomerRepo.GetByID(b.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, &NotFoundError{Entity: "customer", ID: b.CustomerID}
	}

	var invoice *models.Invoice
	err = s.callCollaborator(ctx, "payment", func(callCtx context.Context) error {
		var callErr error
		invoice, callErr = s.Payment.CreateInvoice(callCtx, payment.InvoiceRequest{
			BookingID:  b.ID,
			Amount:     b.TotalAmount,
			PayerName:  customer.Name,
			PayerPhone: customer.Phone,
		})
		return callErr
	})
	if err != nil {
		return nil, s.attachBooking(err, b)
	}

	b.InvoiceID = invoice.InvoiceID
	if err := s.BookingRepo.Update(b); err != nil {
		return nil, fmt.Errorf("failed to record invoice on booking: %w", err)
	}
	return invoice, nil
}

// releaseUnit returns a reserved unit to the area, logging instead of
// failing; capacity drift here is recoverable by staff.
func (s *DefaultBookingService) releaseUnit(areaID string) {
	if err := s.AreaRepo.ReleaseUnit(areaID); err != nil {
		s.Logger.Warn("failed to release area unit", zap.String("areaId", areaID), zap.Error(err))
	}
}

// attachBooking adds the last consistent booking state to a DependencyError.
func (s *DefaultBookingService) attachBooking(err error, b *models.Booking) error {
	if depErr, ok := err.(*DependencyError); ok {
		depErr.Booking = b
	}
	return err
}
