package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coden/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// CardRequest is a walk-in card payment taken at the front desk terminal.
type CardRequest struct {
	BookingID   string
	Amount      int64
	Method      string // "card" or "cash"
	Description string
}

// WalkInProcessor settles front-desk payments.
type WalkInProcessor interface {
	Process(ctx context.Context, req CardRequest) (*models.PaymentResult, error)
}

// CardHandler settles walk-in payments: card charges go through Stripe,
// cash entries are recorded as pending until staff reconcile them.
type CardHandler struct {
	logger *zap.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(logger *zap.Logger) *CardHandler {
	return &CardHandler{logger: logger}
}

// Process settles a walk-in payment and returns the payment result to feed
// into the booking lifecycle.
func (h *CardHandler) Process(ctx context.Context, req CardRequest) (*models.PaymentResult, error) {
	if err := validateCardRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	switch req.Method {
	case "card":
		return h.processCard(ctx, req)
	case "cash":
		return h.processCash(req)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *CardHandler) processCard(ctx context.Context, req CardRequest) (*models.PaymentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(string(stripe.CurrencyIDR)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
		Description: stripe.String(req.Description),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID)

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment failed: %w", err)
	}

	now := time.Now()
	h.logger.Info("Card payment successful",
		zap.String("bookingId", req.BookingID),
		zap.String("paymentIntent", intent.ID))

	return &models.PaymentResult{
		InvoiceID:  intent.ID,
		Status:     models.PaymentPaid,
		PaidAmount: req.Amount,
		PaidAt:     &now,
	}, nil
}

func (h *CardHandler) processCash(req CardRequest) (*models.PaymentResult, error) {
	// Cash payments stay pending until staff reconcile the drawer.
	h.logger.Info("Cash payment recorded", zap.String("bookingId", req.BookingID))
	return &models.PaymentResult{
		Status:     models.PaymentPending,
		PaidAmount: 0,
	}, nil
}

func validateCardRequest(req CardRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.BookingID == "" {
		return errors.New("missing booking ID")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
