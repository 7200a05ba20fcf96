package booking

import (
	"context"
	"time"

	areaRepo "coden/database/repository/area"
	bookingRepo "coden/database/repository/booking"
	customerRepo "coden/database/repository/customer"
	"coden/models"
	"coden/services/messaging"
	"coden/services/network"
	"coden/services/payment"

	"go.uber.org/zap"
)

// BookingService owns the booking lifecycle and coordinates the network,
// payment and messaging collaborators on every transition.
type BookingService interface {
	Create(ctx context.Context, input models.BookingRequestInput) (*models.Booking, error)
	Get(ctx context.Context, id string) (*models.Booking, error)
	List(ctx context.Context, status string) ([]models.Booking, error)
	IssueInvoice(ctx context.Context, id string) (*models.Invoice, error)
	ConfirmPayment(ctx context.Context, id string, result models.PaymentResult) (*models.Booking, error)
	CheckIn(ctx context.Context, id, suppliedCode string) (*models.Booking, error)
	GrantNetworkAccess(ctx context.Context, id string) (*models.Booking, error)
	RevokeNetworkAccess(ctx context.Context, id, reason string) (*models.Booking, error)
	Complete(ctx context.Context, id string) (*models.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*models.Booking, error)
	Usage(ctx context.Context, id string) (*models.Usage, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo  bookingRepo.BookingRepository
	AreaRepo     areaRepo.AreaRepository
	CustomerRepo customerRepo.CustomerRepository
	Network      network.Provider
	Payment      payment.Provider
	Notifier     messaging.NotificationService
	Logger       *zap.Logger

	// CallTimeout and RetryDelay override the configured collaborator call
	// policy; zero values fall back to config defaults.
	CallTimeout time.Duration
	RetryDelay  time.Duration

	locks keyedLocks
}
