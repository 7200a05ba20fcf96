package bookingRepo

import "coden/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// Update modifies an existing booking record.
	Update(booking *models.Booking) error
	// ListByStatus retrieves bookings filtered by status; empty status means all.
	ListByStatus(status string) ([]models.Booking, error)
	// CodeInUse reports whether a check-in code is held by any non-terminal booking.
	CodeInUse(code string) (bool, error)
	// ListExpired retrieves non-terminal bookings whose end time has passed.
	ListExpired() ([]models.Booking, error)
}
