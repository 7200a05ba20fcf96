package bookingRepo

import (
	"fmt"
	"sync"
	"time"

	"coden/models"
)

// MemoryBookingRepo is an in-memory BookingRepository used by tests and local
// development without MongoDB.
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.Booking
}

// NewMemoryBookingRepo creates an empty in-memory repository.
func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *MemoryBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := b
	return &copied, nil
}

func (r *MemoryBookingRepo) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; exists {
		return fmt.Errorf("booking with id %s already exists", booking.ID)
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) Update(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bookings[booking.ID]; !exists {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *MemoryBookingRepo) ListByStatus(status string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.Booking
	for _, b := range r.bookings {
		if status == "" || b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBookingRepo) CodeInUse(code string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.CheckInCode == code && !b.Terminal() {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryBookingRepo) ListExpired() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	var out []models.Booking
	for _, b := range r.bookings {
		if !b.Terminal() && b.EndTime.Before(now) {
			out = append(out, b)
		}
	}
	return out, nil
}
