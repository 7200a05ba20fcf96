package areaRepo

import "coden/models"

// AreaRepository defines methods for area data access.
//
// ReserveUnit and ReleaseUnit carry the overbooking guarantee: a unit is
// reserved only through a conditional decrement, so concurrent bookings can
// never take more units than are available.
type AreaRepository interface {
	// GetByID retrieves an area by its unique ID.
	GetByID(id string) (*models.Area, error)
	// GetAll retrieves all areas.
	GetAll() ([]models.Area, error)
	// Create inserts a new area record.
	Create(area *models.Area) error
	// Update modifies an existing area record.
	Update(area *models.Area) error
	// ReserveUnit atomically decrements the available count if any unit is
	// free. It returns false when the area is fully booked.
	ReserveUnit(id string) (bool, error)
	// ReleaseUnit increments the available count, bounded by capacity.
	ReleaseUnit(id string) error
}
