package staffRepo

import "coden/models"

// StaffRepository defines methods for staff-account data access.
type StaffRepository interface {
	// GetByID retrieves a staff account by its unique ID.
	GetByID(id string) (*models.Staff, error)
	// GetByEmployeeID retrieves a staff account by employee ID.
	GetByEmployeeID(employeeID string) (*models.Staff, error)
	// GetByEmail retrieves a staff account by email address.
	GetByEmail(email string) (*models.Staff, error)
	// Create inserts a new staff record.
	Create(staff *models.Staff) error
	// Update modifies an existing staff record.
	Update(staff *models.Staff) error
}
