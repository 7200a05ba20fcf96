package customerRepo

import "coden/models"

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its unique ID.
	GetByID(id string) (*models.Customer, error)
	// GetByPhone retrieves a customer by phone number.
	GetByPhone(phone string) (*models.Customer, error)
	// Create inserts a new customer record.
	Create(customer *models.Customer) error
	// Update modifies an existing customer record.
	Update(customer *models.Customer) error
}
