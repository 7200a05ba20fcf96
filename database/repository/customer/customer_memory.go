package customerRepo

import (
	"fmt"
	"sync"
	"time"

	"coden/models"
)

// MemoryCustomerRepo is an in-memory CustomerRepository used by tests.
type MemoryCustomerRepo struct {
	mu        sync.RWMutex
	customers map[string]models.Customer
}

// NewMemoryCustomerRepo creates an empty in-memory repository.
func NewMemoryCustomerRepo() *MemoryCustomerRepo {
	return &MemoryCustomerRepo{customers: make(map[string]models.Customer)}
}

func (r *MemoryCustomerRepo) GetByID(id string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	copied := c
	return &copied, nil
}

func (r *MemoryCustomerRepo) GetByPhone(phone string) (*models.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Phone == phone {
			copied := c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryCustomerRepo) Create(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.ID]; exists {
		return fmt.Errorf("customer with id %s already exists", customer.ID)
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.customers[customer.ID] = *customer
	return nil
}

func (r *MemoryCustomerRepo) Update(customer *models.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.ID]; !exists {
		return fmt.Errorf("customer with id %s not found", customer.ID)
	}
	customer.UpdatedAt = time.Now()
	r.customers[customer.ID] = *customer
	return nil
}
