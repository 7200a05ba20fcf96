package staffRepo

import (
	"fmt"
	"sync"
	"time"

	"coden/models"
)

// MemoryStaffRepo is an in-memory StaffRepository used by tests.
type MemoryStaffRepo struct {
	mu    sync.RWMutex
	staff map[string]models.Staff
}

// NewMemoryStaffRepo creates an empty in-memory repository.
func NewMemoryStaffRepo() *MemoryStaffRepo {
	return &MemoryStaffRepo{staff: make(map[string]models.Staff)}
}

func (r *MemoryStaffRepo) GetByID(id string) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.staff[id]
	if !ok {
		return nil, nil
	}
	copied := s
	return &copied, nil
}

func (r *MemoryStaffRepo) GetByEmployeeID(employeeID string) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.staff {
		if s.EmployeeID == employeeID {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.staff {
		if s.Email == email {
			copied := s
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryStaffRepo) Create(staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.staff[staff.ID]; exists {
		return fmt.Errorf("staff with id %s already exists", staff.ID)
	}
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	r.staff[staff.ID] = *staff
	return nil
}

func (r *MemoryStaffRepo) Update(staff *models.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.staff[staff.ID]; !exists {
		return fmt.Errorf("staff with id %s not found", staff.ID)
	}
	staff.UpdatedAt = time.Now()
	r.staff[staff.ID] = *staff
	return nil
}
