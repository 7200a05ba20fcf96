package areaRepo

import (
	"fmt"
	"sync"

	"coden/models"
)

// MemoryAreaRepo is an in-memory AreaRepository used by tests and local
// development without MongoDB. Reserve/Release are serialized by a mutex to
// keep the compare-and-decrement guarantee.
type MemoryAreaRepo struct {
	mu    sync.Mutex
	areas map[string]models.Area
}

// NewMemoryAreaRepo creates an empty in-memory repository.
func NewMemoryAreaRepo() *MemoryAreaRepo {
	return &MemoryAreaRepo{areas: make(map[string]models.Area)}
}

func (r *MemoryAreaRepo) GetByID(id string) (*models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.areas[id]
	if !ok {
		return nil, nil
	}
	copied := a
	return &copied, nil
}

func (r *MemoryAreaRepo) GetAll() ([]models.Area, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Area
	for _, a := range r.areas {
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryAreaRepo) Create(area *models.Area) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.areas[area.ID]; exists {
		return fmt.Errorf("area with id %s already exists", area.ID)
	}
	r.areas[area.ID] = *area
	return nil
}

func (r *MemoryAreaRepo) Update(area *models.Area) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.areas[area.ID]; !exists {
		return fmt.Errorf("area with id %s not found", area.ID)
	}
	r.areas[area.ID] = *area
	return nil
}

func (r *MemoryAreaRepo) ReserveUnit(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.areas[id]
	if !ok {
		return false, fmt.Errorf("area with id %s not found", id)
	}
	if a.Available <= 0 {
		return false, nil
	}
	a.Available--
	r.areas[id] = a
	return true, nil
}

func (r *MemoryAreaRepo) ReleaseUnit(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.areas[id]
	if !ok {
		return fmt.Errorf("area with id %s not found", id)
	}
	if a.Available < a.Capacity {
		a.Available++
		r.areas[id] = a
	}
	return nil
}
