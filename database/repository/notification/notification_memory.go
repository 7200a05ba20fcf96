package notificationRepo

import (
	"fmt"
	"sync"
	"time"

	"coden/models"
)

// MemoryNotificationRepo is an in-memory NotificationRepository used by tests.
type MemoryNotificationRepo struct {
	mu      sync.RWMutex
	records []models.NotificationRecord
}

// NewMemoryNotificationRepo creates an empty in-memory repository.
func NewMemoryNotificationRepo() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{}
}

func (r *MemoryNotificationRepo) Create(record *models.NotificationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.UpdatedAt = time.Now()
	r.records = append(r.records, *record)
	return nil
}

func (r *MemoryNotificationRepo) UpdateStatus(messageID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.records {
		if r.records[i].MessageID == messageID {
			r.records[i].Status = status
			r.records[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("notification with message id %s not found", messageID)
}

func (r *MemoryNotificationRepo) ListByBooking(bookingID string) ([]models.NotificationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []models.NotificationRecord
	for _, rec := range r.records {
		if rec.BookingID == bookingID {
			out = append(out, rec)
		}
	}
	return out, nil
}
