package notificationRepo

import "coden/models"

// NotificationRepository defines methods for notification-record data access.
type NotificationRepository interface {
	// Create inserts a new notification record.
	Create(record *models.NotificationRecord) error
	// UpdateStatus updates the delivery status of a record by message ID.
	UpdateStatus(messageID, status string) error
	// ListByBooking retrieves all records dispatched for a booking.
	ListByBooking(bookingID string) ([]models.NotificationRecord, error)
}
