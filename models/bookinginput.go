package models

import "time"

// BookingRequestInput is the payload for creating a new booking.
type BookingRequestInput struct {
	CustomerID  string    `json:"customerId" binding:"required"`
	AreaID      string    `json:"areaId" binding:"required"`
	StartTime   time.Time `json:"startTime" binding:"required"`
	Duration    int       `json:"duration" binding:"required"` // Minutes
	PricingTier string    `json:"pricingTier"`
	AddOns      []AddOn   `json:"addOns,omitempty"`
}
