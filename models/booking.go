package models

import "time"

// Booking status values. Terminal states are COMPLETED and CANCELLED.
const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCheckedIn = "CHECKED_IN"
	BookingActive    = "ACTIVE"
	BookingCompleted = "COMPLETED"
	BookingCancelled = "CANCELLED"
)

// Payment status values. Independent axis from booking status.
const (
	PaymentPending  = "PENDING"
	PaymentPaid     = "PAID"
	PaymentPartial  = "PARTIAL"
	PaymentRefunded = "REFUNDED"
	PaymentFailed   = "FAILED"
)

// Pricing tiers and their business-hour buckets.
const (
	TierHourly  = "hourly"
	TierDaily   = "daily"
	TierWeekly  = "weekly"
	TierMonthly = "monthly"
)

// AddOn is an optional extra line item attached to a booking.
type AddOn struct {
	Name      string `bson:"name" json:"name"`
	Quantity  int    `bson:"quantity" json:"quantity"`
	UnitPrice int64  `bson:"unit_price" json:"unitPrice"`
}

// Credentials is a captive-portal login owned by a single booking.
type Credentials struct {
	Username  string    `bson:"username" json:"username"`
	Password  string    `bson:"password" json:"password"`
	Bandwidth string    `bson:"bandwidth" json:"bandwidth"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
}

// Booking is the central entity: a customer's reservation of an area unit
// for a time-boxed window, with its payment and internet-access state.
type Booking struct {
	ID          string `bson:"id" json:"id"`                     // Unique booking identifier (UUID)
	CheckInCode string `bson:"check_in_code" json:"checkInCode"` // Short customer-facing code, unique among non-terminal bookings

	CustomerID string `bson:"customer_id" json:"customerId"`
	AreaID     string `bson:"area_id" json:"areaId"`

	StartTime time.Time `bson:"start_time" json:"startTime"`
	EndTime   time.Time `bson:"end_time" json:"endTime"`
	Duration  int       `bson:"duration" json:"duration"` // Minutes; always EndTime - StartTime

	PricingTier string  `bson:"pricing_tier" json:"pricingTier"`
	TotalAmount int64   `bson:"total_amount" json:"totalAmount"` // IDR, recomputed from area pricing, never mutated by transitions
	AddOns      []AddOn `bson:"add_ons,omitempty" json:"addOns,omitempty"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"payment_status" json:"paymentStatus"`
	InvoiceID     string `bson:"invoice_id,omitempty" json:"invoiceId,omitempty"`

	InternetAccess      bool         `bson:"internet_access" json:"internetAccess"`
	InternetCredentials *Credentials `bson:"internet_credentials,omitempty" json:"internetCredentials,omitempty"` // Non-nil only while InternetAccess is true

	// ConfirmationNotified guards the booking_confirmation message so a
	// replayed payment result cannot send it twice.
	ConfirmationNotified bool `bson:"confirmation_notified" json:"-"`

	CancelReason string `bson:"cancel_reason,omitempty" json:"cancelReason,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Terminal reports whether the booking can no longer transition.
func (b *Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}
