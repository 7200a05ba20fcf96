package booking

import "coden/models"

// Business-hour buckets per tier, in minutes. A daily booking is billed
// against an 8-hour business day, weekly against 40 hours, monthly against
// 160 hours, each rounded up at the bucket boundary.
const (
	minutesPerHour  = 60
	minutesPerDay   = 8 * minutesPerHour
	minutesPerWeek  = 40 * minutesPerHour
	minutesPerMonth = 160 * minutesPerHour
)

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Quote computes the total price for a duration under a pricing tier,
// including add-on line items. Amounts are IDR.
func Quote(pricing models.Pricing, tier string, durationMinutes int, addOns []models.AddOn) int64 {
	var base int64
	switch tier {
	case models.TierDaily:
		base = pricing.Daily * int64(ceilDiv(durationMinutes, minutesPerDay))
	case models.TierWeekly:
		base = pricing.Weekly * int64(ceilDiv(durationMinutes, minutesPerWeek))
	case models.TierMonthly:
		base = pricing.Monthly * int64(ceilDiv(durationMinutes, minutesPerMonth))
	default:
		base = pricing.Hourly * int64(ceilDiv(durationMinutes, minutesPerHour))
	}

	for _, a := range addOns {
		base += a.UnitPrice * int64(a.Quantity)
	}
	return base
}
