package booking

import (
	"testing"

	"coden/models"

	"github.com/stretchr/testify/assert"
)

var studioPricing = models.Pricing{
	Hourly:  25000,
	Daily:   150000,
	Weekly:  600000,
	Monthly: 2000000,
}

func TestQuoteHourly(t *testing.T) {
	// 4 hours at 25,000/hour.
	assert.Equal(t, int64(100000), Quote(studioPricing, models.TierHourly, 240, nil))
}

func TestQuoteHourlyRoundsUp(t *testing.T) {
	// 90 minutes bills as 2 hours.
	assert.Equal(t, int64(50000), Quote(studioPricing, models.TierHourly, 90, nil))
}

func TestQuoteDailyExactDay(t *testing.T) {
	// An 8-hour business day is exactly one daily unit.
	assert.Equal(t, int64(150000), Quote(studioPricing, models.TierDaily, 480, nil))
}

func TestQuoteDailyRoundsUp(t *testing.T) {
	// 9 hours spills into a second day.
	assert.Equal(t, int64(300000), Quote(studioPricing, models.TierDaily, 540, nil))
}

func TestQuoteWeekly(t *testing.T) {
	// 41 business hours bills as two weeks.
	assert.Equal(t, int64(600000), Quote(studioPricing, models.TierWeekly, 2400, nil))
	assert.Equal(t, int64(1200000), Quote(studioPricing, models.TierWeekly, 2460, nil))
}

func TestQuoteMonthly(t *testing.T) {
	assert.Equal(t, int64(2000000), Quote(studioPricing, models.TierMonthly, 9600, nil))
	assert.Equal(t, int64(4000000), Quote(studioPricing, models.TierMonthly, 9601, nil))
}

func TestQuoteAddOns(t *testing.T) {
	addOns := []models.AddOn{
		{Name: "locker", Quantity: 1, UnitPrice: 10000},
		{Name: "coffee", Quantity: 2, UnitPrice: 15000},
	}
	// 2 hours base plus 40,000 of add-ons.
	assert.Equal(t, int64(90000), Quote(studioPricing, models.TierHourly, 120, addOns))
}
