package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/easytripzy/tripbooking/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func restaurantBooking(mealDate time.Time) domain.Booking {
	return domain.Booking{
		Kind:       domain.KindRestaurant,
		Restaurant: &domain.RestaurantDetails{MealDate: mealDate},
	}
}

func TestIsPast(t *testing.T) {
	today := date(2025, 6, 10)

	testCases := []struct {
		name        string
		serviceDate time.Time
		want        bool
	}{
		{name: "yesterday is past", serviceDate: date(2025, 6, 9), want: true},
		{name: "today is upcoming", serviceDate: date(2025, 6, 10), want: false},
		{name: "tomorrow is upcoming", serviceDate: date(2025, 6, 11), want: false},
		{name: "late yesterday evening is still past", serviceDate: date(2025, 6, 9).Add(23 * time.Hour), want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsPast(tc.serviceDate, today))
		})
	}
}

func TestCancellable_SevenDayBoundary(t *testing.T) {
	today := date(2025, 6, 10)

	// exactly 7 days of notice is accepted, 6 is rejected
	assert.True(t, Cancellable(date(2025, 6, 17), today, 7))
	assert.False(t, Cancellable(date(2025, 6, 16), today, 7))
	assert.True(t, Cancellable(date(2025, 6, 30), today, 7))
	assert.False(t, Cancellable(date(2025, 6, 10), today, 7))
	assert.False(t, Cancellable(date(2025, 6, 5), today, 7))
}

func TestCancellable_IgnoresTimeOfDay(t *testing.T) {
	today := date(2025, 6, 10).Add(22 * time.Hour)

	assert.True(t, Cancellable(date(2025, 6, 17), today, 7))
}

func TestPartition(t *testing.T) {
	today := date(2025, 6, 10)

	bookings := []domain.Booking{
		restaurantBooking(date(2025, 6, 20)),
		restaurantBooking(date(2025, 6, 1)),
		restaurantBooking(date(2025, 6, 12)),
		restaurantBooking(date(2025, 6, 8)),
		restaurantBooking(date(2025, 6, 10)),
	}

	buckets := Partition(bookings, today)

	assert.Len(t, buckets.Upcoming, 3)
	assert.Len(t, buckets.Past, 2)

	// upcoming soonest first
	assert.Equal(t, date(2025, 6, 10), buckets.Upcoming[0].ServiceDate())
	assert.Equal(t, date(2025, 6, 12), buckets.Upcoming[1].ServiceDate())
	assert.Equal(t, date(2025, 6, 20), buckets.Upcoming[2].ServiceDate())

	// past most recent first
	assert.Equal(t, date(2025, 6, 8), buckets.Past[0].ServiceDate())
	assert.Equal(t, date(2025, 6, 1), buckets.Past[1].ServiceDate())
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, DaysBetween(date(2025, 6, 10), date(2025, 6, 17)))
	assert.Equal(t, 0, DaysBetween(date(2025, 6, 10), date(2025, 6, 10)))
	assert.Equal(t, -3, DaysBetween(date(2025, 6, 10), date(2025, 6, 7)))
}
