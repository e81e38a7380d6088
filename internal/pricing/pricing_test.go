package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/easytripzy/tripbooking/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDaySpan(t *testing.T) {
	testCases := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{name: "same day bills one day", from: date(2025, 6, 1), to: date(2025, 6, 1), want: 1},
		{name: "two full days", from: date(2025, 6, 1), to: date(2025, 6, 3), want: 2},
		{name: "one day", from: date(2025, 6, 1), to: date(2025, 6, 2), want: 1},
		{name: "time of day ignored", from: date(2025, 6, 1).Add(18 * time.Hour), to: date(2025, 6, 2).Add(9 * time.Hour), want: 1},
		{name: "inverted range floors to one", from: date(2025, 6, 5), to: date(2025, 6, 1), want: 1},
		{name: "across month boundary", from: date(2025, 6, 29), to: date(2025, 7, 2), want: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaySpan(tc.from, tc.to))
		})
	}
}

func TestCarTotal_SameDayRental(t *testing.T) {
	days := RentalDays(date(2025, 6, 1), date(2025, 6, 1))

	assert.Equal(t, 1, days)
	assert.Equal(t, int64(100000), CarTotal(days, 100000)) // 1000.00 per day
}

func TestHotelTotal_TwoNights(t *testing.T) {
	nights := Nights(date(2025, 6, 1), date(2025, 6, 3))

	assert.Equal(t, 2, nights)
	assert.Equal(t, int64(400000), HotelTotal(nights, 200000)) // 2000.00 per night
}

func TestFlightTotal(t *testing.T) {
	testCases := []struct {
		name   string
		adults int
		kids   int
		unit   int64
		want   int64
	}{
		{name: "kids priced at half", adults: 2, kids: 1, unit: 100000, want: 250000},
		{name: "no kids equals adults times unit", adults: 3, kids: 0, unit: 100000, want: 300000},
		{name: "single adult", adults: 1, kids: 0, unit: 55000, want: 55000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FlightTotal(tc.adults, tc.kids, tc.unit))
		})
	}
}

func TestQuote_PerKind(t *testing.T) {
	car := &domain.Booking{
		Kind: domain.KindCar,
		Car:  &domain.CarDetails{PickupDate: date(2025, 6, 1), ReturnDate: date(2025, 6, 1)},
	}
	assert.Equal(t, int64(100000), Quote(car, 100000))
	assert.Equal(t, 1, car.Car.RentalDays, "rental days recorded on the booking")

	hotel := &domain.Booking{
		Kind:  domain.KindHotel,
		Hotel: &domain.HotelDetails{CheckIn: date(2025, 6, 1), CheckOut: date(2025, 6, 3)},
	}
	assert.Equal(t, int64(400000), Quote(hotel, 200000))

	flight := &domain.Booking{
		Kind:   domain.KindFlight,
		Flight: &domain.FlightDetails{Adults: 2, Kids: 1},
	}
	assert.Equal(t, int64(250000), Quote(flight, 100000))

	restaurant := &domain.Booking{
		Kind:       domain.KindRestaurant,
		Restaurant: &domain.RestaurantDetails{MealDate: date(2025, 6, 1), PartySize: 4},
	}
	assert.Equal(t, int64(0), Quote(restaurant, 100000), "restaurant bookings carry no derived price")
}
