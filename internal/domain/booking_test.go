package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceDate_PerKind(t *testing.T) {
	bookingDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	serviceDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	serviceEnd := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		booking  Booking
		wantDate time.Time
		wantEnd  time.Time
	}{
		{
			name:     "car uses pickup and return",
			booking:  Booking{Kind: KindCar, BookingDate: bookingDate, Car: &CarDetails{PickupDate: serviceDate, ReturnDate: serviceEnd}},
			wantDate: serviceDate,
			wantEnd:  serviceEnd,
		},
		{
			name:     "flight falls back to booking date",
			booking:  Booking{Kind: KindFlight, BookingDate: bookingDate, Flight: &FlightDetails{Adults: 2}},
			wantDate: bookingDate,
			wantEnd:  bookingDate,
		},
		{
			name:     "hotel uses check-in and check-out",
			booking:  Booking{Kind: KindHotel, BookingDate: bookingDate, Hotel: &HotelDetails{CheckIn: serviceDate, CheckOut: serviceEnd}},
			wantDate: serviceDate,
			wantEnd:  serviceEnd,
		},
		{
			name:     "restaurant uses meal date for both",
			booking:  Booking{Kind: KindRestaurant, BookingDate: bookingDate, Restaurant: &RestaurantDetails{MealDate: serviceDate}},
			wantDate: serviceDate,
			wantEnd:  serviceDate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantDate, tc.booking.ServiceDate())
			assert.Equal(t, tc.wantEnd, tc.booking.ServiceEnd())
		})
	}
}

func TestPartySize(t *testing.T) {
	flight := Booking{Kind: KindFlight, Flight: &FlightDetails{Adults: 2, Kids: 3}}
	assert.Equal(t, 5, flight.PartySize())

	car := Booking{Kind: KindCar, Car: &CarDetails{}}
	assert.Equal(t, 0, car.PartySize())
}

func TestVariantFor(t *testing.T) {
	for _, kind := range Kinds() {
		v, ok := VariantFor(kind)
		assert.True(t, ok)
		assert.Equal(t, kind, v.Kind)
		assert.NotEmpty(t, v.Label)
	}

	_, ok := VariantFor(Kind("cruise"))
	assert.False(t, ok)
}
