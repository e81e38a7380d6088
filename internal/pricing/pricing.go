// Package pricing computes booking totals from a validated date span or head
// count and a catalog unit price. All amounts are integer cents.
package pricing

import (
	"time"

	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/lifecycle"
)

// DaySpan returns the number of billable calendar days between from and to,
// rounding any partial day up and never returning less than 1. Same-day ranges
// bill a single day. Dates are compared midnight to midnight, so time-of-day
// components of stored dates do not add days.
func DaySpan(from, to time.Time) int {
	span := lifecycle.Midnight(to).Sub(lifecycle.Midnight(from))
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		days++
	}
	if days < 1 {
		return 1
	}
	return days
}

// RentalDays is the billable day count for a car rental.
func RentalDays(pickup, ret time.Time) int {
	return DaySpan(pickup, ret)
}

// Nights is the billable night count for a hotel stay.
func Nights(checkIn, checkOut time.Time) int {
	return DaySpan(checkIn, checkOut)
}

// CarTotal prices a rental at perDayCents for each billable day.
func CarTotal(days int, perDayCents int64) int64 {
	return int64(days) * perDayCents
}

// HotelTotal prices a stay at perNightCents for each billable night.
func HotelTotal(nights int, perNightCents int64) int64 {
	return int64(nights) * perNightCents
}

// FlightTotal prices adults at the full unit price and kids at half.
func FlightTotal(adults, kids int, unitCents int64) int64 {
	return int64(adults)*unitCents + int64(kids)*unitCents/2
}

// Quote computes the stored total for a booking from the catalog unit price.
// Restaurant bookings carry no derived price and quote to zero. Car rental
// day counts are recorded on the booking as a side effect.
func Quote(b *domain.Booking, unitCents int64) int64 {
	switch b.Kind {
	case domain.KindCar:
		days := RentalDays(b.Car.PickupDate, b.Car.ReturnDate)
		b.Car.RentalDays = days
		return CarTotal(days, unitCents)
	case domain.KindHotel:
		return HotelTotal(Nights(b.Hotel.CheckIn, b.Hotel.CheckOut), unitCents)
	case domain.KindFlight:
		return FlightTotal(b.Flight.Adults, b.Flight.Kids, unitCents)
	default:
		return 0
	}
}
