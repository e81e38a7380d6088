// Package lifecycle classifies bookings as upcoming or past relative to their
// service date and gates cancellation by the minimum-notice window. All
// comparisons are at calendar-day granularity: midnight to midnight, local time
// of the stored dates ignored.
package lifecycle

import (
	"sort"
	"time"

	"github.com/easytripzy/tripbooking/internal/domain"
)

// DefaultCancelNoticeDays is the minimum advance notice for cancelling an
// upcoming booking.
const DefaultCancelNoticeDays = 7

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole calendar days from 'from' to 'to'. Negative
// when 'to' precedes 'from'.
func DaysBetween(from, to time.Time) int {
	return int(Midnight(to).Sub(Midnight(from)) / (24 * time.Hour))
}

// IsPast reports whether the service date falls strictly before today.
// A service date of today still counts as upcoming.
func IsPast(serviceDate, today time.Time) bool {
	return Midnight(serviceDate).Before(Midnight(today))
}

// Cancellable reports whether a booking with the given service date may still
// be cancelled: at least noticeDays whole days of notice remain.
func Cancellable(serviceDate, today time.Time, noticeDays int) bool {
	return DaysBetween(today, serviceDate) >= noticeDays
}

// Buckets holds a user's bookings split by service date. Upcoming is sorted
// soonest first, Past most recent first.
type Buckets struct {
	Upcoming []domain.Booking
	Past     []domain.Booking
}

// Partition splits bookings into upcoming and past relative to today and sorts
// each bucket for display.
func Partition(bookings []domain.Booking, today time.Time) Buckets {
	var out Buckets
	for _, b := range bookings {
		if IsPast(b.ServiceDate(), today) {
			out.Past = append(out.Past, b)
		} else {
			out.Upcoming = append(out.Upcoming, b)
		}
	}
	sort.SliceStable(out.Upcoming, func(i, j int) bool {
		return out.Upcoming[i].ServiceDate().Before(out.Upcoming[j].ServiceDate())
	})
	sort.SliceStable(out.Past, func(i, j int) bool {
		return out.Past[i].ServiceDate().After(out.Past[j].ServiceDate())
	})
	return out
}
