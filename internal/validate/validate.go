// Package validate rejects malformed booking drafts before they reach pricing
// or storage. Every rule runs, so the caller can surface all field errors at
// once.
package validate

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/lifecycle"
)

// Errors maps a view-model field name to a user-facing message. An empty map
// means the draft is valid.
type Errors map[string]string

func (e Errors) Add(field, msg string) {
	if _, dup := e[field]; !dup {
		e[field] = msg
	}
}

func (e Errors) Ok() bool { return len(e) == 0 }

// CarDraft carries the raw car booking input.
type CarDraft struct {
	PickupDate       time.Time
	ReturnDate       time.Time
	PickupLocationID uuid.UUID
	ReturnLocationID uuid.UUID
}

// FlightDraft keeps party sizes as submitted strings: adults must parse,
// kids falls back to zero.
type FlightDraft struct {
	Adults string
	Kids   string
}

type HotelDraft struct {
	CheckIn  time.Time
	CheckOut time.Time
	Guests   string
	RoomType string
}

type RestaurantDraft struct {
	MealDate  time.Time
	MealTime  string
	PartySize string
}

// Draft is a client-submitted, not-yet-validated booking. Exactly one of the
// variant drafts matching Kind must be set.
type Draft struct {
	Kind        domain.Kind
	UserID      uuid.UUID
	ItemID      uuid.UUID
	BookingDate time.Time
	Status      domain.BookingStatus // optional; applied on edits only
	Car         *CarDraft
	Flight      *FlightDraft
	Hotel       *HotelDraft
	Restaurant  *RestaurantDraft
}

// Count parses a submitted head count. ok is false for empty or non-numeric
// input.
func Count(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CountOrZero parses a head count leniently; unset or non-numeric input counts
// as zero.
func CountOrZero(s string) int {
	n, ok := Count(s)
	if !ok {
		return 0
	}
	return n
}

// Check validates a draft against the rules of its kind. now anchors the
// non-past rule at midnight granularity.
func Check(d Draft, now time.Time) Errors {
	errs := Errors{}

	variant, ok := domain.VariantFor(d.Kind)
	if !ok {
		errs.Add("kind", "Unknown booking type")
		return errs
	}
	if d.UserID == uuid.Nil {
		errs.Add("userID", "User is required")
	}
	if d.ItemID == uuid.Nil {
		errs.Add("itemID", variant.Label+" is required")
	}

	switch d.Kind {
	case domain.KindCar:
		checkCar(d.Car, now, errs)
	case domain.KindFlight:
		checkFlight(d.Flight, d.BookingDate, now, errs)
	case domain.KindHotel:
		checkHotel(d.Hotel, now, errs)
	case domain.KindRestaurant:
		checkRestaurant(d.Restaurant, now, errs)
	}
	return errs
}

func pastDate(d, now time.Time) bool {
	return lifecycle.Midnight(d).Before(lifecycle.Midnight(now))
}

func checkCar(c *CarDraft, now time.Time, errs Errors) {
	if c == nil {
		errs.Add("pickupDate", "Pickup date is required")
		errs.Add("returnDate", "Return date is required")
		return
	}
	if c.PickupDate.IsZero() {
		errs.Add("pickupDate", "Pickup date is required")
	} else if pastDate(c.PickupDate, now) {
		errs.Add("pickupDate", "Pickup date cannot be in the past")
	}
	if c.ReturnDate.IsZero() {
		errs.Add("returnDate", "Return date is required")
	} else if !c.PickupDate.IsZero() && lifecycle.Midnight(c.ReturnDate).Before(lifecycle.Midnight(c.PickupDate)) {
		errs.Add("returnDate", "Return date cannot be before pickup date")
	}
	if c.PickupLocationID == uuid.Nil {
		errs.Add("pickupLocationId", "Pickup location is required")
	}
	if c.ReturnLocationID == uuid.Nil {
		errs.Add("returnLocationId", "Return location is required")
	}
}

func checkFlight(f *FlightDraft, bookingDate, now time.Time, errs Errors) {
	if bookingDate.IsZero() {
		errs.Add("bookingDate", "Please select a booking date.")
	} else if pastDate(bookingDate, now) {
		errs.Add("bookingDate", "Booking date cannot be in the past.")
	}
	if f == nil {
		errs.Add("adults", "At least 1 adult is required.")
		return
	}
	if adults, ok := Count(f.Adults); !ok || adults < 1 {
		errs.Add("adults", "At least 1 adult is required.")
	}
}

func checkHotel(h *HotelDraft, now time.Time, errs Errors) {
	if h == nil {
		errs.Add("checkindate", "Check-in date is required")
		errs.Add("checkoutdate", "Check-out date is required")
		return
	}
	if h.CheckIn.IsZero() {
		errs.Add("checkindate", "Check-in date is required")
	} else if pastDate(h.CheckIn, now) {
		errs.Add("checkindate", "Check-in date cannot be in the past")
	}
	if h.CheckOut.IsZero() {
		errs.Add("checkoutdate", "Check-out date is required")
	} else if !h.CheckIn.IsZero() && lifecycle.Midnight(h.CheckOut).Before(lifecycle.Midnight(h.CheckIn)) {
		errs.Add("checkoutdate", "Check-out cannot be before check-in")
	}
	guests, ok := Count(h.Guests)
	switch {
	case !ok || guests < 1:
		errs.Add("noofPeople", "Number of people must be greater than 0")
	case guests > 4:
		errs.Add("noofPeople", "Number of people cannot exceed 4")
	}
	if h.RoomType == "" {
		errs.Add("roomType", "Room type is required")
	}
}

func checkRestaurant(r *RestaurantDraft, now time.Time, errs Errors) {
	if r == nil {
		errs.Add("mealDate", "Please select a meal date.")
		errs.Add("totalPeople", "Total people must be at least 1.")
		return
	}
	if r.MealDate.IsZero() {
		errs.Add("mealDate", "Please select a meal date.")
	} else if pastDate(r.MealDate, now) {
		errs.Add("mealDate", "You cannot book a past date.")
	}
	if people, ok := Count(r.PartySize); !ok || people < 1 {
		errs.Add("totalPeople", "Total people must be at least 1.")
	}
	if r.MealTime == "" {
		errs.Add("mealTime", "Meal time is required")
	}
}
