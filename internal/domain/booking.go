package domain

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindCar        Kind = "car"
	KindFlight     Kind = "flight"
	KindHotel      Kind = "hotel"
	KindRestaurant Kind = "restaurant"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Variant describes the per-kind shape of a booking: which date fields carry
// the service date, party-size bounds and whether a total price is stored.
type Variant struct {
	Kind      Kind
	Label     string // entity name used in route paths, e.g. "Flight"
	DateLabel string // user-facing name of the service date field
	Ranged    bool   // has a start and an end date (pickup/return, check-in/out)
	Priced    bool
	MinParty  int // 0 = party size not tracked
	MaxParty  int // 0 = unbounded
}

var variants = map[Kind]Variant{
	KindCar:        {Kind: KindCar, Label: "Car", DateLabel: "Pickup Date", Ranged: true, Priced: true},
	KindFlight:     {Kind: KindFlight, Label: "Flight", DateLabel: "Booking Date", Priced: true, MinParty: 1},
	KindHotel:      {Kind: KindHotel, Label: "Hotel", DateLabel: "Check-in Date", Ranged: true, Priced: true, MinParty: 1, MaxParty: 4},
	KindRestaurant: {Kind: KindRestaurant, Label: "Restaurant", DateLabel: "Meal Date", MinParty: 1},
}

func VariantFor(kind Kind) (Variant, bool) {
	v, ok := variants[kind]
	return v, ok
}

func Kinds() []Kind {
	return []Kind{KindCar, KindFlight, KindHotel, KindRestaurant}
}

type CarDetails struct {
	PickupDate       time.Time `json:"pickup_date"`
	ReturnDate       time.Time `json:"return_date"`
	PickupLocationID uuid.UUID `json:"pickup_location_id"`
	ReturnLocationID uuid.UUID `json:"return_location_id"`
	RentalDays       int       `json:"rental_days"`
}

type FlightDetails struct {
	Adults int `json:"adults"`
	Kids   int `json:"kids"`
}

type HotelDetails struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`
	Guests   int       `json:"guests"`
	RoomType string    `json:"room_type"`
}

type RestaurantDetails struct {
	MealDate  time.Time `json:"meal_date"`
	MealTime  string    `json:"meal_time"`
	PartySize int       `json:"party_size"`
}

// Booking is the common record for all four service types. Exactly one of the
// detail pointers matching Kind is set.
type Booking struct {
	ID          uuid.UUID
	Kind        Kind
	UserID      uuid.UUID
	ItemID      uuid.UUID
	BookingDate time.Time
	Status      BookingStatus
	PriceCents  int64
	Car         *CarDetails
	Flight      *FlightDetails
	Hotel       *HotelDetails
	Restaurant  *RestaurantDetails
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceDate returns the date the booked service occurs: pickup for cars,
// check-in for hotels, meal date for restaurants. Flights track no separate
// flight date, so the booking date doubles as the service date.
func (b *Booking) ServiceDate() time.Time {
	switch b.Kind {
	case KindCar:
		if b.Car != nil {
			return b.Car.PickupDate
		}
	case KindHotel:
		if b.Hotel != nil {
			return b.Hotel.CheckIn
		}
	case KindRestaurant:
		if b.Restaurant != nil {
			return b.Restaurant.MealDate
		}
	}
	return b.BookingDate
}

// ServiceEnd returns the end of the service range for ranged kinds and the
// service date itself for the rest.
func (b *Booking) ServiceEnd() time.Time {
	switch b.Kind {
	case KindCar:
		if b.Car != nil {
			return b.Car.ReturnDate
		}
	case KindHotel:
		if b.Hotel != nil {
			return b.Hotel.CheckOut
		}
	}
	return b.ServiceDate()
}

// PartySize returns the tracked head count, or 0 for kinds without one.
func (b *Booking) PartySize() int {
	switch b.Kind {
	case KindFlight:
		if b.Flight != nil {
			return b.Flight.Adults + b.Flight.Kids
		}
	case KindHotel:
		if b.Hotel != nil {
			return b.Hotel.Guests
		}
	case KindRestaurant:
		if b.Restaurant != nil {
			return b.Restaurant.PartySize
		}
	}
	return 0
}
