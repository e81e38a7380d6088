package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is the minimal catalog view the booking flow needs: existence and a
// unit price. The typed entities below back the read-only catalog endpoints.
type Item struct {
	ID             uuid.UUID
	Kind           Kind
	Name           string
	UnitPriceCents int64
}

type Car struct {
	ID              uuid.UUID
	Name            string
	Country         string
	City            string
	PriceCents      int64 // per rental day
	SeatingCapacity int
	Image           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Flight struct {
	ID                uuid.UUID
	Airline           string
	FlightNumber      string
	DepartureLocation string
	ArrivalLocation   string
	DepartureTime     time.Time
	ArrivalTime       time.Time
	PriceCents        int64 // per adult seat
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Hotel struct {
	ID         uuid.UUID
	Name       string
	Address    string
	Country    string
	City       string
	PriceCents int64 // per night
	Rooms      int
	Package    string
	Image      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Restaurant struct {
	ID        uuid.UUID
	Name      string
	Address   string
	Country   string
	City      string
	Cuisine   string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Location struct {
	ID      uuid.UUID
	Name    string
	Country string
	City    string
}
