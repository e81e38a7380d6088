package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easytripzy/tripbooking/internal/domain"
)

// CatalogRepository is the read-only lookup over bookable items. Writes belong
// to a separate admin pipeline and are out of scope here.
type CatalogRepository interface {
	GetItem(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Item, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	ListRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	ListLocations(ctx context.Context) ([]domain.Location, error)
	GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
}

type PGCatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGCatalogRepository{db: db}
}

// itemQueries projects each catalog table onto (id, name, unit price).
// Restaurants carry no unit price; bookings against them are unpriced.
var itemQueries = map[domain.Kind]string{
	domain.KindCar:        `SELECT id, name, price_cents FROM cars WHERE id=$1`,
	domain.KindFlight:     `SELECT id, airline, price_cents FROM flights WHERE id=$1`,
	domain.KindHotel:      `SELECT id, name, price_cents FROM hotels WHERE id=$1`,
	domain.KindRestaurant: `SELECT id, name, 0 FROM restaurants WHERE id=$1`,
}

func (r *PGCatalogRepository) GetItem(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Item, error) {
	query, ok := itemQueries[kind]
	if !ok {
		return nil, ErrNotFound
	}
	item := domain.Item{Kind: kind}
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.Name, &item.UnitPriceCents)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

const carCols = `id, name, country, city, price_cents, seating_capacity, image, created_at, updated_at`

func (r *PGCatalogRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	rows, err := r.db.Query(ctx, `SELECT `+carCols+` FROM cars ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := make([]domain.Car, 0)
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.City, &c.PriceCents, &c.SeatingCapacity, &c.Image, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *PGCatalogRepository) GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	var c domain.Car
	err := r.db.QueryRow(ctx, `SELECT `+carCols+` FROM cars WHERE id=$1`, id).
		Scan(&c.ID, &c.Name, &c.Country, &c.City, &c.PriceCents, &c.SeatingCapacity, &c.Image, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

const flightCols = `id, airline, flight_number, departure_location, arrival_location, departure_time, arrival_time, price_cents, created_at, updated_at`

func (r *PGCatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightCols+` FROM flights ORDER BY departure_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Airline, &f.FlightNumber, &f.DepartureLocation, &f.ArrivalLocation, &f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGCatalogRepository) GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	var f domain.Flight
	err := r.db.QueryRow(ctx, `SELECT `+flightCols+` FROM flights WHERE id=$1`, id).
		Scan(&f.ID, &f.Airline, &f.FlightNumber, &f.DepartureLocation, &f.ArrivalLocation, &f.DepartureTime, &f.ArrivalTime, &f.PriceCents, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

const hotelCols = `id, name, address, country, city, price_cents, rooms, package, image, created_at, updated_at`

func (r *PGCatalogRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.Query(ctx, `SELECT `+hotelCols+` FROM hotels ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := make([]domain.Hotel, 0)
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Country, &h.City, &h.PriceCents, &h.Rooms, &h.Package, &h.Image, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r *PGCatalogRepository) GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRow(ctx, `SELECT `+hotelCols+` FROM hotels WHERE id=$1`, id).
		Scan(&h.ID, &h.Name, &h.Address, &h.Country, &h.City, &h.PriceCents, &h.Rooms, &h.Package, &h.Image, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &h, nil
}

const restaurantCols = `id, name, address, country, city, cuisine, image, created_at, updated_at`

func (r *PGCatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.db.Query(ctx, `SELECT `+restaurantCols+` FROM restaurants ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0)
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Country, &rest.City, &rest.Cuisine, &rest.Image, &rest.CreatedAt, &rest.UpdatedAt); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PGCatalogRepository) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.db.QueryRow(ctx, `SELECT `+restaurantCols+` FROM restaurants WHERE id=$1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Address, &rest.Country, &rest.City, &rest.Cuisine, &rest.Image, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}

func (r *PGCatalogRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, country, city FROM locations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]domain.Location, 0)
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Country, &l.City); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

var _ CatalogRepository = (*PGCatalogRepository)(nil)
