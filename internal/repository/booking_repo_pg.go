package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/easytripzy/tripbooking/internal/domain"
)

var ErrNotFound = errors.New("not found")

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Booking, error)
	ListByKind(ctx context.Context, kind domain.Kind) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error)
	ListByUserAndKind(ctx context.Context, userID uuid.UUID, kind domain.Kind) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, kind domain.Kind, id uuid.UUID) error
	ListServiceDateBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

// PGBookingRepository stores all four booking variants in a single bookings
// table: common columns plus a kind discriminator and a jsonb details payload.
// service_start/service_end are extracted on write so listings can order in SQL.
type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingCols = `id, kind, user_id, item_id, booking_date, status, price_cents, details, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	details, err := encodeDetails(booking)
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO bookings (id, kind, user_id, item_id, booking_date, service_start, service_end, status, price_cents, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`,
		booking.ID, booking.Kind, booking.UserID, booking.ItemID, booking.BookingDate,
		booking.ServiceDate(), booking.ServiceEnd(), booking.Status, booking.PriceCents, details).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingCols+` FROM bookings WHERE id=$1 AND kind=$2`, id, kind)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *PGBookingRepository) ListByKind(ctx context.Context, kind domain.Kind) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingCols+` FROM bookings WHERE kind=$1 ORDER BY service_start`, kind)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingCols+` FROM bookings WHERE user_id=$1 ORDER BY service_start`, userID)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func (r *PGBookingRepository) ListByUserAndKind(ctx context.Context, userID uuid.UUID, kind domain.Kind) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingCols+` FROM bookings WHERE user_id=$1 AND kind=$2 ORDER BY service_start`, userID, kind)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	details, err := encodeDetails(booking)
	if err != nil {
		return err
	}
	err = r.db.QueryRow(ctx, `UPDATE bookings
		SET user_id=$1, item_id=$2, booking_date=$3, service_start=$4, service_end=$5, status=$6, price_cents=$7, details=$8, updated_at=now()
		WHERE id=$9 AND kind=$10
		RETURNING created_at, updated_at`,
		booking.UserID, booking.ItemID, booking.BookingDate, booking.ServiceDate(), booking.ServiceEnd(),
		booking.Status, booking.PriceCents, details, booking.ID, booking.Kind).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PGBookingRepository) Delete(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1 AND kind=$2`, id, kind)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGBookingRepository) ListServiceDateBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingCols+` FROM bookings WHERE service_start >= $1 AND service_start < $2 ORDER BY service_start`, from, to)
	if err != nil {
		return nil, err
	}
	return collectBookings(rows)
}

func encodeDetails(b *domain.Booking) ([]byte, error) {
	switch b.Kind {
	case domain.KindCar:
		if b.Car == nil {
			return nil, fmt.Errorf("car booking %s has no details", b.ID)
		}
		return json.Marshal(b.Car)
	case domain.KindFlight:
		if b.Flight == nil {
			return nil, fmt.Errorf("flight booking %s has no details", b.ID)
		}
		return json.Marshal(b.Flight)
	case domain.KindHotel:
		if b.Hotel == nil {
			return nil, fmt.Errorf("hotel booking %s has no details", b.ID)
		}
		return json.Marshal(b.Hotel)
	case domain.KindRestaurant:
		if b.Restaurant == nil {
			return nil, fmt.Errorf("restaurant booking %s has no details", b.ID)
		}
		return json.Marshal(b.Restaurant)
	default:
		return nil, fmt.Errorf("unknown booking kind %q", b.Kind)
	}
}

func decodeDetails(b *domain.Booking, raw []byte) error {
	switch b.Kind {
	case domain.KindCar:
		b.Car = &domain.CarDetails{}
		return json.Unmarshal(raw, b.Car)
	case domain.KindFlight:
		b.Flight = &domain.FlightDetails{}
		return json.Unmarshal(raw, b.Flight)
	case domain.KindHotel:
		b.Hotel = &domain.HotelDetails{}
		return json.Unmarshal(raw, b.Hotel)
	case domain.KindRestaurant:
		b.Restaurant = &domain.RestaurantDetails{}
		return json.Unmarshal(raw, b.Restaurant)
	default:
		return fmt.Errorf("unknown booking kind %q", b.Kind)
	}
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var details []byte
	if err := row.Scan(&b.ID, &b.Kind, &b.UserID, &b.ItemID, &b.BookingDate, &b.Status, &b.PriceCents, &details, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := decodeDetails(&b, details); err != nil {
		return nil, err
	}
	return &b, nil
}

func collectBookings(rows pgx.Rows) ([]domain.Booking, error) {
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
