package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"

	"github.com/easytripzy/tripbooking/internal/domain"
)

func TestNewBookingRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewBookingRepository(pool)
	assert.NotNil(t, repo)
}

func TestDetailsCodec_RoundTrip(t *testing.T) {
	original := &domain.Booking{
		ID:   uuid.New(),
		Kind: domain.KindHotel,
		Hotel: &domain.HotelDetails{
			CheckIn:  time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC),
			Guests:   3,
			RoomType: "King",
		},
	}

	raw, err := encodeDetails(original)
	assert.NoError(t, err)

	decoded := &domain.Booking{Kind: domain.KindHotel}
	err = decodeDetails(decoded, raw)
	assert.NoError(t, err)
	assert.Equal(t, original.Hotel, decoded.Hotel)
}

func TestEncodeDetails_MissingVariant(t *testing.T) {
	b := &domain.Booking{ID: uuid.New(), Kind: domain.KindCar}
	_, err := encodeDetails(b)
	assert.Error(t, err)
}

func TestEncodeDetails_UnknownKind(t *testing.T) {
	b := &domain.Booking{ID: uuid.New(), Kind: domain.Kind("cruise")}
	_, err := encodeDetails(b)
	assert.Error(t, err)
}
