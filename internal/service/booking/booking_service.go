package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/kafka"
	"github.com/easytripzy/tripbooking/internal/lifecycle"
	"github.com/easytripzy/tripbooking/internal/pricing"
	"github.com/easytripzy/tripbooking/internal/repository"
	"github.com/easytripzy/tripbooking/internal/validate"
)

// ValidationError carries the per-field messages of a rejected draft.
type ValidationError struct {
	Fields validate.Errors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("booking draft invalid: %d field error(s)", len(e.Fields))
}

// CancelTooLateError is returned when an upcoming booking is removed inside
// the minimum-notice window. The record is left untouched.
type CancelTooLateError struct {
	NoticeDays int
}

func (e *CancelTooLateError) Error() string {
	return fmt.Sprintf("bookings can only be cancelled at least %d days in advance", e.NoticeDays)
}

type BookingUseCase interface {
	Create(ctx context.Context, draft validate.Draft) (*domain.Booking, error)
	Get(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, kind domain.Kind, userID *uuid.UUID) ([]domain.Booking, error)
	Update(ctx context.Context, kind domain.Kind, id uuid.UUID, draft validate.Draft) (*domain.Booking, error)
	Remove(ctx context.Context, kind domain.Kind, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) (lifecycle.Buckets, error)
	PublishReminders(ctx context.Context, withinDays int) ([]domain.Booking, error)
}

// Catalog is the read-only item lookup the booking flow depends on.
type Catalog interface {
	GetItem(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Item, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	catalog            Catalog
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	cancelNoticeDays   int
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithClock overrides the wall clock used for classification and the
// cancellation window.
func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	catalog Catalog,
	producer Producer,
	bookingTopic string,
	cancelNoticeDays int,
	opts ...BookingServiceOption,
) *BookingService {
	if cancelNoticeDays <= 0 {
		cancelNoticeDays = lifecycle.DefaultCancelNoticeDays
	}
	service := &BookingService{
		bookings:         bookings,
		catalog:          catalog,
		producer:         producer,
		bookingTopic:     bookingTopic,
		cancelNoticeDays: cancelNoticeDays,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create validates a draft, prices it from the catalog unit price and persists
// it with a fresh id and Pending status. Price is computed before the record
// becomes durable; it is never recomputed afterwards except by a whole-record
// edit.
func (s *BookingService) Create(ctx context.Context, draft validate.Draft) (*domain.Booking, error) {
	if errs := validate.Check(draft, s.now()); !errs.Ok() {
		return nil, &ValidationError{Fields: errs}
	}

	item, err := s.catalog.GetItem(ctx, draft.Kind, draft.ItemID)
	if err != nil {
		return nil, err
	}

	booking := buildBooking(draft, s.now())
	booking.ID = uuid.New()
	booking.Status = domain.BookingStatusPending
	booking.PriceCents = pricing.Quote(booking, item.UnitPriceCents)

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, kind, id)
}

func (s *BookingService) List(ctx context.Context, kind domain.Kind, userID *uuid.UUID) ([]domain.Booking, error) {
	if userID != nil {
		return s.bookings.ListByUserAndKind(ctx, *userID, kind)
	}
	return s.bookings.ListByKind(ctx, kind)
}

// Update replaces the stored record with the edited draft after full
// re-validation; the price is recomputed because the whole record is replaced.
// The status carried on the draft is applied when set, otherwise the stored
// one is kept.
func (s *BookingService) Update(ctx context.Context, kind domain.Kind, id uuid.UUID, draft validate.Draft) (*domain.Booking, error) {
	current, err := s.bookings.GetByID(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	if errs := validate.Check(draft, s.now()); !errs.Ok() {
		return nil, &ValidationError{Fields: errs}
	}

	item, err := s.catalog.GetItem(ctx, draft.Kind, draft.ItemID)
	if err != nil {
		return nil, err
	}

	booking := buildBooking(draft, s.now())
	booking.ID = current.ID
	booking.Status = current.Status
	if draft.Status != "" {
		booking.Status = draft.Status
	}
	booking.PriceCents = pricing.Quote(booking, item.UnitPriceCents)

	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_updated", booking)
	return booking, nil
}

// Remove deletes a booking. Past bookings may be cleaned up unconditionally;
// upcoming bookings are treated as cancellations and must respect the
// minimum-notice window. In both cases the record is hard-deleted: the stored
// status field is display-only and never flipped to Cancelled here.
func (s *BookingService) Remove(ctx context.Context, kind domain.Kind, id uuid.UUID) error {
	booking, err := s.bookings.GetByID(ctx, kind, id)
	if err != nil {
		return err
	}

	today := s.now()
	if lifecycle.IsPast(booking.ServiceDate(), today) {
		if err := s.bookings.Delete(ctx, kind, id); err != nil {
			return err
		}
		s.publish(ctx, "booking_deleted", booking)
		return nil
	}

	if !lifecycle.Cancellable(booking.ServiceDate(), today, s.cancelNoticeDays) {
		return &CancelTooLateError{NoticeDays: s.cancelNoticeDays}
	}
	if err := s.bookings.Delete(ctx, kind, id); err != nil {
		return err
	}
	s.publish(ctx, "booking_cancelled", booking)
	return nil
}

// ListForUser returns the user's bookings across all kinds, bucketed into
// upcoming and past and sorted for display.
func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID) (lifecycle.Buckets, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return lifecycle.Buckets{}, err
	}
	return lifecycle.Partition(bookings, s.now()), nil
}

// PublishReminders emits a booking_reminder event for every booking whose
// service date falls within the next withinDays days, today included.
func (s *BookingService) PublishReminders(ctx context.Context, withinDays int) ([]domain.Booking, error) {
	from := lifecycle.Midnight(s.now())
	to := from.AddDate(0, 0, withinDays+1)
	due, err := s.bookings.ListServiceDateBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	for i := range due {
		s.publish(ctx, "booking_reminder", &due[i])
	}
	return due, nil
}

func buildBooking(draft validate.Draft, now time.Time) *domain.Booking {
	booking := &domain.Booking{
		Kind:        draft.Kind,
		UserID:      draft.UserID,
		ItemID:      draft.ItemID,
		BookingDate: draft.BookingDate,
	}
	if booking.BookingDate.IsZero() {
		booking.BookingDate = now
	}

	switch draft.Kind {
	case domain.KindCar:
		booking.Car = &domain.CarDetails{
			PickupDate:       draft.Car.PickupDate,
			ReturnDate:       draft.Car.ReturnDate,
			PickupLocationID: draft.Car.PickupLocationID,
			ReturnLocationID: draft.Car.ReturnLocationID,
		}
	case domain.KindFlight:
		booking.Flight = &domain.FlightDetails{
			Adults: validate.CountOrZero(draft.Flight.Adults),
			Kids:   validate.CountOrZero(draft.Flight.Kids),
		}
	case domain.KindHotel:
		booking.Hotel = &domain.HotelDetails{
			CheckIn:  draft.Hotel.CheckIn,
			CheckOut: draft.Hotel.CheckOut,
			Guests:   validate.CountOrZero(draft.Hotel.Guests),
			RoomType: draft.Hotel.RoomType,
		}
	case domain.KindRestaurant:
		booking.Restaurant = &domain.RestaurantDetails{
			MealDate:  draft.Restaurant.MealDate,
			MealTime:  draft.Restaurant.MealTime,
			PartySize: validate.CountOrZero(draft.Restaurant.PartySize),
		}
	}
	return booking
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID.String(),
		Kind:        string(booking.Kind),
		UserID:      booking.UserID.String(),
		ItemID:      booking.ItemID.String(),
		ServiceDate: booking.ServiceDate(),
		PriceCents:  booking.PriceCents,
		Status:      string(booking.Status),
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.BookingID, event); err != nil {
		logrus.WithError(err).WithField("booking_id", event.BookingID).Warnf("failed to publish %s event", eventType)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.BookingID, event); err != nil {
			logrus.WithError(err).WithField("booking_id", event.BookingID).Warnf("failed to publish %s notification", eventType)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
