package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/easytripzy/tripbooking/internal/domain"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetItem(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Item, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalogRepository) ListCars(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Car), args.Error(1)
}

func (m *MockCatalogRepository) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogRepository) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockCatalogRepository) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Restaurant), args.Error(1)
}

func (m *MockCatalogRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockCatalogRepository) GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}

func (m *MockCatalogRepository) GetFlight(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockCatalogRepository) GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetList(ctx context.Context, kind domain.Kind, dest interface{}) (bool, error) {
	args := m.Called(ctx, kind, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) SetList(ctx context.Context, kind domain.Kind, list interface{}) error {
	args := m.Called(ctx, kind, list)
	return args.Error(0)
}

func (m *MockCache) GetLocations(ctx context.Context) ([]domain.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Location), args.Error(1)
}

func (m *MockCache) SetLocations(ctx context.Context, locations []domain.Location) error {
	args := m.Called(ctx, locations)
	return args.Error(0)
}

func TestCatalogService_Flights_CacheMiss(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: uuid.New(), Airline: "IndiGo", FlightNumber: "6E204", PriceCents: 100000}}

	mockCache.On("GetList", ctx, domain.KindFlight, mock.Anything).Return(false, nil).Once()
	mockRepo.On("ListFlights", ctx).Return(flights, nil).Once()
	mockCache.On("SetList", ctx, domain.KindFlight, flights).Return(nil).Once()

	result, err := service.Flights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Flights_CacheHit(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Flight{{ID: uuid.New(), Airline: "Air India", FlightNumber: "AI101", PriceCents: 150000}}

	mockCache.On("GetList", ctx, domain.KindFlight, mock.Anything).
		Run(func(args mock.Arguments) {
			dest := args.Get(2).(*[]domain.Flight)
			*dest = cached
		}).
		Return(true, nil).Once()

	result, err := service.Flights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cached, result)
	mockRepo.AssertNotCalled(t, "ListFlights")
	mockCache.AssertNotCalled(t, "SetList")
}

func TestCatalogService_Flights_CacheError(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)

	ctx := context.Background()
	flights := []domain.Flight{{ID: uuid.New(), Airline: "IndiGo", FlightNumber: "6E204", PriceCents: 100000}}

	mockCache.On("GetList", ctx, domain.KindFlight, mock.Anything).Return(false, errors.New("cache error")).Once()
	mockRepo.On("ListFlights", ctx).Return(flights, nil).Once()
	mockCache.On("SetList", ctx, domain.KindFlight, flights).Return(nil).Once()

	result, err := service.Flights(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Hotels_RepositoryError(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)

	ctx := context.Background()
	expectedErr := errors.New("database error")

	mockCache.On("GetList", ctx, domain.KindHotel, mock.Anything).Return(false, nil).Once()
	mockRepo.On("ListHotels", ctx).Return([]domain.Hotel{}, expectedErr).Once()

	result, err := service.Hotels(ctx)

	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
	mockCache.AssertNotCalled(t, "SetList")
}

func TestCatalogService_Cars_NoCache(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	service := NewCatalogService(mockRepo, nil)

	ctx := context.Background()
	cars := []domain.Car{{ID: uuid.New(), Name: "Swift Dzire", City: "Mumbai", PriceCents: 250000}}

	mockRepo.On("ListCars", ctx).Return(cars, nil).Once()

	result, err := service.Cars(ctx)

	assert.NoError(t, err)
	assert.Equal(t, cars, result)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_Locations(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	mockCache := &MockCache{}
	service := NewCatalogService(mockRepo, mockCache)

	ctx := context.Background()
	locations := []domain.Location{{ID: uuid.New(), Name: "Airport", Country: "India", City: "Delhi"}}

	mockCache.On("GetLocations", ctx).Return(([]domain.Location)(nil), nil).Once()
	mockRepo.On("ListLocations", ctx).Return(locations, nil).Once()
	mockCache.On("SetLocations", ctx, locations).Return(nil).Once()

	result, err := service.Locations(ctx)

	assert.NoError(t, err)
	assert.Equal(t, locations, result)
	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetItem(t *testing.T) {
	mockRepo := &MockCatalogRepository{}
	service := NewCatalogService(mockRepo, nil)

	ctx := context.Background()
	id := uuid.New()
	item := &domain.Item{ID: id, Kind: domain.KindRestaurant, Name: "Spice Garden"}

	mockRepo.On("GetItem", ctx, domain.KindRestaurant, id).Return(item, nil).Once()

	result, err := service.GetItem(ctx, domain.KindRestaurant, id)

	assert.NoError(t, err)
	assert.Equal(t, item, result)
}
