package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/repository"
)

type CatalogUseCase interface {
	GetItem(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Item, error)
	Cars(ctx context.Context) ([]domain.Car, error)
	Flights(ctx context.Context) ([]domain.Flight, error)
	Hotels(ctx context.Context) ([]domain.Hotel, error)
	Restaurants(ctx context.Context) ([]domain.Restaurant, error)
	Locations(ctx context.Context) ([]domain.Location, error)
	CarByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	FlightByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error)
	HotelByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	RestaurantByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error)
}

// Cache is the list cache in front of catalog reads. Lookups by id go straight
// to the store.
type Cache interface {
	GetList(ctx context.Context, kind domain.Kind, dest interface{}) (bool, error)
	SetList(ctx context.Context, kind domain.Kind, list interface{}) error
	GetLocations(ctx context.Context) ([]domain.Location, error)
	SetLocations(ctx context.Context, locations []domain.Location) error
}

type CatalogService struct {
	repo  repository.CatalogRepository
	cache Cache
}

func NewCatalogService(repo repository.CatalogRepository, cache Cache) *CatalogService {
	return &CatalogService{repo: repo, cache: cache}
}

func (s *CatalogService) GetItem(ctx context.Context, kind domain.Kind, id uuid.UUID) (*domain.Item, error) {
	return s.repo.GetItem(ctx, kind, id)
}

func (s *CatalogService) Cars(ctx context.Context) ([]domain.Car, error) {
	if s.cache != nil {
		var cached []domain.Car
		if hit, err := s.cache.GetList(ctx, domain.KindCar, &cached); err == nil && hit {
			return cached, nil
		}
	}
	cars, err := s.repo.ListCars(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(ctx, domain.KindCar, cars)
	}
	return cars, nil
}

func (s *CatalogService) Flights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		var cached []domain.Flight
		if hit, err := s.cache.GetList(ctx, domain.KindFlight, &cached); err == nil && hit {
			return cached, nil
		}
	}
	flights, err := s.repo.ListFlights(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(ctx, domain.KindFlight, flights)
	}
	return flights, nil
}

func (s *CatalogService) Hotels(ctx context.Context) ([]domain.Hotel, error) {
	if s.cache != nil {
		var cached []domain.Hotel
		if hit, err := s.cache.GetList(ctx, domain.KindHotel, &cached); err == nil && hit {
			return cached, nil
		}
	}
	hotels, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(ctx, domain.KindHotel, hotels)
	}
	return hotels, nil
}

func (s *CatalogService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	if s.cache != nil {
		var cached []domain.Restaurant
		if hit, err := s.cache.GetList(ctx, domain.KindRestaurant, &cached); err == nil && hit {
			return cached, nil
		}
	}
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetList(ctx, domain.KindRestaurant, restaurants)
	}
	return restaurants, nil
}

func (s *CatalogService) Locations(ctx context.Context) ([]domain.Location, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetLocations(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	locations, err := s.repo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetLocations(ctx, locations)
	}
	return locations, nil
}

func (s *CatalogService) CarByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	return s.repo.GetCar(ctx, id)
}

func (s *CatalogService) FlightByID(ctx context.Context, id uuid.UUID) (*domain.Flight, error) {
	return s.repo.GetFlight(ctx, id)
}

func (s *CatalogService) HotelByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	return s.repo.GetHotel(ctx, id)
}

func (s *CatalogService) RestaurantByID(ctx context.Context, id uuid.UUID) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, id)
}

var _ CatalogUseCase = (*CatalogService)(nil)
