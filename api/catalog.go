package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/repository"
	"github.com/easytripzy/tripbooking/internal/service/catalog"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Register mounts the read-only catalog surface: /Car/GetAllCar,
// /Car/GetCarByID?id=, and so on per entity, plus /Location/GetAllLocation.
func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/Car/GetAllCar", h.listCars)
	router.GET("/Car/GetCarByID", h.getCar)
	router.GET("/Flight/GetAllFlight", h.listFlights)
	router.GET("/Flight/GetFlightByID", h.getFlight)
	router.GET("/Hotel/GetAllHotel", h.listHotels)
	router.GET("/Hotel/GetHotelByID", h.getHotel)
	router.GET("/Restaurant/GetAllRestaurant", h.listRestaurants)
	router.GET("/Restaurant/GetRestaurantByID", h.getRestaurant)
	router.GET("/Location/GetAllLocation", h.listLocations)
}

type carView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country"`
	City            string `json:"city"`
	Price           int64  `json:"price"`
	SeatingCapacity int    `json:"seatingCapacity"`
	Image           string `json:"image"`
}

type flightView struct {
	ID                string `json:"id"`
	Airline           string `json:"airline"`
	FlightNumber      string `json:"flightNumber"`
	DepartureLocation string `json:"departureLocation"`
	ArrivalLocation   string `json:"arrivalLocation"`
	DepartureTime     string `json:"departureTime"`
	ArrivalTime       string `json:"arrivalTime"`
	Price             int64  `json:"price"`
}

type hotelView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Country string `json:"country"`
	City    string `json:"city"`
	Price   int64  `json:"price"`
	Rooms   int    `json:"rooms"`
	Package string `json:"package"`
	Image   string `json:"image"`
}

type restaurantView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Country string `json:"country"`
	City    string `json:"city"`
	Cuisine string `json:"cuisine"`
	Image   string `json:"image"`
}

type locationView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}

func toCarView(c domain.Car) carView {
	return carView{
		ID: c.ID.String(), Name: c.Name, Country: c.Country, City: c.City,
		Price: c.PriceCents / 100, SeatingCapacity: c.SeatingCapacity, Image: c.Image,
	}
}

func toFlightView(f domain.Flight) flightView {
	return flightView{
		ID: f.ID.String(), Airline: f.Airline, FlightNumber: f.FlightNumber,
		DepartureLocation: f.DepartureLocation, ArrivalLocation: f.ArrivalLocation,
		DepartureTime: f.DepartureTime.Format(time.RFC3339), ArrivalTime: f.ArrivalTime.Format(time.RFC3339),
		Price: f.PriceCents / 100,
	}
}

func toHotelView(h domain.Hotel) hotelView {
	return hotelView{
		ID: h.ID.String(), Name: h.Name, Address: h.Address, Country: h.Country, City: h.City,
		Price: h.PriceCents / 100, Rooms: h.Rooms, Package: h.Package, Image: h.Image,
	}
}

func toRestaurantView(r domain.Restaurant) restaurantView {
	return restaurantView{
		ID: r.ID.String(), Name: r.Name, Address: r.Address, Country: r.Country, City: r.City,
		Cuisine: r.Cuisine, Image: r.Image,
	}
}

func (h *CatalogHandler) listCars(c *gin.Context) {
	cars, err := h.service.Cars(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]carView, 0, len(cars))
	for _, car := range cars {
		views = append(views, toCarView(car))
	}
	c.JSON(http.StatusOK, views)
}

func (h *CatalogHandler) getCar(c *gin.Context) {
	id, ok := catalogID(c)
	if !ok {
		return
	}
	car, err := h.service.CarByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCarView(*car))
}

func (h *CatalogHandler) listFlights(c *gin.Context) {
	flights, err := h.service.Flights(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]flightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, toFlightView(f))
	}
	c.JSON(http.StatusOK, views)
}

func (h *CatalogHandler) getFlight(c *gin.Context) {
	id, ok := catalogID(c)
	if !ok {
		return
	}
	flight, err := h.service.FlightByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightView(*flight))
}

func (h *CatalogHandler) listHotels(c *gin.Context) {
	hotels, err := h.service.Hotels(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]hotelView, 0, len(hotels))
	for _, hotel := range hotels {
		views = append(views, toHotelView(hotel))
	}
	c.JSON(http.StatusOK, views)
}

func (h *CatalogHandler) getHotel(c *gin.Context) {
	id, ok := catalogID(c)
	if !ok {
		return
	}
	hotel, err := h.service.HotelByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, toHotelView(*hotel))
}

func (h *CatalogHandler) listRestaurants(c *gin.Context) {
	restaurants, err := h.service.Restaurants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]restaurantView, 0, len(restaurants))
	for _, r := range restaurants {
		views = append(views, toRestaurantView(r))
	}
	c.JSON(http.StatusOK, views)
}

func (h *CatalogHandler) getRestaurant(c *gin.Context) {
	id, ok := catalogID(c)
	if !ok {
		return
	}
	restaurant, err := h.service.RestaurantByID(c.Request.Context(), id)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRestaurantView(*restaurant))
}

func (h *CatalogHandler) listLocations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	views := make([]locationView, 0, len(locations))
	for _, l := range locations {
		views = append(views, locationView{ID: l.ID.String(), Name: l.Name, Country: l.Country, City: l.City})
	}
	c.JSON(http.StatusOK, views)
}

func catalogID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil || id == uuid.Nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return uuid.Nil, false
	}
	return id, true
}

func writeCatalogError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
