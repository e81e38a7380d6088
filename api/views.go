package api

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/validate"
)

// View models keep the field names the legacy clients bind to: booking ids are
// "{entity}BookingID", head counts travel as strings and prices as whole
// currency units.

const dateOnly = "2006-01-02"

type carBookingView struct {
	CarBookingID     string `json:"carBookingID"`
	UserID           string `json:"userID"`
	CarID            string `json:"carID"`
	BookingDate      string `json:"bookingDate"`
	PickupDate       string `json:"pickupDate"`
	ReturnDate       string `json:"returnDate"`
	PickupLocationID string `json:"pickupLocationId"`
	ReturnLocationID string `json:"returnLocationId"`
	RentalDays       int    `json:"rentalDays"`
	Price            int64  `json:"price"`
	Status           string `json:"status"`
}

type flightBookingView struct {
	FlightBookingID string `json:"flightBookingID"`
	UserID          string `json:"userID"`
	FlightID        string `json:"flightID"`
	BookingDate     string `json:"bookingDate"`
	Adults          string `json:"adults"`
	Kids            string `json:"kids"`
	Price           int64  `json:"price"`
	Status          string `json:"status"`
}

type hotelBookingView struct {
	HotelBookingID string `json:"hotelBookingID"`
	UserID         string `json:"userID"`
	HotelID        string `json:"hotelID"`
	BookingDate    string `json:"bookingDate"`
	CheckInDate    string `json:"checkindate"`
	CheckOutDate   string `json:"checkoutdate"`
	Price          int64  `json:"price"`
	BookingStatus  string `json:"bookingStatus"`
	NoOfPeople     string `json:"noofPeople"`
	RoomType       string `json:"roomType"`
}

type restaurantBookingView struct {
	RestaurantBookingID string `json:"restaurantBookingID"`
	UserID              string `json:"userID"`
	RestaurantID        string `json:"restaurantID"`
	BookingDate         string `json:"bookingDate"`
	MealDate            string `json:"mealDate"`
	MealTime            string `json:"mealTime"`
	TotalPeople         string `json:"totalPeople"`
	Status              string `json:"status"`
}

func bookingView(b domain.Booking) interface{} {
	switch b.Kind {
	case domain.KindCar:
		return carBookingView{
			CarBookingID:     b.ID.String(),
			UserID:           b.UserID.String(),
			CarID:            b.ItemID.String(),
			BookingDate:      b.BookingDate.Format(time.RFC3339),
			PickupDate:       b.Car.PickupDate.Format(dateOnly),
			ReturnDate:       b.Car.ReturnDate.Format(dateOnly),
			PickupLocationID: b.Car.PickupLocationID.String(),
			ReturnLocationID: b.Car.ReturnLocationID.String(),
			RentalDays:       b.Car.RentalDays,
			Price:            b.PriceCents / 100,
			Status:           string(b.Status),
		}
	case domain.KindFlight:
		return flightBookingView{
			FlightBookingID: b.ID.String(),
			UserID:          b.UserID.String(),
			FlightID:        b.ItemID.String(),
			BookingDate:     b.BookingDate.Format(dateOnly),
			Adults:          strconv.Itoa(b.Flight.Adults),
			Kids:            strconv.Itoa(b.Flight.Kids),
			Price:           b.PriceCents / 100,
			Status:          string(b.Status),
		}
	case domain.KindHotel:
		return hotelBookingView{
			HotelBookingID: b.ID.String(),
			UserID:         b.UserID.String(),
			HotelID:        b.ItemID.String(),
			BookingDate:    b.BookingDate.Format(time.RFC3339),
			CheckInDate:    b.Hotel.CheckIn.Format(dateOnly),
			CheckOutDate:   b.Hotel.CheckOut.Format(dateOnly),
			Price:          b.PriceCents / 100,
			BookingStatus:  string(b.Status),
			NoOfPeople:     strconv.Itoa(b.Hotel.Guests),
			RoomType:       b.Hotel.RoomType,
		}
	default:
		return restaurantBookingView{
			RestaurantBookingID: b.ID.String(),
			UserID:              b.UserID.String(),
			RestaurantID:        b.ItemID.String(),
			BookingDate:         b.BookingDate.Format(time.RFC3339),
			MealDate:            b.Restaurant.MealDate.Format(dateOnly),
			MealTime:            b.Restaurant.MealTime,
			TotalPeople:         strconv.Itoa(b.Restaurant.PartySize),
			Status:              string(b.Status),
		}
	}
}

func bookingViews(bookings []domain.Booking) []interface{} {
	views := make([]interface{}, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, bookingView(b))
	}
	return views
}

// Insert/update request bodies. Malformed ids and dates degrade to zero values
// so the validator can report every bad field at once instead of the bind
// failing on the first.

type carBookingRequest struct {
	UserID           string `json:"userID"`
	CarID            string `json:"carID"`
	BookingDate      string `json:"bookingDate"`
	PickupDate       string `json:"pickupDate"`
	ReturnDate       string `json:"returnDate"`
	PickupLocationID string `json:"pickupLocationId"`
	ReturnLocationID string `json:"returnLocationId"`
	Status           string `json:"status"`
}

func (r carBookingRequest) draft() validate.Draft {
	return validate.Draft{
		Kind:        domain.KindCar,
		UserID:      parseID(r.UserID),
		ItemID:      parseID(r.CarID),
		BookingDate: parseDate(r.BookingDate),
		Status:      domain.BookingStatus(r.Status),
		Car: &validate.CarDraft{
			PickupDate:       parseDate(r.PickupDate),
			ReturnDate:       parseDate(r.ReturnDate),
			PickupLocationID: parseID(r.PickupLocationID),
			ReturnLocationID: parseID(r.ReturnLocationID),
		},
	}
}

type flightBookingRequest struct {
	UserID      string `json:"userID"`
	FlightID    string `json:"flightID"`
	BookingDate string `json:"bookingDate"`
	Adults      string `json:"adults"`
	Kids        string `json:"kids"`
	Status      string `json:"status"`
}

func (r flightBookingRequest) draft() validate.Draft {
	return validate.Draft{
		Kind:        domain.KindFlight,
		UserID:      parseID(r.UserID),
		ItemID:      parseID(r.FlightID),
		BookingDate: parseDate(r.BookingDate),
		Status:      domain.BookingStatus(r.Status),
		Flight: &validate.FlightDraft{
			Adults: r.Adults,
			Kids:   r.Kids,
		},
	}
}

type hotelBookingRequest struct {
	UserID        string `json:"userID"`
	HotelID       string `json:"hotelID"`
	BookingDate   string `json:"bookingDate"`
	CheckInDate   string `json:"checkindate"`
	CheckOutDate  string `json:"checkoutdate"`
	BookingStatus string `json:"bookingStatus"`
	NoOfPeople    string `json:"noofPeople"`
	RoomType      string `json:"roomType"`
}

func (r hotelBookingRequest) draft() validate.Draft {
	return validate.Draft{
		Kind:        domain.KindHotel,
		UserID:      parseID(r.UserID),
		ItemID:      parseID(r.HotelID),
		BookingDate: parseDate(r.BookingDate),
		Status:      domain.BookingStatus(r.BookingStatus),
		Hotel: &validate.HotelDraft{
			CheckIn:  parseDate(r.CheckInDate),
			CheckOut: parseDate(r.CheckOutDate),
			Guests:   r.NoOfPeople,
			RoomType: r.RoomType,
		},
	}
}

type restaurantBookingRequest struct {
	UserID       string `json:"userID"`
	RestaurantID string `json:"restaurantID"`
	BookingDate  string `json:"bookingDate"`
	MealDate     string `json:"mealDate"`
	MealTime     string `json:"mealTime"`
	TotalPeople  string `json:"totalPeople"`
	Status       string `json:"status"`
}

func (r restaurantBookingRequest) draft() validate.Draft {
	return validate.Draft{
		Kind:        domain.KindRestaurant,
		UserID:      parseID(r.UserID),
		ItemID:      parseID(r.RestaurantID),
		BookingDate: parseDate(r.BookingDate),
		Status:      domain.BookingStatus(r.Status),
		Restaurant: &validate.RestaurantDraft{
			MealDate:  parseDate(r.MealDate),
			MealTime:  r.MealTime,
			PartySize: r.TotalPeople,
		},
	}
}

func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse(dateOnly, s); err == nil {
		return t
	}
	return time.Time{}
}
