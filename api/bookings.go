package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/easytripzy/tripbooking/internal/auth"
	"github.com/easytripzy/tripbooking/internal/domain"
	"github.com/easytripzy/tripbooking/internal/repository"
	"github.com/easytripzy/tripbooking/internal/service/booking"
	"github.com/easytripzy/tripbooking/internal/validate"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

// Register mounts the legacy per-entity CRUD surface, e.g.
// /FlightBooking/GetAllFlightBooking, /FlightBooking/AddFlightBooking,
// plus the aggregated /MyBookings view.
func (h *BookingHandler) Register(router *gin.RouterGroup) {
	for _, kind := range domain.Kinds() {
		variant, _ := domain.VariantFor(kind)
		g := router.Group("/" + variant.Label + "Booking")
		g.GET("/GetAll"+variant.Label+"Booking", h.getAll(kind))
		g.GET("/Get"+variant.Label+"BookingByID", h.getByID(kind))
		g.POST("/Add"+variant.Label+"Booking", h.add(kind))
		g.PATCH("/Edit"+variant.Label+"Booking/:id", h.edit(kind))
		g.DELETE("/Remove"+variant.Label+"Booking/:id", h.remove(kind))
	}
	router.GET("/MyBookings/GetMyBookings", h.myBookings)
}

func (h *BookingHandler) getAll(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID *uuid.UUID
		if raw := c.Query("userID"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid userID"})
				return
			}
			userID = &id
		}

		bookings, err := h.service.List(c.Request.Context(), kind, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bookingViews(bookings))
	}
}

func (h *BookingHandler) getByID(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Query("id"))
		if err != nil || id == uuid.Nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}

		b, err := h.service.Get(c.Request.Context(), kind, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, bookingView(*b))
	}
}

func (h *BookingHandler) add(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, err := bindDraft(c, kind)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := h.service.Create(c.Request.Context(), draft); err != nil {
			h.writeBookingError(c, err)
			return
		}
		// legacy contract: a bare boolean body
		c.JSON(http.StatusOK, true)
	}
}

func (h *BookingHandler) edit(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, false)
			return
		}
		draft, err := bindDraft(c, kind)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if _, err := h.service.Update(c.Request.Context(), kind, id, draft); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				c.JSON(http.StatusOK, false)
				return
			}
			h.writeBookingError(c, err)
			return
		}
		c.JSON(http.StatusOK, true)
	}
}

func (h *BookingHandler) remove(kind domain.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, false)
			return
		}

		if err := h.service.Remove(c.Request.Context(), kind, id); err != nil {
			var tooLate *booking.CancelTooLateError
			switch {
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusOK, false)
			case errors.As(err, &tooLate):
				c.JSON(http.StatusConflict, gin.H{"warning": tooLate.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, true)
	}
}

func (h *BookingHandler) myBookings(c *gin.Context) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	buckets, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"upcoming": myBookingViews(buckets.Upcoming),
		"past":     myBookingViews(buckets.Past),
	})
}

type myBookingView struct {
	Kind        string      `json:"kind"`
	ServiceDate string      `json:"serviceDate"`
	Booking     interface{} `json:"booking"`
}

func myBookingViews(bookings []domain.Booking) []myBookingView {
	views := make([]myBookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, myBookingView{
			Kind:        string(b.Kind),
			ServiceDate: b.ServiceDate().Format(dateOnly),
			Booking:     bookingView(b),
		})
	}
	return views
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	var invalid *booking.ValidationError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"errors": invalid.Fields})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bindDraft(c *gin.Context, kind domain.Kind) (validate.Draft, error) {
	switch kind {
	case domain.KindCar:
		var req carBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return validate.Draft{}, err
		}
		return req.draft(), nil
	case domain.KindFlight:
		var req flightBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return validate.Draft{}, err
		}
		return req.draft(), nil
	case domain.KindHotel:
		var req hotelBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return validate.Draft{}, err
		}
		return req.draft(), nil
	default:
		var req restaurantBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return validate.Draft{}, err
		}
		return req.draft(), nil
	}
}
