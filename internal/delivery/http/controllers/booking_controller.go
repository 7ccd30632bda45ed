package controllers

import (
	"log/slog"
	"net/http"

	"eventbook/internal/delivery/http/helpers"
	"eventbook/internal/domain"
)

// CreateBookingRequest is the request body for POST /api/bookings.
type CreateBookingRequest struct {
	Email   string `json:"email"`
	EventID string `json:"eventId"`
}

// Validate implements helpers.Validator.
func (c CreateBookingRequest) Validate() []string {
	var errs []string
	if c.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// UpdateBookingRequest is the request body for PATCH /api/bookings/{bookingID}.
type UpdateBookingRequest struct {
	Email string `json:"email"`
}

// Validate implements helpers.Validator.
func (u UpdateBookingRequest) Validate() []string {
	var errs []string
	if u.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// BookingResponse is the success envelope carrying a single booking.
// swagger:model BookingResponse
type BookingResponse struct {
	Message string          `json:"message"`
	Booking *domain.Booking `json:"booking"`
}

// BookingListResponse is the success envelope carrying bookings.
// swagger:model BookingListResponse
type BookingListResponse struct {
	Message  string            `json:"message"`
	Bookings []*domain.Booking `json:"bookings"`
}

type BookingController struct {
	Logger  *slog.Logger
	Service domain.BookingService
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService) *BookingController {
	return &BookingController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateBooking godoc
// @Summary Book a spot for an event
// @Description Creates a booking for the given event. The email is lowercased and trimmed; the referenced event must exist. The same email may book the same event more than once.
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /bookings [post]
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.CreateBooking(r.Context(), req.EventID, req.Email)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, BookingResponse{Message: "Booking created successfully", Booking: booking})
}

// ListBookings godoc
// @Summary List bookings
// @Description Returns all bookings, optionally filtered to one event.
// @Tags bookings
// @Produce json
// @Param eventId query string false "Filter by event ID"
// @Success 200 {object} controllers.BookingListResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /bookings [get]
func (c *BookingController) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.Service.ListBookings(r.Context(), r.URL.Query().Get("eventId"))
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingListResponse{Message: "Bookings fetched successfully", Bookings: bookings})
}

// UpdateBooking godoc
// @Summary Update a booking's email
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Param booking body UpdateBookingRequest true "New email"
// @Success 200 {object} controllers.BookingResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /bookings/{bookingID} [patch]
func (c *BookingController) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Validation failed", "missing bookingID")
		return
	}
	var req UpdateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	booking, err := c.Service.UpdateEmail(r.Context(), bookingID, req.Email)
	if err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, BookingResponse{Message: "Booking updated successfully", Booking: booking})
}

// DeleteBooking godoc
// @Summary Cancel a booking
// @Tags bookings
// @Produce json
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} helpers.MessageResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /bookings/{bookingID} [delete]
func (c *BookingController) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Validation failed", "missing bookingID")
		return
	}
	if err := c.Service.DeleteBooking(r.Context(), bookingID); err != nil {
		respondError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.MessageResponse{Message: "Booking cancelled successfully"})
}
