package handler

import (
	"github.com/labstack/echo/v4"

	"picklrzone/internal/usecase"
	"picklrzone/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	RequestedDate    string `json:"requestedDate"`
	RequestedEndTime string `json:"requestedEndTime"`
	Message          string `json:"message"`
}

type respondBookingRequest struct {
	Status         string `json:"status"`
	VendorResponse string `json:"vendorResponse" validate:"max=2000"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), identity, c.Param("courseId"), usecase.CreateBookingInput{
		RequestedDate:    req.RequestedDate,
		RequestedEndTime: req.RequestedEndTime,
		Message:          req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, booking)
}

func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	bookings, err := h.bookingUseCase.ListMyBookings(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) ListVendorBookings(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	bookings, err := h.bookingUseCase.ListVendorBookings(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) UpcomingBookings(c echo.Context) error {
	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	bookings, err := h.bookingUseCase.UpcomingBookings(c.Request().Context(), identity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bookings)
}

func (h *BookingHandler) RespondToBooking(c echo.Context) error {
	var req respondBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity, err := caller(c)
	if err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.RespondToBooking(c.Request().Context(), identity, c.Param("id"), req.Status, req.VendorResponse)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, booking)
}
