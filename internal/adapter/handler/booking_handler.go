package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/srgjo27/experience_booking/internal/core/domain"
	"github.com/srgjo27/experience_booking/internal/core/services"
)

type BookingHandler struct {
	svc *services.BookingService
	log *zerolog.Logger
}

func NewBookingHandler(svc *services.BookingService, log *zerolog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

type createBookingResponse struct {
	Success bool            `json:"success"`
	Booking *domain.Booking `json:"booking"`
}

// POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req services.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid json body", err)
		return
	}

	booking, err := h.svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, createBookingResponse{Success: true, Booking: booking})
}
