package handlers

import (
	"net/http"

	"bookingplan/internal/domain/models"
	"bookingplan/internal/http/middleware"
	"bookingplan/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	rc, ok := caller(c)
	if !ok {
		return
	}
	var req models.BookingInput
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	b, err := svc.Create(c.Request.Context(), rc.UserID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /api/bookings/me
func GetMyBooking(c *gin.Context) {
	rc, ok := caller(c)
	if !ok {
		return
	}
	b, err := services.BookingService{}.GetForUser(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
