package handlers

import (
	"net/http"

	"bookingplan/internal/domain/models"
	"bookingplan/internal/http/middleware"
	"bookingplan/internal/services"

	"github.com/gin-gonic/gin"
)

type reservationRequest struct {
	Seats        int    `json:"seats"`
	IDCardNumber string `json:"id_card_number"`
}

func reservationService(c *gin.Context) services.ReservationService {
	return services.ReservationService{RequestID: middleware.GetRequestID(c)}
}

// POST /api/travel-plans/:id/reservations
func CreateReservation(c *gin.Context) {
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}
	rc, ok := caller(c)
	if !ok {
		return
	}
	var req reservationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := reservationService(c).Create(c.Request.Context(), models.ReservationInput{
		TravelPlanID: planID,
		UserID:       rc.UserID,
		Seats:        req.Seats,
		IDCardNumber: req.IDCardNumber,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// GET /api/reservations
func ListMyReservations(c *gin.Context) {
	rc, ok := caller(c)
	if !ok {
		return
	}
	out, err := reservationService(c).ListForUser(c.Request.Context(), rc.UserID, pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/reservations/:id
func GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rc, ok := caller(c)
	if !ok {
		return
	}
	res, err := reservationService(c).Get(c.Request.Context(), id, rc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/travel-plans/:id/reservations
func ListPlanReservations(c *gin.Context) {
	planID, ok := pathID(c, "id")
	if !ok {
		return
	}
	out, err := reservationService(c).ListForPlan(c.Request.Context(), planID, pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/reservations/:id/ticket
func GetReservationTicket(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	rc, ok := caller(c)
	if !ok {
		return
	}
	reqID := middleware.GetRequestID(c)
	svc := services.DocsService{
		Reservations: services.ReservationService{RequestID: reqID},
		Plans:        services.TravelPlanService{RequestID: reqID},
		RequestID:    reqID,
	}
	pdf, filename, err := svc.GenerateTicket(c.Request.Context(), id, rc)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
