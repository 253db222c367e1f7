package handlers

import (
	"net/http"
	"strconv"

	"bookingplan/internal/domain"
	"bookingplan/internal/domain/models"
	"bookingplan/internal/http/middleware"
	"bookingplan/internal/services"

	"github.com/gin-gonic/gin"
)

func travelPlanService(c *gin.Context) services.TravelPlanService {
	return services.TravelPlanService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/travel-plans
func ListTravelPlans(c *gin.Context) {
	agencyID, _ := strconv.ParseInt(c.Query("agency_id"), 10, 64)
	f := models.TravelPlanFilter{
		Status:      domain.PlanStatus(c.Query("status")),
		Departure:   c.Query("departure"),
		Destination: c.Query("destination"),
		AgencyID:    agencyID,
		Pagination:  pagination(c),
	}
	plans, err := travelPlanService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plans})
}

// GET /api/travel-plans/:id
func GetTravelPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := travelPlanService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/travel-plans
func CreateTravelPlan(c *gin.Context) {
	var req models.TravelPlanInput
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := travelPlanService(c).Create(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// PUT /api/travel-plans/:id/complete
func CompleteTravelPlan(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := travelPlanService(c).Complete(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
