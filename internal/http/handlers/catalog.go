package handlers

import (
	"net/http"

	"bookingplan/internal/domain/models"
	"bookingplan/internal/http/middleware"
	"bookingplan/internal/services"

	"github.com/gin-gonic/gin"
)

func catalogService(c *gin.Context) services.CatalogService {
	return services.CatalogService{RequestID: middleware.GetRequestID(c)}
}

// GET /api/agencies
func ListAgencies(c *gin.Context) {
	out, err := catalogService(c).ListAgencies(c.Request.Context(), pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/agencies/:id
func GetAgency(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := catalogService(c).GetAgency(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /api/agencies
func CreateAgency(c *gin.Context) {
	var req models.Agency
	if !BindJSONOrError(c, &req) {
		return
	}
	a, err := catalogService(c).CreateAgency(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GET /api/accommodations
func ListAccommodations(c *gin.Context) {
	f := models.AccommodationFilter{
		Type:       c.Query("type"),
		Town:       c.Query("town"),
		Pagination: pagination(c),
	}
	out, err := catalogService(c).ListAccommodations(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/accommodations/:id
func GetAccommodation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, err := catalogService(c).GetAccommodation(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /api/accommodations
func CreateAccommodation(c *gin.Context) {
	var req models.Accommodation
	if !BindJSONOrError(c, &req) {
		return
	}
	a, err := catalogService(c).CreateAccommodation(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// GET /api/destinations
func ListDestinations(c *gin.Context) {
	out, err := catalogService(c).ListDestinations(c.Request.Context(), pagination(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GET /api/destinations/:id
func GetDestination(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	d, err := catalogService(c).GetDestination(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// POST /api/destinations
func CreateDestination(c *gin.Context) {
	var req models.Destination
	if !BindJSONOrError(c, &req) {
		return
	}
	d, err := catalogService(c).CreateDestination(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}
