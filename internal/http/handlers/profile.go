package handlers

import (
	"net/http"

	"bookingplan/internal/domain/models"
	"bookingplan/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/profile
func GetProfile(c *gin.Context) {
	rc, ok := caller(c)
	if !ok {
		return
	}
	p, err := services.ProfileService{}.Get(c.Request.Context(), rc.UserID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// PUT /api/profile
func SaveProfile(c *gin.Context) {
	rc, ok := caller(c)
	if !ok {
		return
	}
	var req models.Profile
	if !BindJSONOrError(c, &req) {
		return
	}
	p, err := services.ProfileService{}.Save(c.Request.Context(), rc.UserID, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
